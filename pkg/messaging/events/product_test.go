package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vistula/firstapi/pkg/messaging"
)

func TestProductEvents(t *testing.T) {
	at := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name            string
		event           messaging.Event
		expectedSubject string
		expectedPayload string
	}{
		{
			name:            "created",
			event:           ProductCreatedEvent{ProductID: 1, Name: "Book", CreatedAt: at},
			expectedSubject: "products.created",
			expectedPayload: `{"product_id":1,"name":"Book","created_at":"2025-07-01T12:00:00Z"}`,
		},
		{
			name:            "updated",
			event:           ProductUpdatedEvent{ProductID: 1, Name: "Pen", UpdatedAt: at},
			expectedSubject: "products.updated",
			expectedPayload: `{"product_id":1,"name":"Pen","updated_at":"2025-07-01T12:00:00Z"}`,
		},
		{
			name:            "deleted",
			event:           ProductDeletedEvent{ProductID: 1, DeletedAt: at},
			expectedSubject: "products.deleted",
			expectedPayload: `{"product_id":1,"deleted_at":"2025-07-01T12:00:00Z"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := tt.event.Payload()

			require.NoError(t, err)
			assert.Equal(t, tt.expectedSubject, tt.event.Subject())
			assert.JSONEq(t, tt.expectedPayload, string(payload))
		})
	}
}
