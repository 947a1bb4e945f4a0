package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/sony/gobreaker/v2"
	"github.com/vistula/firstapi/pkg/config"
	"github.com/vistula/firstapi/pkg/messaging"
)

// StreamPublisher is the part of jetstream.JetStream the publisher depends on.
type StreamPublisher interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// NatsPublisher publishes events to JetStream through a circuit breaker.
type NatsPublisher struct {
	js StreamPublisher
	cb *gobreaker.CircuitBreaker[*jetstream.PubAck]
}

func NewNatsPublisher(js StreamPublisher, cfg config.CircuitBreakerConfig) *NatsPublisher {
	return &NatsPublisher{
		js: js,
		cb: newCircuitBreaker(cfg),
	}
}

func newCircuitBreaker(cfg config.CircuitBreakerConfig) *gobreaker.CircuitBreaker[*jetstream.PubAck] {
	st := gobreaker.Settings{
		Name:        "nats-publisher-cb",
		MaxRequests: 3,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			total := counts.TotalSuccesses + counts.TotalFailures
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures ||
				(total > cfg.ConsecutiveFailures &&
					float64(counts.TotalFailures)/float64(total)*100 > float64(cfg.ErrorRatePercent))
		},
		IsSuccessful: func(err error) bool {
			// A caller giving up is not a broker failure.
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	if st.Timeout <= 0 {
		st.Timeout = 5 * time.Second
	}
	return gobreaker.NewCircuitBreaker[*jetstream.PubAck](st)
}

func (p *NatsPublisher) Publish(ctx context.Context, event messaging.Event) error {
	data, err := event.Payload()
	if err != nil {
		return fmt.Errorf("failed to get event payload: %w", err)
	}
	_, err = p.cb.Execute(func() (*jetstream.PubAck, error) {
		return p.js.Publish(ctx, event.Subject(), data)
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Subject(), err)
	}
	return nil
}
