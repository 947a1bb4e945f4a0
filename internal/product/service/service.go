// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vistula/firstapi/internal/product/dto"
	perrors "github.com/vistula/firstapi/internal/product/errors"
	"github.com/vistula/firstapi/internal/product/mapper"
	"github.com/vistula/firstapi/internal/product/store"
	"github.com/vistula/firstapi/pkg/messaging"
	"github.com/vistula/firstapi/pkg/messaging/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// Find retrieves a single product by its unique identifier.
	// Returns a *errors.NotFoundError if no product exists with the given ID.
	Find(ctx context.Context, id int64) (*dto.ProductResponse, error)

	// FindAll returns all products in storage order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]dto.ProductResponse, error)

	// Create adds a new product to the system.
	// Returns error if the product cannot be created.
	Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error)

	// Update renames an existing product.
	// Returns a *errors.NotFoundError if no product exists with the given ID.
	Update(ctx context.Context, id int64, req dto.UpdateProductRequest) (*dto.ProductResponse, error)

	// Delete removes a product by its ID.
	// Returns a *errors.NotFoundError if no product exists with the given ID.
	Delete(ctx context.Context, id int64) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository      store.ProductStore
	publisher       messaging.Publisher
	logger          *slog.Logger
	productsCounter metric.Int64Counter
	now             func() time.Time
}

// NewService creates a new instance of ProductService with the provided repository.
// Product events go to publisher; use messaging.NopPublisher to disable them.
func NewService(repo store.ProductStore, publisher messaging.Publisher, logger *slog.Logger) *Service {
	meter := otel.Meter("product-service")
	productsCounter, err := meter.Int64Counter("products_created", metric.WithDescription("Total number of created products"))
	if err != nil {
		panic(fmt.Sprintf("failed to create products_created counter: %v", err))
	}
	return &Service{
		repository:      repo,
		publisher:       publisher,
		logger:          logger.With("component", "service"),
		productsCounter: productsCounter,
		now:             time.Now,
	}
}

// Find retrieves a product by its ID.
func (s *Service) Find(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, ok, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	if !ok {
		return nil, perrors.NotFound(id)
	}

	response := mapper.ToResponse(product)
	return &response, nil
}

// FindAll retrieves a list of all products.
// Returns an empty slice if no products exist or error if the retrieval fails.
func (s *Service) FindAll(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return mapper.ToResponses(products), nil
}

// Create stores a new product and returns it with the id storage assigned.
func (s *Service) Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error) {
	created, err := s.repository.Save(ctx, mapper.ToEntity(req))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.productsCounter.Add(ctx, 1)

	s.publish(ctx, events.ProductCreatedEvent{
		ProductID: created.ID,
		Name:      created.Name,
		CreatedAt: s.now().UTC(),
	})

	response := mapper.ToResponse(created)
	return &response, nil
}

// Update sets the name of an existing product. The id never changes.
func (s *Service) Update(ctx context.Context, id int64, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, ok, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	if !ok {
		return nil, perrors.NotFound(id)
	}

	product.Name = req.Name
	updated, err := s.repository.Save(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}

	s.publish(ctx, events.ProductUpdatedEvent{
		ProductID: updated.ID,
		Name:      updated.Name,
		UpdatedAt: s.now().UTC(),
	})

	response := mapper.ToResponse(updated)
	return &response, nil
}

// Delete removes an existing product.
func (s *Service) Delete(ctx context.Context, id int64) error {
	_, ok, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	if !ok {
		return perrors.NotFound(id)
	}

	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}

	s.publish(ctx, events.ProductDeletedEvent{
		ProductID: id,
		DeletedAt: s.now().UTC(),
	})
	return nil
}

// publish never fails the calling operation; a lost event is only logged.
func (s *Service) publish(ctx context.Context, event messaging.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish product event", "subject", event.Subject(), "error", err)
	}
}
