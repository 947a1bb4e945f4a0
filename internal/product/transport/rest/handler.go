// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vistula/firstapi/internal/product/dto"
	"github.com/vistula/firstapi/internal/product/service"
	"github.com/vistula/firstapi/pkg/web"
)

// BasePath is the prefix of every product route.
const BasePath = "/api/v1/products"

type Handler struct {
	service service.ProductService
	logger  *slog.Logger
}

// NewHandler creates a new instance of the product REST API backed by service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the product service.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route(BasePath, func(r chi.Router) {
		r.Get("/", h.handle(h.FindAll))
		r.Post("/", h.handle(h.Create))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handle(h.Find))
			r.Put("/", h.handle(h.Update))
			r.Delete("/", h.handle(h.Delete))
		})
	})
}

// Find retrieves a product by its ID.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) error {
	id, err := web.ParseID(r)
	if err != nil {
		return err
	}

	h.logger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.Find(r.Context(), id)
	if err != nil {
		return err
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, h.logger, http.StatusOK, found)
	return nil
}

// FindAll retrieves a list of all products.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) error {
	h.logger.DebugContext(r.Context(), "Received request to find all products")
	list, err := h.service.FindAll(r.Context())
	if err != nil {
		return err
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, h.logger, http.StatusOK, list)
	return nil
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	var req dto.ProductRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}
	h.logger.DebugContext(r.Context(), "Received request to create product", "product", req)

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		return err
	}
	h.logger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, created)
	return nil
}

// Update renames the product identified by the path.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	id, err := web.ParseID(r)
	if err != nil {
		return err
	}
	var req dto.UpdateProductRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}
	h.logger.DebugContext(r.Context(), "Received request to update product", "ID", id)

	updated, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		return err
	}
	h.logger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
	return nil
}

// Delete deletes a product by its ID.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := web.ParseID(r)
	if err != nil {
		return err
	}

	h.logger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	if err := h.service.Delete(r.Context(), id); err != nil {
		return err
	}
	h.logger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
	return nil
}
