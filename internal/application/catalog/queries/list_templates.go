package queries

import (
	"context"
	"fmt"

	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
)

// ListTemplatesQuery returns the full ship_master reference catalog
type ListTemplatesQuery struct{}

// ListTemplatesResult wraps the catalog
type ListTemplatesResult struct {
	Templates []ship.Template
}

// ListTemplatesHandler serves the read-only wiki listing
type ListTemplatesHandler struct {
	templates ship.TemplateRepository
}

// NewListTemplatesHandler creates a list templates handler
func NewListTemplatesHandler(templates ship.TemplateRepository) *ListTemplatesHandler {
	return &ListTemplatesHandler{templates: templates}
}

// Handle executes the list templates query
func (h *ListTemplatesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListTemplatesQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	templates, err := h.templates.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ListTemplatesResult{Templates: templates}, nil
}
