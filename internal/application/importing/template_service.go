package importing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/bulk"
	"github.com/shopops/backend/internal/domain/shared"
)

// TemplateService manages the per-target import templates
type TemplateService struct {
	templateRepo bulk.ImportTemplateRepository
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(templateRepo bulk.ImportTemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

// Create creates a template for an import target. Targets hold at most one
// template.
func (s *TemplateService) Create(ctx context.Context, req CreateTemplateRequest) (*TemplateResponse, error) {
	target := bulk.ImportTarget(req.Target)
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_TARGET", fmt.Sprintf("Unknown import target %q", req.Target))
	}

	existing, err := s.templateRepo.FindByTarget(ctx, target)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Target already has a template")
	}

	template, err := bulk.NewImportTemplate(target, req.Name, req.Columns)
	if err != nil {
		return nil, err
	}
	if req.Description != "" || len(req.ExampleRow) > 0 {
		if err := template.Update(req.Name, req.Description, req.Columns, req.ExampleRow); err != nil {
			return nil, err
		}
	}

	if err := s.templateRepo.Save(ctx, template); err != nil {
		return nil, err
	}

	response := ToTemplateResponse(template)
	return &response, nil
}

// GetByTarget retrieves the template of an import target
func (s *TemplateService) GetByTarget(ctx context.Context, target string) (*TemplateResponse, error) {
	parsed := bulk.ImportTarget(target)
	if !parsed.IsValid() {
		return nil, shared.NewDomainError("INVALID_TARGET", fmt.Sprintf("Unknown import target %q", target))
	}
	template, err := s.templateRepo.FindByTarget(ctx, parsed)
	if err != nil {
		return nil, err
	}
	response := ToTemplateResponse(template)
	return &response, nil
}

// List retrieves all templates ordered by target
func (s *TemplateService) List(ctx context.Context) ([]TemplateResponse, error) {
	templates, err := s.templateRepo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 100})
	if err != nil {
		return nil, err
	}
	responses := make([]TemplateResponse, len(templates))
	for i := range templates {
		responses[i] = ToTemplateResponse(&templates[i])
	}
	return responses, nil
}

// Update updates a template's descriptive attributes
func (s *TemplateService) Update(ctx context.Context, templateID uuid.UUID, req UpdateTemplateRequest) (*TemplateResponse, error) {
	template, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	name := template.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := template.Description
	if req.Description != nil {
		description = *req.Description
	}
	columns := []string(template.Columns)
	if req.Columns != nil {
		columns = req.Columns
	}
	exampleRow := []string(template.ExampleRow)
	if req.ExampleRow != nil {
		exampleRow = req.ExampleRow
	}

	if err := template.Update(name, description, columns, exampleRow); err != nil {
		return nil, err
	}
	if err := s.templateRepo.Save(ctx, template); err != nil {
		return nil, err
	}

	response := ToTemplateResponse(template)
	return &response, nil
}

// Delete removes a template
func (s *TemplateService) Delete(ctx context.Context, templateID uuid.UUID) error {
	return s.templateRepo.Delete(ctx, templateID)
}
