package channel

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/application/system"
	"github.com/shopops/backend/internal/domain/channel"
	"github.com/shopops/backend/internal/domain/shared"
)

// PlatformService handles platform business operations
type PlatformService struct {
	platformRepo channel.PlatformRepository
	shopRepo     channel.ShopRepository
	recorder     *system.Recorder
}

// NewPlatformService creates a new PlatformService
func NewPlatformService(
	platformRepo channel.PlatformRepository,
	shopRepo channel.ShopRepository,
	recorder *system.Recorder,
) *PlatformService {
	return &PlatformService{
		platformRepo: platformRepo,
		shopRepo:     shopRepo,
		recorder:     recorder,
	}
}

// Create creates a new platform
func (s *PlatformService) Create(ctx context.Context, actorID *uuid.UUID, req CreatePlatformRequest) (*PlatformResponse, error) {
	exists, err := s.platformRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Platform with this code already exists")
	}

	platform, err := channel.NewPlatform(req.Name, req.Code)
	if err != nil {
		return nil, err
	}

	if req.Icon != "" || req.Description != "" {
		if err := platform.Update(req.Name, req.Icon, req.Description); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		platform.SetSortOrder(*req.SortOrder)
	}
	if req.Config != nil {
		platform.SetConfig(req.Config)
	}

	if err := s.platformRepo.Save(ctx, platform); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "create", "platforms", platform.ID.String(), nil, platform)

	response := ToPlatformResponse(platform)
	return &response, nil
}

// GetByID retrieves a platform with its shop count
func (s *PlatformService) GetByID(ctx context.Context, platformID uuid.UUID) (*PlatformResponse, error) {
	platform, err := s.platformRepo.FindByID(ctx, platformID)
	if err != nil {
		return nil, err
	}

	count, err := s.shopRepo.CountByPlatform(ctx, platformID)
	if err != nil {
		return nil, err
	}

	response := ToPlatformResponse(platform)
	response.ShopCount = count
	return &response, nil
}

// List retrieves platforms with filtering and pagination
func (s *PlatformService) List(ctx context.Context, filter PlatformListFilter) ([]PlatformResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "sort_order"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}

	platforms, err := s.platformRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.platformRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PlatformResponse, len(platforms))
	for i := range platforms {
		responses[i] = ToPlatformResponse(&platforms[i])
	}
	return responses, total, nil
}

// ListActive returns active platforms ordered for navigation
func (s *PlatformService) ListActive(ctx context.Context) ([]PlatformResponse, error) {
	platforms, err := s.platformRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]PlatformResponse, len(platforms))
	for i := range platforms {
		responses[i] = ToPlatformResponse(&platforms[i])
	}
	return responses, nil
}

// Update updates a platform
func (s *PlatformService) Update(ctx context.Context, actorID *uuid.UUID, platformID uuid.UUID, req UpdatePlatformRequest) (*PlatformResponse, error) {
	platform, err := s.platformRepo.FindByID(ctx, platformID)
	if err != nil {
		return nil, err
	}
	before := *platform

	name := platform.Name
	if req.Name != nil {
		name = *req.Name
	}
	icon := platform.Icon
	if req.Icon != nil {
		icon = *req.Icon
	}
	description := platform.Description
	if req.Description != nil {
		description = *req.Description
	}
	if err := platform.Update(name, icon, description); err != nil {
		return nil, err
	}

	if req.SortOrder != nil {
		platform.SetSortOrder(*req.SortOrder)
	}
	if req.Config != nil {
		platform.SetConfig(req.Config)
	}

	if err := s.platformRepo.Save(ctx, platform); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "update", "platforms", platform.ID.String(), &before, platform)

	response := ToPlatformResponse(platform)
	return &response, nil
}

// Activate enables a platform
func (s *PlatformService) Activate(ctx context.Context, actorID *uuid.UUID, platformID uuid.UUID) (*PlatformResponse, error) {
	return s.setActive(ctx, actorID, platformID, true)
}

// Deactivate disables a platform. Its shops and data are kept.
func (s *PlatformService) Deactivate(ctx context.Context, actorID *uuid.UUID, platformID uuid.UUID) (*PlatformResponse, error) {
	return s.setActive(ctx, actorID, platformID, false)
}

func (s *PlatformService) setActive(ctx context.Context, actorID *uuid.UUID, platformID uuid.UUID, active bool) (*PlatformResponse, error) {
	platform, err := s.platformRepo.FindByID(ctx, platformID)
	if err != nil {
		return nil, err
	}

	action := "deactivate"
	if active {
		action = "activate"
		err = platform.Activate()
	} else {
		err = platform.Deactivate()
	}
	if err != nil {
		return nil, err
	}

	if err := s.platformRepo.Save(ctx, platform); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, action, "platforms", platform.ID.String(), nil, nil)

	response := ToPlatformResponse(platform)
	return &response, nil
}

// Delete removes a platform. Platforms that still have shops are protected.
func (s *PlatformService) Delete(ctx context.Context, actorID *uuid.UUID, platformID uuid.UUID) error {
	platform, err := s.platformRepo.FindByID(ctx, platformID)
	if err != nil {
		return err
	}

	count, err := s.shopRepo.CountByPlatform(ctx, platformID)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("RESOURCE_IN_USE", "Platform still has shops and cannot be deleted")
	}

	if err := s.platformRepo.Delete(ctx, platformID); err != nil {
		return err
	}

	s.recorder.Record(ctx, actorID, "delete", "platforms", platformID.String(), platform, nil)
	return nil
}
