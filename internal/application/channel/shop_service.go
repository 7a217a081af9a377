package channel

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/application/system"
	"github.com/shopops/backend/internal/domain/channel"
	"github.com/shopops/backend/internal/domain/identity"
	"github.com/shopops/backend/internal/domain/shared"
)

// ShopService handles shop business operations
type ShopService struct {
	shopRepo     channel.ShopRepository
	platformRepo channel.PlatformRepository
	userRepo     identity.UserRepository
	recorder     *system.Recorder
}

// NewShopService creates a new ShopService
func NewShopService(
	shopRepo channel.ShopRepository,
	platformRepo channel.PlatformRepository,
	userRepo identity.UserRepository,
	recorder *system.Recorder,
) *ShopService {
	return &ShopService{
		shopRepo:     shopRepo,
		platformRepo: platformRepo,
		userRepo:     userRepo,
		recorder:     recorder,
	}
}

// Create creates a new shop under a platform
func (s *ShopService) Create(ctx context.Context, actorID *uuid.UUID, req CreateShopRequest) (*ShopResponse, error) {
	if _, err := s.platformRepo.FindByID(ctx, req.PlatformID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PLATFORM", "Platform not found")
		}
		return nil, err
	}

	exists, err := s.shopRepo.ExistsByPlatformAndName(ctx, req.PlatformID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Shop with this name already exists on the platform")
	}

	shop, err := channel.NewShop(req.PlatformID, req.Name, req.Account)
	if err != nil {
		return nil, err
	}

	if req.ManagerID != nil {
		if err := s.verifyManager(ctx, *req.ManagerID); err != nil {
			return nil, err
		}
		shop.AssignManager(*req.ManagerID)
	}

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "create", "shops", shop.ID.String(), nil, shop)

	response := ToShopResponse(shop)
	return &response, nil
}

// GetByID retrieves a shop by ID
func (s *ShopService) GetByID(ctx context.Context, shopID uuid.UUID) (*ShopResponse, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	response := ToShopResponse(shop)
	return &response, nil
}

// List retrieves shops with filtering and pagination
func (s *ShopService) List(ctx context.Context, filter ShopListFilter) ([]ShopResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.PlatformID != nil {
		domainFilter.Filters["platform_id"] = *filter.PlatformID
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.ManagerID != nil {
		domainFilter.Filters["manager_id"] = *filter.ManagerID
	}

	shops, err := s.shopRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.shopRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToShopResponses(shops), total, nil
}

// ListByPlatform returns all shops of a platform
func (s *ShopService) ListByPlatform(ctx context.Context, platformID uuid.UUID) ([]ShopResponse, error) {
	if _, err := s.platformRepo.FindByID(ctx, platformID); err != nil {
		return nil, err
	}
	shops, err := s.shopRepo.FindByPlatform(ctx, platformID)
	if err != nil {
		return nil, err
	}
	return ToShopResponses(shops), nil
}

// Update updates a shop
func (s *ShopService) Update(ctx context.Context, actorID *uuid.UUID, shopID uuid.UUID, req UpdateShopRequest) (*ShopResponse, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	before := *shop

	name := shop.Name
	if req.Name != nil {
		name = *req.Name
	}
	if name != shop.Name {
		exists, err := s.shopRepo.ExistsByPlatformAndName(ctx, shop.PlatformID, name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Shop with this name already exists on the platform")
		}
	}

	account := shop.Account
	if req.Account != nil {
		account = *req.Account
	}
	if err := shop.Update(name, account); err != nil {
		return nil, err
	}

	if req.ManagerID != nil {
		if *req.ManagerID != uuid.Nil {
			if err := s.verifyManager(ctx, *req.ManagerID); err != nil {
				return nil, err
			}
		}
		shop.AssignManager(*req.ManagerID)
	}

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "update", "shops", shop.ID.String(), &before, shop)

	response := ToShopResponse(shop)
	return &response, nil
}

// Activate marks a shop as operating
func (s *ShopService) Activate(ctx context.Context, actorID *uuid.UUID, shopID uuid.UUID) (*ShopResponse, error) {
	return s.setStatus(ctx, actorID, shopID, true)
}

// Deactivate marks a shop as closed
func (s *ShopService) Deactivate(ctx context.Context, actorID *uuid.UUID, shopID uuid.UUID) (*ShopResponse, error) {
	return s.setStatus(ctx, actorID, shopID, false)
}

func (s *ShopService) setStatus(ctx context.Context, actorID *uuid.UUID, shopID uuid.UUID, active bool) (*ShopResponse, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	action := "deactivate"
	if active {
		action = "activate"
		err = shop.Activate()
	} else {
		err = shop.Deactivate()
	}
	if err != nil {
		return nil, err
	}

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, action, "shops", shop.ID.String(), nil, nil)

	response := ToShopResponse(shop)
	return &response, nil
}

// Delete removes a shop
func (s *ShopService) Delete(ctx context.Context, actorID *uuid.UUID, shopID uuid.UUID) error {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return err
	}

	if err := s.shopRepo.Delete(ctx, shopID); err != nil {
		return err
	}

	s.recorder.Record(ctx, actorID, "delete", "shops", shopID.String(), shop, nil)
	return nil
}

func (s *ShopService) verifyManager(ctx context.Context, managerID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, managerID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_MANAGER", "Manager user not found")
		}
		return err
	}
	return nil
}
