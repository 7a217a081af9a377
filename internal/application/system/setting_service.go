package system

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
	"github.com/shopops/backend/internal/domain/system"
)

// SettingService handles keyed configuration values
type SettingService struct {
	settingRepo system.SettingRepository
	recorder    *Recorder
}

// NewSettingService creates a new SettingService
func NewSettingService(settingRepo system.SettingRepository, recorder *Recorder) *SettingService {
	return &SettingService{settingRepo: settingRepo, recorder: recorder}
}

// Create creates a setting. Keys are unique.
func (s *SettingService) Create(ctx context.Context, actorID *uuid.UUID, req CreateSettingRequest) (*SettingResponse, error) {
	existing, err := s.settingRepo.FindByKey(ctx, req.Key)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Setting key already exists")
	}

	setting, err := system.NewSetting(req.Key, req.Value, system.ValueType(req.ValueType))
	if err != nil {
		return nil, err
	}
	setting.Description = req.Description
	setting.GroupName = req.GroupName
	if req.IsPublic != nil {
		setting.IsPublic = *req.IsPublic
	}

	if err := s.settingRepo.Save(ctx, setting); err != nil {
		return nil, err
	}

	response := ToSettingResponse(setting)
	s.recorder.Record(ctx, actorID, "create", "settings", setting.ID.String(), nil, response)
	return &response, nil
}

// GetByKey retrieves a setting by its key
func (s *SettingService) GetByKey(ctx context.Context, key string) (*SettingResponse, error) {
	setting, err := s.settingRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	response := ToSettingResponse(setting)
	return &response, nil
}

// List retrieves settings, optionally narrowed to a group
func (s *SettingService) List(ctx context.Context, group string) ([]SettingResponse, error) {
	var (
		settings []system.Setting
		err      error
	)
	if group != "" {
		settings, err = s.settingRepo.FindByGroup(ctx, group)
	} else {
		settings, err = s.settingRepo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 500, OrderBy: "key", OrderDir: "asc"})
	}
	if err != nil {
		return nil, err
	}
	return toSettingResponses(settings), nil
}

// ListPublic retrieves the settings readable without admin rights
func (s *SettingService) ListPublic(ctx context.Context) ([]SettingResponse, error) {
	settings, err := s.settingRepo.FindPublic(ctx)
	if err != nil {
		return nil, err
	}
	return toSettingResponses(settings), nil
}

// Update updates a setting. The value is revalidated against its type.
func (s *SettingService) Update(ctx context.Context, actorID *uuid.UUID, key string, req UpdateSettingRequest) (*SettingResponse, error) {
	setting, err := s.settingRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	before := ToSettingResponse(setting)

	if req.Value != nil {
		if err := setting.UpdateValue(*req.Value); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		setting.Description = *req.Description
	}
	if req.GroupName != nil {
		setting.GroupName = *req.GroupName
	}
	if req.IsPublic != nil {
		setting.IsPublic = *req.IsPublic
	}

	if err := s.settingRepo.Save(ctx, setting); err != nil {
		return nil, err
	}

	response := ToSettingResponse(setting)
	s.recorder.Record(ctx, actorID, "update", "settings", setting.ID.String(), before, response)
	return &response, nil
}

// Delete removes a setting by key
func (s *SettingService) Delete(ctx context.Context, actorID *uuid.UUID, key string) error {
	setting, err := s.settingRepo.FindByKey(ctx, key)
	if err != nil {
		return err
	}
	if err := s.settingRepo.Delete(ctx, setting.ID); err != nil {
		return err
	}

	s.recorder.Record(ctx, actorID, "delete", "settings", setting.ID.String(), ToSettingResponse(setting), nil)
	return nil
}

func toSettingResponses(settings []system.Setting) []SettingResponse {
	responses := make([]SettingResponse, len(settings))
	for i := range settings {
		responses[i] = ToSettingResponse(&settings[i])
	}
	return responses
}
