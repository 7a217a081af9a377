package system

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
	"github.com/shopops/backend/internal/domain/system"
)

// MenuService handles navigation menu management
type MenuService struct {
	menuRepo system.MenuItemRepository
	recorder *Recorder
}

// NewMenuService creates a new MenuService
func NewMenuService(menuRepo system.MenuItemRepository, recorder *Recorder) *MenuService {
	return &MenuService{menuRepo: menuRepo, recorder: recorder}
}

// Create creates a menu item
func (s *MenuService) Create(ctx context.Context, actorID *uuid.UUID, req CreateMenuItemRequest) (*MenuItemResponse, error) {
	if req.ParentID != nil {
		if _, err := s.menuRepo.FindByID(ctx, *req.ParentID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PARENT", "Parent menu item does not exist")
			}
			return nil, err
		}
	}

	item, err := system.NewMenuItem(req.Name, req.Path, req.ParentID)
	if err != nil {
		return nil, err
	}
	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}
	if err := item.Update(req.Name, req.Icon, req.Path, req.Component, req.RequiredRole, req.SortOrder, visible); err != nil {
		return nil, err
	}

	if err := s.menuRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToMenuItemResponse(item)
	s.recorder.Record(ctx, actorID, "create", "menu_items", item.ID.String(), nil, response)
	return &response, nil
}

// GetByID retrieves a menu item by ID
func (s *MenuService) GetByID(ctx context.Context, id uuid.UUID) (*MenuItemResponse, error) {
	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToMenuItemResponse(item)
	return &response, nil
}

// Tree returns the full menu tree for administration, hidden items included
func (s *MenuService) Tree(ctx context.Context) ([]MenuTreeNode, error) {
	items, err := s.menuRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	return buildMenuTree(items, nil), nil
}

// VisibleTree returns the menu tree a role may see. A parent hidden from
// the role hides its whole subtree.
func (s *MenuService) VisibleTree(ctx context.Context, role string) ([]MenuTreeNode, error) {
	items, err := s.menuRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]system.MenuItem, 0, len(items))
	for i := range items {
		if items[i].VisibleTo(role) {
			visible = append(visible, items[i])
		}
	}
	return buildMenuTree(visible, nil), nil
}

// Update updates a menu item
func (s *MenuService) Update(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req UpdateMenuItemRequest) (*MenuItemResponse, error) {
	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := ToMenuItemResponse(item)

	name := item.Name
	icon := item.Icon
	path := item.Path
	component := item.Component
	requiredRole := item.RequiredRole
	sortOrder := item.SortOrder
	visible := item.IsVisible
	if req.Name != nil {
		name = *req.Name
	}
	if req.Icon != nil {
		icon = *req.Icon
	}
	if req.Path != nil {
		path = *req.Path
	}
	if req.Component != nil {
		component = *req.Component
	}
	if req.RequiredRole != nil {
		requiredRole = *req.RequiredRole
	}
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}
	if err := item.Update(name, icon, path, component, requiredRole, sortOrder, visible); err != nil {
		return nil, err
	}

	if err := s.menuRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToMenuItemResponse(item)
	s.recorder.Record(ctx, actorID, "update", "menu_items", item.ID.String(), before, response)
	return &response, nil
}

// Delete removes a menu item. Items with children cannot be deleted.
func (s *MenuService) Delete(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hasChildren, err := s.menuRepo.HasChildren(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return shared.NewDomainError("RESOURCE_IN_USE", "Menu item still has children and cannot be deleted")
	}

	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, actorID, "delete", "menu_items", id.String(), ToMenuItemResponse(item), nil)
	return nil
}

// buildMenuTree assembles children under the given parent. Items arrive
// already ordered by sort order.
func buildMenuTree(items []system.MenuItem, parentID *uuid.UUID) []MenuTreeNode {
	nodes := make([]MenuTreeNode, 0)
	for i := range items {
		item := &items[i]
		if !sameParent(item.ParentID, parentID) {
			continue
		}
		nodes = append(nodes, MenuTreeNode{
			MenuItemResponse: ToMenuItemResponse(item),
			Children:         buildMenuTree(items, &item.ID),
		})
	}
	return nodes
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
