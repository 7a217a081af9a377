package worksheet

import (
	"context"

	"github.com/google/uuid"
	catalogapp "github.com/shopops/backend/internal/application/catalog"
	"github.com/shopops/backend/internal/domain/catalog"
	"github.com/shopops/backend/internal/domain/shared"
	"github.com/shopops/backend/internal/domain/worksheet"
)

// Service handles worksheet operations. Every lookup is scoped to the
// owning user; another user's worksheet behaves as if it did not exist.
type Service struct {
	worksheetRepo worksheet.Repository
	productRepo   catalog.ShopProductRepository
}

// NewService creates a new worksheet Service
func NewService(worksheetRepo worksheet.Repository, productRepo catalog.ShopProductRepository) *Service {
	return &Service{
		worksheetRepo: worksheetRepo,
		productRepo:   productRepo,
	}
}

// Create creates a worksheet for a user. Names are unique per user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateWorksheetRequest) (*WorksheetResponse, error) {
	exists, err := s.worksheetRepo.ExistsByUserAndName(ctx, userID, req.Name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "You already have a worksheet with this name")
	}

	ws, err := worksheet.NewWorksheet(userID, req.Name, req.Config)
	if err != nil {
		return nil, err
	}
	if err := s.worksheetRepo.Save(ctx, ws); err != nil {
		return nil, err
	}

	response := ToWorksheetResponse(ws)
	return &response, nil
}

// GetByID retrieves one of the user's worksheets
func (s *Service) GetByID(ctx context.Context, userID, worksheetID uuid.UUID) (*WorksheetResponse, error) {
	ws, err := s.worksheetRepo.FindByID(ctx, userID, worksheetID)
	if err != nil {
		return nil, err
	}
	response := ToWorksheetResponse(ws)
	return &response, nil
}

// List retrieves the user's worksheets, most recently updated first
func (s *Service) List(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]WorksheetResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	worksheets, err := s.worksheetRepo.FindByUser(ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]WorksheetResponse, len(worksheets))
	for i := range worksheets {
		responses[i] = ToWorksheetResponse(&worksheets[i])
	}
	return responses, nil
}

// Update updates one of the user's worksheets
func (s *Service) Update(ctx context.Context, userID, worksheetID uuid.UUID, req UpdateWorksheetRequest) (*WorksheetResponse, error) {
	ws, err := s.worksheetRepo.FindByID(ctx, userID, worksheetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != ws.Name {
		exists, err := s.worksheetRepo.ExistsByUserAndName(ctx, userID, *req.Name, &worksheetID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "You already have a worksheet with this name")
		}
		if err := ws.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Config != nil {
		ws.SetConfig(req.Config)
	}

	if err := s.worksheetRepo.Save(ctx, ws); err != nil {
		return nil, err
	}

	response := ToWorksheetResponse(ws)
	return &response, nil
}

// Delete removes one of the user's worksheets
func (s *Service) Delete(ctx context.Context, userID, worksheetID uuid.UUID) error {
	return s.worksheetRepo.Delete(ctx, userID, worksheetID)
}

// QueryData returns the page of enriched shop products a worksheet selects,
// together with the worksheet descriptor. The total comes from the store.
func (s *Service) QueryData(ctx context.Context, userID, worksheetID uuid.UUID, req QueryDataRequest) (*QueryDataResponse, error) {
	ws, err := s.worksheetRepo.FindByID(ctx, userID, worksheetID)
	if err != nil {
		return nil, err
	}

	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	query := catalog.ShopProductQuery{
		ShopID:   req.ShopID,
		Keyword:  req.Keyword,
		Page:     page,
		PageSize: pageSize,
	}
	if req.Status != "" {
		status, err := catalog.ParseListingStatus(req.Status)
		if err != nil {
			return nil, err
		}
		query.Status = &status
	}

	items, total, err := s.productRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	responses := make([]catalogapp.ShopProductResponse, len(items))
	for i := range items {
		responses[i] = catalogapp.ToShopProductListResponse(&items[i])
	}

	return &QueryDataResponse{
		Worksheet: ToWorksheetResponse(ws),
		Items:     responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}
