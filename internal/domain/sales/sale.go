package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopops/backend/internal/domain/shared"
)

// Sale is one sales record of a shop product
type Sale struct {
	shared.BaseEntity
	ShopID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShopProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID       string          `gorm:"type:varchar(100);index"`
	Quantity      int             `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Profit        decimal.Decimal `gorm:"type:decimal(12,2)"`
	SaleDate      time.Time       `gorm:"type:date;not null;index"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale records a sale
func NewSale(shopID, shopProductID uuid.UUID, quantity int, amount decimal.Decimal, saleDate time.Time) (*Sale, error) {
	if shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHOP", "Shop is required")
	}
	if shopProductID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Shop product is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	if saleDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Sale date is required")
	}
	return &Sale{
		BaseEntity:    shared.NewBaseEntity(),
		ShopID:        shopID,
		ShopProductID: shopProductID,
		Quantity:      quantity,
		Amount:        amount,
		SaleDate:      saleDate,
	}, nil
}

// SetOrderID attaches the marketplace order reference
func (s *Sale) SetOrderID(orderID string) {
	s.OrderID = orderID
	s.UpdatedAt = time.Now()
}

// SetProfit records the computed profit for the sale
func (s *Sale) SetProfit(profit decimal.Decimal) {
	s.Profit = profit
	s.UpdatedAt = time.Now()
}
