package wbdomain

import (
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
)

// Order é o payload bruto do endpoint supplier/orders.
// Campos ausentes na origem ficam com o valor zero e são normalizados
// uma única vez em ToDomain.
type Order struct {
	Date            string     `json:"date"`
	OrderID         FlexString `json:"orderId"`
	NmID            int64      `json:"nmId"`
	SupplierArticle string     `json:"supplierArticle"`
	Quantity        int        `json:"quantity"`
	TotalPrice      float64    `json:"totalPrice"`
	DiscountPercent float64    `json:"discountPercent"`
	WarehouseName   string     `json:"warehouseName"`
	Status          string     `json:"status"`
	IsCancel        bool       `json:"isCancel"`
}

// ToDomain converte o registro bruto para a entidade normalizada
func (o Order) ToDomain(accountID string) *domain.Order {
	return &domain.Order{
		AccountID:       accountID,
		OrderID:         o.OrderID.String(),
		Date:            truncateDay(o.Date),
		NmID:            o.NmID,
		SupplierArticle: o.SupplierArticle,
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice,
		DiscountPercent: o.DiscountPercent,
		WarehouseName:   o.WarehouseName,
		Status:          o.Status,
		IsCancel:        o.IsCancel,
	}
}
