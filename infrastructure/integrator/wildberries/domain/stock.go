package wbdomain

import (
	"time"

	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
)

// Stock é o payload bruto do endpoint supplier/stocks
type Stock struct {
	NmID            int64  `json:"nmId"`
	SupplierArticle string `json:"supplierArticle"`
	Subject         string `json:"subject"`
	Quantity        int    `json:"quantity"`
	WarehouseName   string `json:"warehouseName"`
}

// ToDomain converte o registro bruto para a entidade normalizada
func (s Stock) ToDomain(accountID string, now time.Time) *domain.Stock {
	return &domain.Stock{
		AccountID:       accountID,
		NmID:            s.NmID,
		SupplierArticle: s.SupplierArticle,
		Subject:         s.Subject,
		Quantity:        s.Quantity,
		WarehouseName:   s.WarehouseName,
		UpdatedAt:       now,
	}
}
