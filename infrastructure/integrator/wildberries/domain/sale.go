package wbdomain

import (
	"strings"

	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
)

// Sale é o payload bruto do endpoint supplier/sales
type Sale struct {
	Date            string     `json:"date"`
	SaleID          FlexString `json:"saleID"`
	NmID            int64      `json:"nmId"`
	SupplierArticle string     `json:"supplierArticle"`
	Quantity        int        `json:"quantity"`
	PriceWithDisc   float64    `json:"priceWithDisc"`
	ForPay          float64    `json:"forPay"`
	FinishedPrice   float64    `json:"finishedPrice"`
	IsReturn        *bool      `json:"isReturn"`
	WarehouseName   string     `json:"warehouseName"`
}

// ToDomain converte o registro bruto para a entidade normalizada.
// Quando a origem não informa isReturn, aplica-se a heurística do
// prefixo "R" no identificador da venda.
func (s Sale) ToDomain(accountID string) *domain.Sale {
	saleID := s.SaleID.String()

	isReturn := strings.HasPrefix(saleID, "R")
	if s.IsReturn != nil {
		isReturn = *s.IsReturn
	}

	return &domain.Sale{
		AccountID:       accountID,
		SaleID:          saleID,
		Date:            truncateDay(s.Date),
		NmID:            s.NmID,
		SupplierArticle: s.SupplierArticle,
		Quantity:        s.Quantity,
		PriceWithDisc:   s.PriceWithDisc,
		ForPay:          s.ForPay,
		FinishedPrice:   s.FinishedPrice,
		IsReturn:        isReturn,
		WarehouseName:   s.WarehouseName,
	}
}
