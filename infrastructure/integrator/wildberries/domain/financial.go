package wbdomain

import (
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
)

// ReportDetailRow é uma linha bruta do relatório financeiro paginado
// (endpoint reportDetailByPeriod, cursor rrd_id)
type ReportDetailRow struct {
	RrdID                int64   `json:"rrd_id"`
	RealizationReportID  int64   `json:"realizationreport_id"`
	DateFrom             string  `json:"date_from"`
	DateTo               string  `json:"date_to"`
	SupplierArticle      string  `json:"supplierArticle"`
	SaName               string  `json:"sa_name"`
	NmID                 int64   `json:"nm_id"`
	SubjectName          string  `json:"subject_name"`
	RetailAmount         float64 `json:"retail_amount"`
	ReturnAmount         float64 `json:"return_amount"`
	DeliveryAmount       float64 `json:"delivery_amount"`
	StornoDeliveryAmount float64 `json:"storno_delivery_amount"`
	PpvzForPay           float64 `json:"ppvz_for_pay"`
	Penalty              float64 `json:"penalty"`
	AdditionalPayment    float64 `json:"additional_payment"`
	StorageAmount        float64 `json:"storage_amount"`
	StorageFee           float64 `json:"storage_fee"`
	Deduction            float64 `json:"deduction"`
	SiteCountry          string  `json:"site_country"`
	OfficeName           string  `json:"office_name"`
	CreateDt             string  `json:"create_dt"`
	DocTypeName          string  `json:"doc_type_name"`
}

// ToDomain converte a linha bruta para a entidade normalizada.
// A origem alterna entre supplierArticle/sa_name e storage_amount/storage_fee
// dependendo da versão do relatório; o primeiro valor presente vence.
func (r ReportDetailRow) ToDomain(accountID string) *domain.FinancialLine {
	article := r.SupplierArticle
	if article == "" {
		article = r.SaName
	}

	storage := r.StorageAmount
	if storage == 0 {
		storage = r.StorageFee
	}

	return &domain.FinancialLine{
		AccountID:            accountID,
		ReportID:             r.RealizationReportID,
		DateFrom:             truncateDay(r.DateFrom),
		DateTo:               truncateDay(r.DateTo),
		NmID:                 r.NmID,
		SupplierArticle:      article,
		Subject:              r.SubjectName,
		RetailAmount:         r.RetailAmount,
		ReturnAmount:         r.ReturnAmount,
		DeliveryAmount:       r.DeliveryAmount,
		StornoDeliveryAmount: r.StornoDeliveryAmount,
		PpvzForPay:           r.PpvzForPay,
		Penalty:              r.Penalty,
		AdditionalPayment:    r.AdditionalPayment,
		StorageAmount:        storage,
		DeductionAmount:      r.Deduction,
		SiteCountry:          r.SiteCountry,
		WarehouseName:        r.OfficeName,
		ReportDate:           truncateDay(r.CreateDt),
		DocTypeName:          r.DocTypeName,
	}
}
