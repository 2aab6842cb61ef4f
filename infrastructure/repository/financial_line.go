package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/pkg/utils"
)

type FinancialLineRepository interface {
	SaveOrUpdateBatch(lines []*domain.FinancialLine) (int, error)
	ListByPeriod(accountID, startDate, endDate string) ([]*domain.FinancialLine, error)
}

type financialLineRepository struct {
	conn *postgres.Connection
}

func NewFinancialLineRepository(conn *postgres.Connection) FinancialLineRepository {
	return &financialLineRepository{
		conn: conn,
	}
}

// lineIdentity é a chave composta que identifica uma linha financeira.
// O relatório não expõe um identificador de linha estável, então a identidade
// vem da tupla que o índice único do banco também usa.
type lineIdentity struct {
	AccountID       string
	ReportID        int64
	NmID            int64
	DocTypeName     string
	SupplierArticle string
}

// mergeDuplicateLines colapsa linhas com a mesma identidade dentro de uma
// página: a última ocorrência vence, na posição da primeira. O Postgres
// rejeita um INSERT ... ON CONFLICT que toca a mesma tupla duas vezes, e uma
// página real traz uma linha por rrd_id, então o mesmo produto vendido mais
// de uma vez no período gera a colisão.
func mergeDuplicateLines(lines []*domain.FinancialLine) []*domain.FinancialLine {
	merged := make([]*domain.FinancialLine, 0, len(lines))
	position := make(map[lineIdentity]int, len(lines))

	for _, line := range lines {
		key := lineIdentity{
			AccountID:       line.AccountID,
			ReportID:        line.ReportID,
			NmID:            line.NmID,
			DocTypeName:     line.DocTypeName,
			SupplierArticle: line.SupplierArticle,
		}

		if i, ok := position[key]; ok {
			merged[i] = line
			continue
		}

		position[key] = len(merged)
		merged = append(merged, line)
	}

	return merged
}

// SaveOrUpdateBatch insere ou atualiza linhas financeiras em lotes. A chave
// de identidade é composta (conta, relatório, produto, tipo de documento,
// artigo), já que o relatório não expõe um identificador de linha estável.
// Duplicatas dentro da mesma página são colapsadas antes do INSERT.
func (r *financialLineRepository) SaveOrUpdateBatch(lines []*domain.FinancialLine) (int, error) {
	total := 0

	for _, batch := range utils.Chunk(mergeDuplicateLines(lines), upsertBatchSize) {
		queryBuilder := squirrel.
			Insert("financial_lines").
			Columns(
				"account_id", "report_id", "date_from", "date_to", "nm_id",
				"supplier_article", "subject", "retail_amount", "return_amount",
				"delivery_amount", "storno_delivery_amount", "ppvz_for_pay",
				"penalty", "additional_payment", "storage_amount",
				"deduction_amount", "site_country", "warehouse_name",
				"report_date", "doc_type_name",
			).
			Suffix(`ON CONFLICT (account_id, report_id, nm_id, doc_type_name, supplier_article) DO UPDATE SET
				date_from = EXCLUDED.date_from,
				date_to = EXCLUDED.date_to,
				subject = EXCLUDED.subject,
				retail_amount = EXCLUDED.retail_amount,
				return_amount = EXCLUDED.return_amount,
				delivery_amount = EXCLUDED.delivery_amount,
				storno_delivery_amount = EXCLUDED.storno_delivery_amount,
				ppvz_for_pay = EXCLUDED.ppvz_for_pay,
				penalty = EXCLUDED.penalty,
				additional_payment = EXCLUDED.additional_payment,
				storage_amount = EXCLUDED.storage_amount,
				deduction_amount = EXCLUDED.deduction_amount,
				site_country = EXCLUDED.site_country,
				warehouse_name = EXCLUDED.warehouse_name,
				report_date = EXCLUDED.report_date`).
			PlaceholderFormat(squirrel.Dollar)

		for _, line := range batch {
			queryBuilder = queryBuilder.Values(
				line.AccountID, line.ReportID, line.DateFrom, line.DateTo,
				line.NmID, line.SupplierArticle, line.Subject,
				line.RetailAmount, line.ReturnAmount, line.DeliveryAmount,
				line.StornoDeliveryAmount, line.PpvzForPay, line.Penalty,
				line.AdditionalPayment, line.StorageAmount,
				line.DeductionAmount, line.SiteCountry, line.WarehouseName,
				line.ReportDate, line.DocTypeName,
			)
		}

		query, args, err := queryBuilder.ToSql()
		if err != nil {
			return total, fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := r.conn.Exec(query, args...); err != nil {
			return total, fmt.Errorf("erro ao executar a query: %w", err)
		}

		total += len(batch)
	}

	return total, nil
}

// ListByPeriod retorna as linhas cujos períodos de relatório começam dentro
// da janela informada
func (r *financialLineRepository) ListByPeriod(accountID, startDate, endDate string) ([]*domain.FinancialLine, error) {
	query, args, err := squirrel.
		Select(
			"f.id, f.account_id, f.report_id, f.date_from, f.date_to, f.nm_id",
			"f.supplier_article, f.subject, f.retail_amount, f.return_amount",
			"f.delivery_amount, f.storno_delivery_amount, f.ppvz_for_pay",
			"f.penalty, f.additional_payment, f.storage_amount",
			"f.deduction_amount, f.site_country, f.warehouse_name",
			"f.report_date, f.doc_type_name",
		).
		From("financial_lines f").
		Where(squirrel.Eq{"f.account_id": accountID}).
		Where(squirrel.GtOrEq{"f.date_from": startDate}).
		Where(squirrel.LtOrEq{"f.date_from": endDate}).
		OrderBy("f.date_from ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	lines := make([]*domain.FinancialLine, 0)

	for rows.Next() {
		line := &domain.FinancialLine{}

		if err := rows.Scan(
			&line.ID,
			&line.AccountID,
			&line.ReportID,
			&line.DateFrom,
			&line.DateTo,
			&line.NmID,
			&line.SupplierArticle,
			&line.Subject,
			&line.RetailAmount,
			&line.ReturnAmount,
			&line.DeliveryAmount,
			&line.StornoDeliveryAmount,
			&line.PpvzForPay,
			&line.Penalty,
			&line.AdditionalPayment,
			&line.StorageAmount,
			&line.DeductionAmount,
			&line.SiteCountry,
			&line.WarehouseName,
			&line.ReportDate,
			&line.DocTypeName,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear a linha financeira: %w", err)
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return lines, nil
}
