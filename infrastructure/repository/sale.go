package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/pkg/utils"
)

type SaleRepository interface {
	SaveOrUpdateBatch(sales []*domain.Sale) (int, error)
	ListByPeriod(accountID, startDate, endDate string) ([]*domain.Sale, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// SaveOrUpdateBatch insere ou atualiza vendas em lotes, chaveadas pelo
// sale_id externo
func (r *saleRepository) SaveOrUpdateBatch(sales []*domain.Sale) (int, error) {
	total := 0

	for _, batch := range utils.Chunk(sales, upsertBatchSize) {
		queryBuilder := squirrel.
			Insert("sales").
			Columns(
				"account_id", "sale_id", "date", "nm_id", "supplier_article",
				"quantity", "price_with_disc", "for_pay", "finished_price",
				"is_return", "warehouse_name",
			).
			Suffix(`ON CONFLICT (sale_id) DO UPDATE SET
				date = EXCLUDED.date,
				nm_id = EXCLUDED.nm_id,
				supplier_article = EXCLUDED.supplier_article,
				quantity = EXCLUDED.quantity,
				price_with_disc = EXCLUDED.price_with_disc,
				for_pay = EXCLUDED.for_pay,
				finished_price = EXCLUDED.finished_price,
				is_return = EXCLUDED.is_return,
				warehouse_name = EXCLUDED.warehouse_name`).
			PlaceholderFormat(squirrel.Dollar)

		for _, sale := range batch {
			queryBuilder = queryBuilder.Values(
				sale.AccountID, sale.SaleID, sale.Date, sale.NmID,
				sale.SupplierArticle, sale.Quantity, sale.PriceWithDisc,
				sale.ForPay, sale.FinishedPrice, sale.IsReturn,
				sale.WarehouseName,
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

func (r *saleRepository) ListByPeriod(accountID, startDate, endDate string) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select(
			"s.id, s.account_id, s.sale_id, s.date, s.nm_id, s.supplier_article",
			"s.quantity, s.price_with_disc, s.for_pay, s.finished_price",
			"s.is_return, s.warehouse_name",
		).
		From("sales s").
		Where(squirrel.Eq{"s.account_id": accountID}).
		Where(squirrel.GtOrEq{"s.date": startDate}).
		Where(squirrel.LtOrEq{"s.date": endDate}).
		OrderBy("s.date ASC").
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

	sales := make([]*domain.Sale, 0)

	for rows.Next() {
		sale := &domain.Sale{}

		if err := rows.Scan(
			&sale.ID,
			&sale.AccountID,
			&sale.SaleID,
			&sale.Date,
			&sale.NmID,
			&sale.SupplierArticle,
			&sale.Quantity,
			&sale.PriceWithDisc,
			&sale.ForPay,
			&sale.FinishedPrice,
			&sale.IsReturn,
			&sale.WarehouseName,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear a venda: %w", err)
		}

		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return sales, nil
}
