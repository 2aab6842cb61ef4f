package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/pkg/utils"
)

// upsertBatchSize limita o número de linhas por INSERT ... ON CONFLICT.
// Lotes menores mantêm as queries dentro do limite de parâmetros do driver.
const upsertBatchSize = 50

type OrderRepository interface {
	SaveOrUpdateBatch(orders []*domain.Order) (int, error)
	ListByPeriod(accountID, startDate, endDate string) ([]*domain.Order, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// SaveOrUpdateBatch insere ou atualiza pedidos em lotes, chaveados pelo
// order_id externo. Retorna o total de linhas processadas.
func (r *orderRepository) SaveOrUpdateBatch(orders []*domain.Order) (int, error) {
	total := 0

	for _, batch := range utils.Chunk(orders, upsertBatchSize) {
		queryBuilder := squirrel.
			Insert("orders").
			Columns(
				"account_id", "order_id", "date", "nm_id", "supplier_article",
				"quantity", "total_price", "discount_percent", "warehouse_name",
				"status", "is_cancel",
			).
			Suffix(`ON CONFLICT (order_id) DO UPDATE SET
				date = EXCLUDED.date,
				nm_id = EXCLUDED.nm_id,
				supplier_article = EXCLUDED.supplier_article,
				quantity = EXCLUDED.quantity,
				total_price = EXCLUDED.total_price,
				discount_percent = EXCLUDED.discount_percent,
				warehouse_name = EXCLUDED.warehouse_name,
				status = EXCLUDED.status,
				is_cancel = EXCLUDED.is_cancel`).
			PlaceholderFormat(squirrel.Dollar)

		for _, order := range batch {
			queryBuilder = queryBuilder.Values(
				order.AccountID, order.OrderID, order.Date, order.NmID,
				order.SupplierArticle, order.Quantity, order.TotalPrice,
				order.DiscountPercent, order.WarehouseName, order.Status,
				order.IsCancel,
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

func (r *orderRepository) ListByPeriod(accountID, startDate, endDate string) ([]*domain.Order, error) {
	query, args, err := squirrel.
		Select(
			"o.id, o.account_id, o.order_id, o.date, o.nm_id, o.supplier_article",
			"o.quantity, o.total_price, o.discount_percent, o.warehouse_name",
			"o.status, o.is_cancel",
		).
		From("orders o").
		Where(squirrel.Eq{"o.account_id": accountID}).
		Where(squirrel.GtOrEq{"o.date": startDate}).
		Where(squirrel.LtOrEq{"o.date": endDate}).
		OrderBy("o.date ASC").
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

	orders := make([]*domain.Order, 0)

	for rows.Next() {
		order := &domain.Order{}

		if err := rows.Scan(
			&order.ID,
			&order.AccountID,
			&order.OrderID,
			&order.Date,
			&order.NmID,
			&order.SupplierArticle,
			&order.Quantity,
			&order.TotalPrice,
			&order.DiscountPercent,
			&order.WarehouseName,
			&order.Status,
			&order.IsCancel,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear o pedido: %w", err)
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return orders, nil
}
