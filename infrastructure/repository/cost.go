package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/pkg/utils"
)

type CostRepository interface {
	Upsert(accountID string, item domain.CostItem, now time.Time) error
	BulkUpsert(accountID string, items []domain.CostItem, now time.Time) (int, error)
	ListByAccount(accountID string) ([]*domain.Cost, error)
}

type costRepository struct {
	conn *postgres.Connection
}

func NewCostRepository(conn *postgres.Connection) CostRepository {
	return &costRepository{
		conn: conn,
	}
}

// Upsert grava o custo unitário de um produto, chaveado por (conta, produto)
func (r *costRepository) Upsert(accountID string, item domain.CostItem, now time.Time) error {
	query, args, err := squirrel.
		Insert("costs").
		Columns("account_id", "nm_id", "supplier_article", "cost", "updated_at").
		Values(accountID, item.NmID, item.SupplierArticle, item.Cost, now).
		Suffix(`ON CONFLICT (account_id, nm_id) DO UPDATE SET
			supplier_article = EXCLUDED.supplier_article,
			cost = EXCLUDED.cost,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *costRepository) BulkUpsert(accountID string, items []domain.CostItem, now time.Time) (int, error) {
	total := 0

	for _, batch := range utils.Chunk(items, upsertBatchSize) {
		queryBuilder := squirrel.
			Insert("costs").
			Columns("account_id", "nm_id", "supplier_article", "cost", "updated_at").
			Suffix(`ON CONFLICT (account_id, nm_id) DO UPDATE SET
				supplier_article = EXCLUDED.supplier_article,
				cost = EXCLUDED.cost,
				updated_at = EXCLUDED.updated_at`).
			PlaceholderFormat(squirrel.Dollar)

		for _, item := range batch {
			queryBuilder = queryBuilder.Values(
				accountID, item.NmID, item.SupplierArticle, item.Cost, now,
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

func (r *costRepository) ListByAccount(accountID string) ([]*domain.Cost, error) {
	query, args, err := squirrel.
		Select("c.id, c.account_id, c.nm_id, c.supplier_article, c.cost, c.updated_at").
		From("costs c").
		Where(squirrel.Eq{"c.account_id": accountID}).
		OrderBy("c.supplier_article ASC").
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

	costs := make([]*domain.Cost, 0)

	for rows.Next() {
		cost := &domain.Cost{}

		if err := rows.Scan(
			&cost.ID,
			&cost.AccountID,
			&cost.NmID,
			&cost.SupplierArticle,
			&cost.Cost,
			&cost.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear o custo: %w", err)
		}

		costs = append(costs, cost)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return costs, nil
}
