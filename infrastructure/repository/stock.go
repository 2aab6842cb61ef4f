package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/pkg/utils"
)

type StockRepository interface {
	Replace(ctx context.Context, accountID string, stocks []*domain.Stock) (int, error)
	ListByAccount(accountID string) ([]*domain.Stock, error)
}

type stockRepository struct {
	conn *postgres.Connection
}

func NewStockRepository(conn *postgres.Connection) StockRepository {
	return &stockRepository{
		conn: conn,
	}
}

// Replace substitui o snapshot de estoque da conta em uma única transação:
// remove as linhas existentes e insere as novas. Em caso de erro nada muda,
// preservando o snapshot anterior.
func (r *stockRepository) Replace(ctx context.Context, accountID string, stocks []*domain.Stock) (int, error) {
	total := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := squirrel.
			Delete("stocks").
			Where(squirrel.Eq{"account_id": accountID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao limpar o estoque anterior: %w", err)
		}

		for _, batch := range utils.Chunk(stocks, upsertBatchSize) {
			queryBuilder := squirrel.
				Insert("stocks").
				Columns(
					"account_id", "nm_id", "supplier_article", "subject",
					"quantity", "warehouse_name", "updated_at",
				).
				PlaceholderFormat(squirrel.Dollar)

			for _, stock := range batch {
				queryBuilder = queryBuilder.Values(
					stock.AccountID, stock.NmID, stock.SupplierArticle,
					stock.Subject, stock.Quantity, stock.WarehouseName,
					stock.UpdatedAt,
				)
			}

			query, args, err := queryBuilder.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir o estoque: %w", err)
			}

			total += len(batch)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *stockRepository) ListByAccount(accountID string) ([]*domain.Stock, error) {
	query, args, err := squirrel.
		Select(
			"s.id, s.account_id, s.nm_id, s.supplier_article, s.subject",
			"s.quantity, s.warehouse_name, s.updated_at",
		).
		From("stocks s").
		Where(squirrel.Eq{"s.account_id": accountID}).
		OrderBy("s.supplier_article ASC, s.warehouse_name ASC").
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

	stocks := make([]*domain.Stock, 0)

	for rows.Next() {
		stock := &domain.Stock{}

		if err := rows.Scan(
			&stock.ID,
			&stock.AccountID,
			&stock.NmID,
			&stock.SupplierArticle,
			&stock.Subject,
			&stock.Quantity,
			&stock.WarehouseName,
			&stock.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear o estoque: %w", err)
		}

		stocks = append(stocks, stock)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return stocks, nil
}
