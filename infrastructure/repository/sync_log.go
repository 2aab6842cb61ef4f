package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
)

const defaultSyncLogLimit = 20

type SyncLogRepository interface {
	Append(entry *domain.SyncLogEntry) error
	ListRecent(accountID string, limit int) ([]*domain.SyncLogEntry, error)
}

type syncLogRepository struct {
	conn *postgres.Connection
}

func NewSyncLogRepository(conn *postgres.Connection) SyncLogRepository {
	return &syncLogRepository{
		conn: conn,
	}
}

// Append grava uma entrada no log de sincronização. O log é append-only:
// entradas nunca são atualizadas nem removidas
func (r *syncLogRepository) Append(entry *domain.SyncLogEntry) error {
	query, args, err := squirrel.
		Insert("sync_logs").
		Columns("account_id", "endpoint", "status", "error", "count", "synced_at").
		Values(entry.AccountID, entry.Endpoint, entry.Status, entry.Error, entry.Count, entry.SyncedAt).
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

// ListRecent retorna as entradas mais recentes da conta, da mais nova para
// a mais antiga
func (r *syncLogRepository) ListRecent(accountID string, limit int) ([]*domain.SyncLogEntry, error) {
	if limit <= 0 {
		limit = defaultSyncLogLimit
	}

	query, args, err := squirrel.
		Select("s.id, s.account_id, s.endpoint, s.status, s.error, s.count, s.synced_at").
		From("sync_logs s").
		Where(squirrel.Eq{"s.account_id": accountID}).
		OrderBy("s.synced_at DESC, s.id DESC").
		Limit(uint64(limit)).
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

	entries := make([]*domain.SyncLogEntry, 0)

	for rows.Next() {
		entry := &domain.SyncLogEntry{}

		if err := rows.Scan(
			&entry.ID,
			&entry.AccountID,
			&entry.Endpoint,
			&entry.Status,
			&entry.Error,
			&entry.Count,
			&entry.SyncedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear o log: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return entries, nil
}
