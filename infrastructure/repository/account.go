package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
)

const accountsTable = "accounts a"

type AccountRepository interface {
	GetByID(accountID string) (*domain.Account, error)
	List() ([]*domain.Account, error)
	ListActive() ([]*domain.Account, error)
	Create(account *domain.Account) error
	Update(account *domain.UpdateAccountRequest) error
	Delete(accountID string) error
	UpdateLastSync(accountID string, syncedAt time.Time) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) GetByID(accountID string) (*domain.Account, error) {
	query, args, err := squirrel.
		Select("a.id, a.name, a.api_key, a.is_active, a.last_sync_at, a.created_at").
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	account, err := r.scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear a conta: %w", err)
	}

	return account, nil
}

func (r *accountRepository) List() ([]*domain.Account, error) {
	return r.list(nil)
}

func (r *accountRepository) ListActive() ([]*domain.Account, error) {
	return r.list(squirrel.Eq{"a.is_active": true})
}

func (r *accountRepository) list(whereClause any) ([]*domain.Account, error) {
	queryBuilder := squirrel.
		Select("a.id, a.name, a.api_key, a.is_active, a.last_sync_at, a.created_at").
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if whereClause != nil {
		queryBuilder = queryBuilder.Where(whereClause)
	}

	query, args, err := queryBuilder.ToSql()
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

	accounts := make([]*domain.Account, 0)

	for rows.Next() {
		account := &domain.Account{}
		var lastSyncAt sql.NullTime

		if err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.APIKey,
			&account.IsActive,
			&lastSyncAt,
			&account.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear a conta: %w", err)
		}

		if lastSyncAt.Valid {
			account.LastSyncAt = &lastSyncAt.Time
		}

		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) Create(account *domain.Account) error {
	query, args, err := squirrel.
		Insert("accounts").
		Columns("id", "name", "api_key", "is_active", "created_at").
		Values(account.ID, account.Name, account.APIKey, account.IsActive, account.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *accountRepository) Update(account *domain.UpdateAccountRequest) error {
	if account.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update("accounts").
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if account.Name != nil {
		queryBuilder = queryBuilder.Set("name", *account.Name)
	}

	if account.APIKey != nil {
		queryBuilder = queryBuilder.Set("api_key", *account.APIKey)
	}

	if account.IsActive != nil {
		queryBuilder = queryBuilder.Set("is_active", *account.IsActive)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("account not found")
	}

	return nil
}

func (r *accountRepository) Delete(accountID string) error {
	query, args, err := squirrel.
		Delete("accounts").
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// UpdateLastSync registra o horário da última tentativa de sincronização.
// A atualização é incondicional: o campo significa "tentou em", não "teve
// sucesso em".
func (r *accountRepository) UpdateLastSync(accountID string, syncedAt time.Time) error {
	query, args, err := squirrel.
		Update("accounts").
		Set("last_sync_at", syncedAt).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *accountRepository) scanAccount(row *sql.Row) (*domain.Account, error) {
	account := &domain.Account{}
	var lastSyncAt sql.NullTime

	if err := row.Scan(
		&account.ID,
		&account.Name,
		&account.APIKey,
		&account.IsActive,
		&lastSyncAt,
		&account.CreatedAt,
	); err != nil {
		return nil, err
	}

	if lastSyncAt.Valid {
		account.LastSyncAt = &lastSyncAt.Time
	}

	return account, nil
}
