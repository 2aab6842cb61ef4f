package domain

import "time"

// Account representa uma conta de vendedor conectada ao marketplace
type Account struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	APIKey     string     `json:"-"`
	IsActive   bool       `json:"is_active"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CreateAccountRequest contém os dados para cadastrar uma nova conta
type CreateAccountRequest struct {
	Name   string `json:"name"`
	APIKey string `json:"api_key"`
}

// UpdateAccountRequest contém os campos opcionais de atualização de uma conta
type UpdateAccountRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	APIKey   *string `json:"api_key,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
