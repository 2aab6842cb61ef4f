package costing

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/marketplace-analytics-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/internal/usecases/account"
)

var (
	ErrInvalidProduct = errors.New("product ID is required")
	ErrNegativeCost   = errors.New("cost must not be negative")
)

// Coster gerencia os custos unitários informados pelo vendedor, usados no
// cálculo de CMV do dashboard
type Coster interface {
	ListCosts(accountID string) ([]*domain.Cost, error)
	UpsertCost(accountID string, item domain.CostItem) error
	BulkUpsertCosts(accountID string, items []domain.CostItem) (int, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	costRepository    repository.CostRepository
}

func NewService(
	accountRepository repository.AccountRepository,
	costRepository repository.CostRepository,
) Coster {
	return &Service{
		accountRepository: accountRepository,
		costRepository:    costRepository,
	}
}

func (s *Service) ListCosts(accountID string) ([]*domain.Cost, error) {
	if err := s.ensureAccount(accountID); err != nil {
		return nil, err
	}

	return s.costRepository.ListByAccount(accountID)
}

func (s *Service) UpsertCost(accountID string, item domain.CostItem) error {
	if err := s.ensureAccount(accountID); err != nil {
		return err
	}

	if err := validateItem(item); err != nil {
		return err
	}

	return s.costRepository.Upsert(accountID, item, time.Now())
}

// BulkUpsertCosts grava vários custos de uma vez. A validação acontece antes
// de qualquer escrita: um item inválido rejeita o lote inteiro
func (s *Service) BulkUpsertCosts(accountID string, items []domain.CostItem) (int, error) {
	if err := s.ensureAccount(accountID); err != nil {
		return 0, err
	}

	for i, item := range items {
		if err := validateItem(item); err != nil {
			return 0, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return s.costRepository.BulkUpsert(accountID, items, time.Now())
}

func (s *Service) ensureAccount(accountID string) error {
	acc, err := s.accountRepository.GetByID(accountID)
	if err != nil {
		return fmt.Errorf("erro ao buscar a conta: %w", err)
	}

	if acc == nil {
		return account.ErrAccountNotFound
	}

	return nil
}

func validateItem(item domain.CostItem) error {
	if item.NmID <= 0 {
		return ErrInvalidProduct
	}

	if item.Cost < 0 {
		return ErrNegativeCost
	}

	return nil
}
