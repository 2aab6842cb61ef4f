package account

import (
	"time"

	"github.com/vfg2006/marketplace-analytics-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-analytics-api/internal/config"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-analytics-api/pkg/utils"
)

type AccountService interface {
	GetAccount(accountID string) (*domain.Account, error)
	ListAccounts() ([]*domain.Account, error)
	CreateAccount(request *domain.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(request *domain.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(accountID string) error
	ListSyncLogs(accountID string, limit int) ([]*domain.SyncLogEntry, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	syncLogRepository repository.SyncLogRepository
	cfg               *config.Config
}

func NewService(
	accountRepository repository.AccountRepository,
	syncLogRepository repository.SyncLogRepository,
	cfg *config.Config,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		syncLogRepository: syncLogRepository,
		cfg:               cfg,
	}
}

func (s *Service) GetAccount(accountID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "O ID da conta é obrigatório")
	}

	account, err := s.accountRepository.GetByID(accountID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, accountID, "Falha ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "Conta não encontrada")
	}

	return account, nil
}

func (s *Service) ListAccounts() ([]*domain.Account, error) {
	accounts, err := s.accountRepository.List()
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	return accounts, nil
}

func (s *Service) CreateAccount(request *domain.CreateAccountRequest) (*domain.Account, error) {
	if request.Name == "" {
		return nil, NewAccountError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "O nome da conta é obrigatório")
	}

	if request.APIKey == "" {
		return nil, NewAccountError(ErrAPIKeyRequired, apiErrors.ErrMissingRequiredData, "A chave de API da conta é obrigatória")
	}

	accountID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
	}

	account := &domain.Account{
		ID:        accountID,
		Name:      request.Name,
		APIKey:    request.APIKey,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := s.accountRepository.Create(account); err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar conta no banco de dados")
	}

	return account, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAccountRequest) (*domain.Account, error) {
	if request.ID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "O ID da conta é obrigatório")
	}

	existing, err := s.accountRepository.GetByID(request.ID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao buscar conta no banco de dados")
	}

	if existing == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, request.ID, "Conta não encontrada")
	}

	if err := s.accountRepository.Update(request); err != nil {
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	account, err := s.accountRepository.GetByID(request.ID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao buscar conta atualizada")
	}

	return account, nil
}

func (s *Service) DeleteAccount(accountID string) error {
	if accountID == "" {
		return NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "O ID da conta é obrigatório")
	}

	existing, err := s.accountRepository.GetByID(accountID)
	if err != nil {
		return NewAccountErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, accountID, "Falha ao buscar conta no banco de dados")
	}

	if existing == nil {
		return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "Conta não encontrada")
	}

	if err := s.accountRepository.Delete(accountID); err != nil {
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao remover conta do banco de dados")
	}

	return nil
}

// ListSyncLogs retorna as entradas mais recentes do log de sincronização da conta
func (s *Service) ListSyncLogs(accountID string, limit int) ([]*domain.SyncLogEntry, error) {
	if _, err := s.GetAccount(accountID); err != nil {
		return nil, err
	}

	entries, err := s.syncLogRepository.ListRecent(accountID, limit)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao buscar o log de sincronização")
	}

	return entries, nil
}
