package account

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newAccountService(t *testing.T) (AccountService, *mocks.MockAccountRepository, *mocks.MockSyncLogRepository) {
	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	syncLogRepo := mocks.NewMockSyncLogRepository(ctrl)

	return NewService(accountRepo, syncLogRepo, nil), accountRepo, syncLogRepo
}

func TestGetAccount(t *testing.T) {
	service, accountRepo, _ := newAccountService(t)

	expected := &domain.Account{ID: "abc123", Name: "Loja Teste"}
	accountRepo.EXPECT().GetByID("abc123").Return(expected, nil)

	account, err := service.GetAccount("abc123")

	require.NoError(t, err)
	assert.Equal(t, expected, account)
}

func TestGetAccount_EmptyID(t *testing.T) {
	service, _, _ := newAccountService(t)

	_, err := service.GetAccount("")

	require.ErrorIs(t, err, ErrAccountIDRequired)
}

func TestGetAccount_NotFound(t *testing.T) {
	service, accountRepo, _ := newAccountService(t)

	accountRepo.EXPECT().GetByID("zzz999").Return(nil, nil)

	_, err := service.GetAccount("zzz999")

	require.ErrorIs(t, err, ErrAccountNotFound)

	var accErr *AccountError
	require.ErrorAs(t, err, &accErr)
	assert.Equal(t, apiErrors.ErrAccountNotFound, accErr.Code)
	assert.Equal(t, "zzz999", accErr.AccountID)
}

func TestCreateAccount(t *testing.T) {
	service, accountRepo, _ := newAccountService(t)

	accountRepo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(account *domain.Account) error {
			assert.Len(t, account.ID, 6)
			assert.Equal(t, "Loja Nova", account.Name)
			assert.True(t, account.IsActive)
			assert.False(t, account.CreatedAt.IsZero())
			return nil
		})

	account, err := service.CreateAccount(&domain.CreateAccountRequest{
		Name:   "Loja Nova",
		APIKey: "chave-wb",
	})

	require.NoError(t, err)
	assert.Equal(t, "chave-wb", account.APIKey)
}

func TestCreateAccount_Validation(t *testing.T) {
	tests := []struct {
		name        string
		request     *domain.CreateAccountRequest
		expectedErr error
	}{
		{
			name:        "sem nome",
			request:     &domain.CreateAccountRequest{APIKey: "chave"},
			expectedErr: ErrNameRequired,
		},
		{
			name:        "sem chave de API",
			request:     &domain.CreateAccountRequest{Name: "Loja"},
			expectedErr: ErrAPIKeyRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newAccountService(t)

			_, err := service.CreateAccount(tt.request)

			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestUpdateAccount_NotFound(t *testing.T) {
	service, accountRepo, _ := newAccountService(t)

	accountRepo.EXPECT().GetByID("zzz999").Return(nil, nil)

	_, err := service.UpdateAccount(&domain.UpdateAccountRequest{ID: "zzz999"})

	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestDeleteAccount(t *testing.T) {
	service, accountRepo, _ := newAccountService(t)

	accountRepo.EXPECT().GetByID("abc123").Return(&domain.Account{ID: "abc123"}, nil)
	accountRepo.EXPECT().Delete("abc123").Return(nil)

	require.NoError(t, service.DeleteAccount("abc123"))
}

func TestListSyncLogs(t *testing.T) {
	service, accountRepo, syncLogRepo := newAccountService(t)

	accountRepo.EXPECT().GetByID("abc123").Return(&domain.Account{ID: "abc123"}, nil)

	entries := []*domain.SyncLogEntry{
		{AccountID: "abc123", Endpoint: domain.SyncEndpointOrders, Status: domain.SyncStatusOK, Count: 10},
	}
	syncLogRepo.EXPECT().ListRecent("abc123", 5).Return(entries, nil)

	got, err := service.ListSyncLogs("abc123", 5)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestListSyncLogs_RepositoryError(t *testing.T) {
	service, accountRepo, syncLogRepo := newAccountService(t)

	accountRepo.EXPECT().GetByID("abc123").Return(&domain.Account{ID: "abc123"}, nil)
	syncLogRepo.EXPECT().ListRecent("abc123", 0).Return(nil, errors.New("conexão recusada"))

	_, err := service.ListSyncLogs("abc123", 0)

	require.ErrorIs(t, err, ErrDatabaseOperation)
}
