package user_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	infracache "github.com/amirasaad/causehive/infra/cache"
	"github.com/amirasaad/causehive/internal/fixtures/mocks"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/provider/payment"
	userrepo "github.com/amirasaad/causehive/pkg/repository/user"
	usersvc "github.com/amirasaad/causehive/pkg/service/user"
	"github.com/amirasaad/causehive/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	utils.PasswordCost = bcrypt.MinCost
}

func newService(t *testing.T) (*usersvc.Service, *mocks.MockUserRepository, *mocks.MockGateway) {
	repo := mocks.NewMockUserRepository(t)
	uow := mocks.NewMockUnitOfWork(t).Passthrough().Provide((*userrepo.Repository)(nil), repo)
	gw := mocks.NewMockGateway(t)
	c := infracache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	svc := usersvc.New(uow, gw, c, &config.Cache{BankListTTL: time.Hour}, slog.Default())
	return svc, repo, gw
}

func ptr[T any](v T) *T { return &v }

func TestUpdateUser(t *testing.T) {
	svc, repo, _ := newService(t)
	u, err := user.New("ama@example.com", "correct-horse", "Ama", "")
	require.NoError(t, err)
	repo.On("Get", mock.Anything, u.ID).Return(u, nil).Once()
	repo.On("Update", mock.Anything, u).Return(nil).Once()

	got, err := svc.UpdateUser(context.Background(), u.ID, dto.UserUpdate{LastName: ptr(" Mensah ")})
	require.NoError(t, err)
	assert.Equal(t, "Ama", got.FirstName)
	assert.Equal(t, "Mensah", got.LastName)
}

func TestUpdateProfile_ClearsRecipientOnPayoutChange(t *testing.T) {
	svc, repo, _ := newService(t)
	id := uuid.New()
	stored := &user.Profile{
		UserID:           id,
		WithdrawalMethod: user.WithdrawalMethodBankTransfer,
		BankCode:         "GCB",
		AccountNumber:    "0011",
		AccountName:      "Ama Mensah",
		RecipientCode:    "RCP_1",
	}
	repo.On("GetProfile", mock.Anything, id).Return(stored, nil)
	repo.On("SaveProfile", mock.Anything, stored).Return(nil)

	p, err := svc.UpdateProfile(context.Background(), id, dto.ProfileUpdate{Bio: ptr("hello")})
	require.NoError(t, err)
	assert.Equal(t, "RCP_1", p.RecipientCode)

	p, err = svc.UpdateProfile(context.Background(), id, dto.ProfileUpdate{AccountNumber: ptr("0022")})
	require.NoError(t, err)
	assert.Empty(t, p.RecipientCode)
	assert.Equal(t, "0022", p.AccountNumber)
}

func TestUpdateProfile_InvalidMethod(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), dto.ProfileUpdate{WithdrawalMethod: ptr("cheque")})
	assert.ErrorIs(t, err, user.ErrInvalidWithdrawalMethod)
}

func TestDeleteAccount(t *testing.T) {
	svc, repo, _ := newService(t)
	u, err := user.New("ama@example.com", "correct-horse", "", "")
	require.NoError(t, err)
	repo.On("Get", mock.Anything, u.ID).Return(u, nil)

	err = svc.DeleteAccount(context.Background(), u.ID, "wrong-horse")
	assert.ErrorIs(t, err, user.ErrUserUnauthorized)

	repo.On("Delete", mock.Anything, u.ID).Return(nil).Once()
	assert.NoError(t, svc.DeleteAccount(context.Background(), u.ID, "correct-horse"))
}

func TestAdminSetActive(t *testing.T) {
	svc, repo, _ := newService(t)
	u, err := user.New("ama@example.com", "correct-horse", "", "")
	require.NoError(t, err)
	repo.On("Get", mock.Anything, u.ID).Return(u, nil).Once()
	repo.On("Update", mock.Anything, u).Return(nil).Once()

	got, err := svc.AdminSetActive(context.Background(), u.ID, false)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestAdminList(t *testing.T) {
	svc, repo, _ := newService(t)
	page := dto.NewPageRequest(1, 10, 0)
	repo.On("List", mock.Anything, dto.UserFilter{Search: "ama"}, page).
		Return([]*user.User{{Email: "ama@example.com"}}, int64(1), nil).Once()

	got, err := svc.AdminList(context.Background(), dto.UserFilter{Search: "ama"}, page)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Count)
	assert.Len(t, got.Results, 1)
}

func TestListBanks_Cached(t *testing.T) {
	svc, _, gw := newService(t)
	banks := []payment.Bank{{Name: "GCB Bank", Code: "GCB", Type: "ghipss", Currency: "GHS"}}
	gw.On("ListBanks", mock.Anything, "GHS", payment.BankTypeBank).Return(banks, nil).Once()

	got, err := svc.ListBanks(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, banks, got)

	got, err = svc.ListBanks(context.Background(), "Ghana")
	require.NoError(t, err)
	assert.Equal(t, banks, got)
}

func TestListBanks_UnsupportedCountry(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.ListBanks(context.Background(), "atlantis")
	assert.ErrorIs(t, err, usersvc.ErrUnsupportedCountry)
}

func TestListMobileMoneyProviders(t *testing.T) {
	svc, _, gw := newService(t)
	providers := []payment.Bank{{Name: "MTN", Code: "MTN", Type: "mobile_money", Currency: "GHS"}}
	gw.On("ListBanks", mock.Anything, "GHS", payment.BankTypeMobileMoney).Return(providers, nil).Once()

	got, err := svc.ListMobileMoneyProviders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, providers, got)
}

func TestResolveBankAccount(t *testing.T) {
	svc, _, gw := newService(t)
	gw.On("ResolveAccount", mock.Anything, "0011", "GCB").
		Return(&payment.ResolvedAccount{AccountNumber: "0011", AccountName: "AMA MENSAH", BankCode: "GCB"}, nil).Once()

	got, err := svc.ResolveBankAccount(context.Background(), " 0011 ", "GCB")
	require.NoError(t, err)
	assert.Equal(t, "AMA MENSAH", got.AccountName)
}
