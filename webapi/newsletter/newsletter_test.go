package newsletter_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/causehive/internal/fixtures/mocks"
	"github.com/amirasaad/causehive/pkg/domain/newsletter"
	newsletterrepo "github.com/amirasaad/causehive/pkg/repository/newsletter"
	newslettersvc "github.com/amirasaad/causehive/pkg/service/newsletter"
	newsletterweb "github.com/amirasaad/causehive/webapi/newsletter"
	"github.com/amirasaad/causehive/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (*fiber.App, *mocks.MockNewsletterRepository) {
	repo := mocks.NewMockNewsletterRepository(t)
	uow := mocks.NewMockUnitOfWork(t).Passthrough().Provide((*newsletterrepo.Repository)(nil), repo)
	app := testutils.NewApp()
	newsletterweb.Routes(app, newslettersvc.New(uow, slog.New(slog.NewTextHandler(io.Discard, nil))))
	return app, repo
}

func TestSubscribeRoute(t *testing.T) {
	t.Run("new address", func(t *testing.T) {
		app, repo := newApp(t)
		repo.On("GetByEmail", mock.Anything, "kofi@example.com").Return(nil, newsletter.ErrSubscriptionNotFound).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*newsletter.Subscription")).Return(nil).Once()

		resp := testutils.MakeRequestWithApp(app, "POST", "/newsletter/subscribe", `{"email":"Kofi@Example.com"}`, "")
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		data := testutils.DecodeData(t, resp)
		assert.Equal(t, "kofi@example.com", data["email"])
		assert.Equal(t, true, data["is_active"])
	})

	t.Run("already active", func(t *testing.T) {
		app, repo := newApp(t)
		repo.On("GetByEmail", mock.Anything, "kofi@example.com").Return(newsletter.New("kofi@example.com"), nil).Once()

		resp := testutils.MakeRequestWithApp(app, "POST", "/newsletter/subscribe", `{"email":"kofi@example.com"}`, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("invalid email", func(t *testing.T) {
		app, _ := newApp(t)
		resp := testutils.MakeRequestWithApp(app, "POST", "/newsletter/subscribe", `{"email":"nope"}`, "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestUnsubscribeRoute(t *testing.T) {
	app, repo := newApp(t)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, newsletter.ErrSubscriptionNotFound).Once()
	resp := testutils.MakeRequestWithApp(app, "POST", "/newsletter/unsubscribe", `{"email":"ghost@example.com"}`, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	sub := newsletter.New("ama@example.com")
	repo.On("GetByEmail", mock.Anything, "ama@example.com").Return(sub, nil).Once()
	repo.On("Update", mock.Anything, sub).Return(nil).Once()
	resp = testutils.MakeRequestWithApp(app, "POST", "/newsletter/unsubscribe", `{"email":"ama@example.com"}`, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, sub.IsActive)
}
