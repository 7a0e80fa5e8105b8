package middleware_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restomenu/internal/menu/adapters/http/middleware"
	"restomenu/internal/menu/domain/services"
	svc "restomenu/internal/menu/ports/services"
)

const testCookieName = "menu_session"

type mockSessionService struct {
	mock.Mock
}

func (m *mockSessionService) Establish(ctx context.Context, userID, username string) (string, time.Time, error) {
	args := m.Called(ctx, userID, username)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockSessionService) Read(ctx context.Context, token string) (*services.Session, error) {
	args := m.Called(ctx, token)
	if session := args.Get(0); session != nil {
		return session.(*services.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

var _ svc.SessionService = (*mockSessionService)(nil)

func newTestApp(sessionSvc svc.SessionService) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewSessionMiddleware(sessionSvc, testCookieName))

	protected := app.Group("", middleware.NewRequireAuthMiddleware())
	protected.Get("/dashboard", func(ctx fiber.Ctx) error {
		session := middleware.CurrentSession(ctx)
		return ctx.SendString(session.Username)
	})

	return app
}

func TestRequireAuthRedirectsAnonymousRequests(t *testing.T) {
	sessionSvc := new(mockSessionService)
	app := newTestApp(sessionSvc)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/dashboard", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
	sessionSvc.AssertNotCalled(t, "Read", mock.Anything, mock.Anything)
}

func TestRequireAuthRedirectsOnUnreadableToken(t *testing.T) {
	sessionSvc := new(mockSessionService)
	sessionSvc.On("Read", mock.Anything, "garbage").
		Return(nil, services.ErrInvalidSessionToken).Once()

	app := newTestApp(sessionSvc)

	req := httptest.NewRequest(fiber.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "garbage"})

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
	sessionSvc.AssertExpectations(t)
}

func TestRequireAuthPassesValidSessionToHandler(t *testing.T) {
	sessionSvc := new(mockSessionService)
	sessionSvc.On("Read", mock.Anything, "signed-token").
		Return(&services.Session{
			UserID:    "user-id",
			Username:  "alice",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil).Once()

	app := newTestApp(sessionSvc)

	req := httptest.NewRequest(fiber.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "signed-token"})

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "alice", string(body))
	sessionSvc.AssertExpectations(t)
}
