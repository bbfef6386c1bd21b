package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements service.AuthService for handler tests.
// Every method field can be overridden per test case; unset ones fail with
// errNotStubbed.
type fakeAuthService struct {
	registerFn           func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	verifyFn             func(ctx context.Context, token string) error
	resendFn             func(ctx context.Context, email string) (bool, error)
	loginFn              func(ctx context.Context, req models.LoginRequest) (models.User, error)
	logoutFn             func(ctx context.Context, userID int64) error
	authenticateFn       func(ctx context.Context, token string) (models.User, error)
	updateSubscriptionFn func(ctx context.Context, userID int64, req models.SubscriptionRequest) (models.User, error)
	updateAvatarFn       func(ctx context.Context, userID int64, fileName string, src io.Reader) (string, error)
}

var errNotStubbed = errors.New("not stubbed")

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if f.registerFn == nil {
		return models.User{}, errNotStubbed
	}
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Verify(ctx context.Context, token string) error {
	if f.verifyFn == nil {
		return errNotStubbed
	}
	return f.verifyFn(ctx, token)
}

func (f *fakeAuthService) ResendVerification(ctx context.Context, email string) (bool, error) {
	if f.resendFn == nil {
		return false, errNotStubbed
	}
	return f.resendFn(ctx, email)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if f.loginFn == nil {
		return models.User{}, errNotStubbed
	}
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) Logout(ctx context.Context, userID int64) error {
	if f.logoutFn == nil {
		return errNotStubbed
	}
	return f.logoutFn(ctx, userID)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if f.authenticateFn == nil {
		return models.User{}, service.ErrUnauthorized
	}
	return f.authenticateFn(ctx, token)
}

func (f *fakeAuthService) UpdateSubscription(ctx context.Context, userID int64, req models.SubscriptionRequest) (models.User, error) {
	if f.updateSubscriptionFn == nil {
		return models.User{}, errNotStubbed
	}
	return f.updateSubscriptionFn(ctx, userID, req)
}

func (f *fakeAuthService) UpdateAvatar(ctx context.Context, userID int64, fileName string, src io.Reader) (string, error) {
	if f.updateAvatarFn == nil {
		return "", errNotStubbed
	}
	return f.updateAvatarFn(ctx, userID, fileName, src)
}

type fakeAppInfoService struct {
	version   string
	buildInfo models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.version }

func (f *fakeAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo { return f.buildInfo }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const validToken = "valid-token"

var testUser = models.User{UserID: 7, Email: "alice@example.com", Subscription: models.Pro, Verify: true, Token: validToken}

// acceptValidToken authenticates validToken as testUser.
func acceptValidToken(_ context.Context, token string) (models.User, error) {
	if token != validToken {
		return models.User{}, service.ErrUnauthorized
	}
	return testUser, nil
}

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	return &config.StructuredConfig{
		Storage: config.Storage{Files: config.Files{AvatarDir: t.TempDir()}},
	}
}

// newTestHandler builds a Handler over auth with a nop logger.
func newTestHandler(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		AppInfoService: &fakeAppInfoService{version: "test-version"},
	}
	return NewHandler(svcs, testConfig(t), logger.Nop())
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg), "body: %s", rr.Body.String())
	return msg.Message
}
