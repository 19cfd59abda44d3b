package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agrohive/agrigate/internal/logger"
	"github.com/agrohive/agrigate/internal/service"
	"github.com/agrohive/agrigate/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

// mockTokenService implements service.TokenService for unit tests.
type mockTokenService struct {
	issueFn        func(ctx context.Context, user models.User) (models.Token, error)
	authenticateFn func(ctx context.Context, signedString string) (models.User, models.Token, error)
	revokeFn       func(ctx context.Context, tokenID string) error
}

func (m *mockTokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	return m.issueFn(ctx, user)
}

func (m *mockTokenService) Authenticate(ctx context.Context, signedString string) (models.User, models.Token, error) {
	return m.authenticateFn(ctx, signedString)
}

func (m *mockTokenService) Revoke(ctx context.Context, tokenID string) error {
	return m.revokeFn(ctx, tokenID)
}

// mockPredictionService implements service.PredictionService for unit tests.
type mockPredictionService struct {
	predictCropFn       func(ctx context.Context, features []any) (models.PredictionResult, error)
	predictFertilizerFn func(ctx context.Context, features []any) (models.PredictionResult, error)
	predictDiseaseFn    func(ctx context.Context, image models.ImageUpload) (models.PredictionResult, error)
}

func (m *mockPredictionService) PredictCrop(ctx context.Context, features []any) (models.PredictionResult, error) {
	return m.predictCropFn(ctx, features)
}

func (m *mockPredictionService) PredictFertilizer(ctx context.Context, features []any) (models.PredictionResult, error) {
	return m.predictFertilizerFn(ctx, features)
}

func (m *mockPredictionService) PredictDisease(ctx context.Context, image models.ImageUpload) (models.PredictionResult, error) {
	return m.predictDiseaseFn(ctx, image)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// newTestHandler builds a Handler with the given mocks; nil fields get
// zero-value mocks that panic when called unexpectedly.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfo == nil {
		svcs.AppInfo = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, logger.Nop())
}

// decodeEnvelope parses the recorded response body as a generic JSON map
// so tests can assert the exact wire shape, omitted fields included.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
