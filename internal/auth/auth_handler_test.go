package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"neb-hris/internal/auth"
	autherrors "neb-hris/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeAuthService struct {
	loginFn   func(ctx context.Context, req auth.LoginRequest) (string, string, auth.AuthResponse, error)
	refreshFn func(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error)
	getMeFn   func(ctx context.Context, userID string) (*auth.AuthResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (string, string, auth.AuthResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error) {
	return f.refreshFn(ctx, refreshToken)
}

func (f *fakeAuthService) GetMe(ctx context.Context, userID string) (*auth.AuthResponse, error) {
	return f.getMeFn(ctx, userID)
}

func cookieNames(res *http.Response) []string {
	var names []string
	for _, ck := range res.Cookies() {
		names = append(names, ck.Name)
	}
	return names
}

func TestAuthHandler_Login(t *testing.T) {
	loginBody := `{"email":"asha.nair@example.com","password":"hr-pass-123","role":"hr"}`

	t.Run("web client receives cookies", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, req auth.LoginRequest) (string, string, auth.AuthResponse, error) {
				assert.Equal(t, "hr", req.Role)
				return "access-token", "refresh-token", auth.AuthResponse{ID: uuid.NewString(), Role: "hr"}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(loginBody))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Request.Header.Set("X-Client-Type", "web")

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.ElementsMatch(t, []string{"access_token", "refresh_token"}, cookieNames(w.Result()))

		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("api client gets tokens in the body only", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, req auth.LoginRequest) (string, string, auth.AuthResponse, error) {
				return "access-token", "refresh-token", auth.AuthResponse{ID: uuid.NewString()}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(loginBody))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Request.Header.Set("X-Client-Type", "api")

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())

		var data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		}
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "access-token", data.AccessToken)
		assert.Equal(t, "refresh-token", data.RefreshToken)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, req auth.LoginRequest) (string, string, auth.AuthResponse, error) {
				return "", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(loginBody))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})

	t.Run("unknown role rejected by binding", func(t *testing.T) {
		h := auth.NewHandler(&fakeAuthService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"email":"asha.nair@example.com","password":"hr-pass-123","role":"superuser"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		userID := uuid.NewString()
		svc := &fakeAuthService{
			getMeFn: func(ctx context.Context, id string) (*auth.AuthResponse, error) {
				assert.Equal(t, userID, id)
				return &auth.AuthResponse{ID: id, Email: "asha.nair@example.com"}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		c.Set("user_id", userID)

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing identity", func(t *testing.T) {
		h := auth.NewHandler(&fakeAuthService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)

		h.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Logout_ClearsCookies(t *testing.T) {
	h := auth.NewHandler(&fakeAuthService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)

	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, ck := range w.Result().Cookies() {
		assert.Equal(t, -1, ck.MaxAge)
		assert.Empty(t, ck.Value)
	}
	assert.ElementsMatch(t, []string{"access_token", "refresh_token"}, cookieNames(w.Result()))
}
