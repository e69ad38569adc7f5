package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"studio/config"
	"studio/infras/jwt"
	jwtMocks "studio/infras/jwt/mocks"
	otelMocks "studio/infras/otel/mocks"
	"studio/shared/constant"
	"studio/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(mw middleware.AuthRole, nextCalled *bool) *chi.Mux {
	router := chi.NewRouter()
	router.Use(mw.Auth)
	router.Get("/bookings", func(writer http.ResponseWriter, request *http.Request) {
		*nextCalled = true
		writer.WriteHeader(http.StatusOK)
	})

	return router
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := otelMocks.NewOtel()
	cfg := &config.Config{}

	mw := middleware.NewAuthRoleMiddleware(mockJWT, mockOtel, nil, cfg)

	t.Run("valid claims pass through", func(t *testing.T) {
		mockJWT.EXPECT().
			ValidateToken(gomock.Any(), "valid-token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "user-1", Email: "user@example.com", Role: "customer"}, nil)

		nextCalled := false
		router := newAuthRouter(mw, &nextCalled)

		request := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer valid-token")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		nextCalled := false
		router := newAuthRouter(mw, &nextCalled)

		request := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		nextCalled := false
		router := newAuthRouter(mw, &nextCalled)

		request := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		request.Header.Set(constant.RequestHeaderAuthorization, "Token abc")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		mockJWT.EXPECT().
			ValidateToken(gomock.Any(), "expired-token", jwt.AccessToken).
			Return(nil, jwt.ErrExpiredToken)

		nextCalled := false
		router := newAuthRouter(mw, &nextCalled)

		request := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer expired-token")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("claims with empty user id are rejected", func(t *testing.T) {
		mockJWT.EXPECT().
			ValidateToken(gomock.Any(), "no-user-token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "", Email: "user@example.com"}, nil)

		nextCalled := false
		router := newAuthRouter(mw, &nextCalled)

		request := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer no-user-token")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("claims with empty email are rejected", func(t *testing.T) {
		mockJWT.EXPECT().
			ValidateToken(gomock.Any(), "no-email-token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "user-1", Email: ""}, nil)

		nextCalled := false
		router := newAuthRouter(mw, &nextCalled)

		request := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer no-email-token")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
