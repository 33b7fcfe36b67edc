package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/vpoletaev/giftwell/docs"
	authhandlers "github.com/vpoletaev/giftwell/internal/handlers/auth"
	contributionhandlers "github.com/vpoletaev/giftwell/internal/handlers/contributions"
	userhandlers "github.com/vpoletaev/giftwell/internal/handlers/users"
	wishhandlers "github.com/vpoletaev/giftwell/internal/handlers/wishes"
	"github.com/vpoletaev/giftwell/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:         authhandlers.NewMockService(ctrl),
		UserService:         userhandlers.NewMockService(ctrl),
		WishService:         wishhandlers.NewMockService(ctrl),
		ContributionService: contributionhandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h)
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.UserHandler)
	assert.NotNil(t, h.WishHandler)
	assert.NotNil(t, h.ContributionHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)
	mockWishHandler := NewMockWishHandler(ctrl)
	mockContributionHandler := NewMockContributionHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:         mockAuthHandler,
		UserHandler:         mockUserHandler,
		WishHandler:         mockWishHandler,
		ContributionHandler: mockContributionHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/api/users/me", http.StatusUnauthorized},
		{"GET", "/api/users/2", http.StatusUnauthorized},
		{"POST", "/api/wishes/", http.StatusUnauthorized},
		{"GET", "/api/wishes/last", http.StatusUnauthorized},
		{"GET", "/api/wishes/top", http.StatusUnauthorized},
		{"GET", "/api/wishes/1", http.StatusUnauthorized},
		{"PATCH", "/api/wishes/1", http.StatusUnauthorized},
		{"DELETE", "/api/wishes/1", http.StatusUnauthorized},
		{"POST", "/api/wishes/1/copy", http.StatusUnauthorized},
		{"POST", "/api/contributions/", http.StatusUnauthorized},
		{"GET", "/api/contributions/", http.StatusUnauthorized},
		{"GET", "/api/contributions/1", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
