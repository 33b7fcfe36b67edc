package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vpoletaev/giftwell/internal/domain"
	"github.com/vpoletaev/giftwell/internal/dto"
	"github.com/vpoletaev/giftwell/internal/service/authservice"
	"github.com/vpoletaev/giftwell/pkg/auth"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestMeHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetUser(gomock.Any(), 1).Return(&domain.User{
		ID:       1,
		Username: "alice",
		Email:    "alice@example.com",
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
	w := httptest.NewRecorder()
	handler.Me(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.UserProfileDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "alice", body.Username)
	assert.Equal(t, "alice@example.com", body.Email)
}

func TestGetByIDHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Public profile without email",
			id:   "2",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 2).Return(&domain.User{
					ID:       2,
					Username: "bob",
					Email:    "bob@example.com",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown user",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 99).Return(nil, authservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			r := httptest.NewRequest(http.MethodGet, "/api/users/"+tt.id, nil)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()
			handler.GetByID(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				assert.NotContains(t, w.Body.String(), "bob@example.com")
			}
		})
	}
}
