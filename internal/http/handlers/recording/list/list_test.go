package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/smartnotes-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userUUID string) ([]*models.Recording, error) {
	args := m.Called(ctx, userUUID)
	recs, _ := args.Get(0).([]*models.Recording)
	return recs, args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	now := time.Now().UTC()
	recs := []*models.Recording{
		{UUID: "rec-2", UserUUID: "user-1", Title: "Newer", Status: models.StatusUploaded, CreatedAt: now},
		{UUID: "rec-1", UserUUID: "user-1", Title: "Older", Status: models.StatusCompleted, CreatedAt: now.Add(-time.Hour)},
	}

	tests := []struct {
		name           string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное чтение списка",
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "user-1").Return(recs, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"rec-2"`,
		},
		{
			name:           "отсутствует авторизация",
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:    "ошибка сервиса",
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "user-1").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not list recordings"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/recordings", nil)
			ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}

func TestListHandler_EmptyListIsArray(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mockService := new(MockService)
	mockService.On("List", mock.Anything, "user-1").Return([]*models.Recording(nil), nil)

	handler := New(logger, mockService)

	req := httptest.NewRequest(http.MethodGet, "/recordings", nil)
	req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, "user-1"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	mockService.AssertExpectations(t)
}
