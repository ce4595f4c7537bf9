package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lelec0/fintech-api/internal/domain"
	"github.com/lelec0/fintech-api/internal/store"
)

// MockUserService is a mock implementation of service.UserService for testing
type MockUserService struct {
	CreateUserFn func(ctx context.Context, name, email, nationalID string) (*domain.User, error)
	GetUserFn    func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	ListUsersFn  func(ctx context.Context) ([]*domain.User, error)
	UpdateUserFn func(ctx context.Context, userID uuid.UUID, name, email, nationalID string) (*domain.User, error)
	DeleteUserFn func(ctx context.Context, userID uuid.UUID) error
}

func (m *MockUserService) CreateUser(ctx context.Context, name, email, nationalID string) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, name, email, nationalID)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(
	ctx context.Context,
	userID uuid.UUID,
	name, email, nationalID string,
) (*domain.User, error) {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, userID, name, email, nationalID)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	return nil
}

// newUserRouter mounts the handler on a chi router so path parameters resolve
func newUserRouter(handler *UserHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/users", handler.CreateUser)
	r.Get("/api/users", handler.ListUsers)
	r.Get("/api/users/{id}", handler.GetUser)
	r.Put("/api/users/{id}", handler.UpdateUser)
	r.Delete("/api/users/{id}", handler.DeleteUser)
	return r
}

func TestUserHandlerCreateUser(t *testing.T) {
	t.Parallel()

	testUser, err := domain.NewUser("João Silva", "joao.silva@email.com", "12345678901")
	require.NoError(t, err)

	tests := []struct {
		name       string
		payload    map[string]interface{}
		serviceErr error
		wantStatus int
	}{
		{
			name: "valid user",
			payload: map[string]interface{}{
				"name":        "João Silva",
				"email":       "joao.silva@email.com",
				"national_id": "12345678901",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing name",
			payload: map[string]interface{}{
				"email":       "joao.silva@email.com",
				"national_id": "12345678901",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"name":        "João Silva",
				"email":       "not-an-email",
				"national_id": "12345678901",
			},
			serviceErr: domain.ErrInvalidEmail,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			payload: map[string]interface{}{
				"name":        "João Silva",
				"email":       "joao.silva@email.com",
				"national_id": "12345678901",
			},
			serviceErr: store.ErrEmailExists,
			wantStatus: http.StatusConflict,
		},
		{
			name: "duplicate national ID",
			payload: map[string]interface{}{
				"name":        "João Silva",
				"email":       "joao.silva@email.com",
				"national_id": "12345678901",
			},
			serviceErr: store.ErrNationalIDExists,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUserService{
				CreateUserFn: func(ctx context.Context, name, email, nationalID string) (*domain.User, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return testUser, nil
				},
			}
			router := newUserRouter(NewUserHandler(svc))

			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/users", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp UserResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, testUser.ID, resp.ID)
				assert.Equal(t, testUser.Email, resp.Email)
			}
		})
	}
}

func TestUserHandlerGetUser(t *testing.T) {
	t.Parallel()

	testUser, err := domain.NewUser("Maria Santos", "maria.santos@email.com", "98765432100")
	require.NoError(t, err)

	svc := &MockUserService{
		GetUserFn: func(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
			if userID == testUser.ID {
				return testUser, nil
			}
			return nil, store.ErrUserNotFound
		},
	}
	router := newUserRouter(NewUserHandler(svc))

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/users/"+testUser.ID.String(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp UserResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, testUser.ID, resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/users/"+uuid.NewString(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("malformed ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/users/not-a-uuid", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestUserHandlerListUsers(t *testing.T) {
	t.Parallel()

	u1, err := domain.NewUser("João Silva", "joao.silva@email.com", "12345678901")
	require.NoError(t, err)
	u2, err := domain.NewUser("Maria Santos", "maria.santos@email.com", "98765432100")
	require.NoError(t, err)

	svc := &MockUserService{
		ListUsersFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{u1, u2}, nil
		},
	}
	router := newUserRouter(NewUserHandler(svc))

	req := httptest.NewRequest("GET", "/api/users", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp []UserResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestUserHandlerUpdateUser(t *testing.T) {
	t.Parallel()

	testUser, err := domain.NewUser("João Silva", "joao.silva@email.com", "12345678901")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		svc := &MockUserService{
			UpdateUserFn: func(ctx context.Context, userID uuid.UUID, name, email, nationalID string) (*domain.User, error) {
				updated := *testUser
				updated.Name = name
				return &updated, nil
			},
		}
		router := newUserRouter(NewUserHandler(svc))

		payload, err := json.Marshal(map[string]interface{}{
			"name":        "João S. Silva",
			"email":       "joao.silva@email.com",
			"national_id": "12345678901",
		})
		require.NoError(t, err)

		req := httptest.NewRequest("PUT", "/api/users/"+testUser.ID.String(), bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp UserResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "João S. Silva", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &MockUserService{
			UpdateUserFn: func(ctx context.Context, userID uuid.UUID, name, email, nationalID string) (*domain.User, error) {
				return nil, store.ErrUserNotFound
			},
		}
		router := newUserRouter(NewUserHandler(svc))

		payload, err := json.Marshal(map[string]interface{}{"name": "Anyone"})
		require.NoError(t, err)

		req := httptest.NewRequest("PUT", "/api/users/"+uuid.NewString(), bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestUserHandlerDeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		svc := &MockUserService{}
		router := newUserRouter(NewUserHandler(svc))

		req := httptest.NewRequest("DELETE", "/api/users/"+uuid.NewString(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		svc := &MockUserService{
			DeleteUserFn: func(ctx context.Context, userID uuid.UUID) error {
				return store.ErrUserNotFound
			},
		}
		router := newUserRouter(NewUserHandler(svc))

		req := httptest.NewRequest("DELETE", "/api/users/"+uuid.NewString(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
