package server

import (
	"net/http"
	"testing"

	"kehilla/internal/config"
	"kehilla/internal/middleware"
	"kehilla/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthConfig(t *testing.T) {
	t.Helper()
	middleware.InitMiddleware(&config.Config{
		JWTSecret: "unit-test-secret-which-is-long-enough",
	})
}

func TestRegister(t *testing.T) {
	setupAuthConfig(t)

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(m *testMocks)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: map[string]string{
				"name":     "Rav Berger",
				"email":    "Berger@Example.com",
				"password": "password123",
			},
			mockSetup: func(m *testMocks) {
				m.users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					// Email is normalized before it reaches the repository.
					return u.Email == "berger@example.com" && u.Password != "password123"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing Fields",
			body: map[string]string{
				"email": "someone@example.com",
			},
			mockSetup:      func(m *testMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Name, email, and password are required",
		},
		{
			name: "Invalid Email",
			body: map[string]string{
				"name":     "Rav Berger",
				"email":    "not-an-email",
				"password": "password123",
			},
			mockSetup:      func(m *testMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid email format",
		},
		{
			name: "Duplicate Email",
			body: map[string]string{
				"name":     "Dup",
				"email":    "dup@example.com",
				"password": "password123",
			},
			mockSetup: func(m *testMocks) {
				m.users.On("Create", mock.Anything, mock.Anything).
					Return(models.NewValidationError("Email already exists"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestServer()
			tt.mockSetup(m)

			app := fiber.New()
			app.Post("/auth/register", s.Register)

			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/auth/register", tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body := decodeBody(t, resp)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				assert.NotEmpty(t, body["token"])
				assert.NotNil(t, body["user"])
			}
			m.users.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	setupAuthConfig(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	account := &models.User{ID: 1, Name: "Rav Berger", Email: "berger@example.com", Password: string(hash)}

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(m *testMocks)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: map[string]string{"email": "berger@example.com", "password": "password123"},
			mockSetup: func(m *testMocks) {
				m.users.On("GetByEmail", mock.Anything, "berger@example.com").Return(account, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Wrong Password",
			body: map[string]string{"email": "berger@example.com", "password": "wrong"},
			mockSetup: func(m *testMocks) {
				m.users.On("GetByEmail", mock.Anything, "berger@example.com").Return(account, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid credentials",
		},
		{
			name: "Unknown Email",
			body: map[string]string{"email": "ghost@example.com", "password": "password123"},
			mockSetup: func(m *testMocks) {
				m.users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid credentials",
		},
		{
			name:           "Missing Fields",
			body:           map[string]string{"email": "berger@example.com"},
			mockSetup:      func(m *testMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestServer()
			tt.mockSetup(m)

			app := fiber.New()
			app.Post("/auth/login", s.Login)

			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/auth/login", tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body := decodeBody(t, resp)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				assert.NotEmpty(t, body["token"])
			}
			m.users.AssertExpectations(t)
		})
	}
}
