package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanveksler/stayspot-backend/internal/dto"
	"github.com/jordanveksler/stayspot-backend/internal/services"
)

type stubAuth struct {
	register func(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	login    func(req *dto.LoginRequest) (*dto.AuthResponse, error)
	refresh  func(req *dto.RefreshRequest) (*dto.AuthResponse, error)
	logout   func(req *dto.LogoutRequest) error
	me       func(userID uint) (*dto.UserSelf, error)
	deleteFn func(userID uint, password string) error
}

func (s *stubAuth) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.register(req)
}
func (s *stubAuth) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) { return s.login(req) }
func (s *stubAuth) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	return s.refresh(req)
}
func (s *stubAuth) Logout(req *dto.LogoutRequest) error      { return s.logout(req) }
func (s *stubAuth) Me(userID uint) (*dto.UserSelf, error)    { return s.me(userID) }
func (s *stubAuth) DeleteAccount(id uint, pw string) error   { return s.deleteFn(id, pw) }

func authApp(svc AuthService, userID uint) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(svc)
	if userID != 0 {
		app.Use(asUser(userID))
	}
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	app.Get("/api/auth/me", h.Me)
	return app
}

const registerBody = `{"username":"wanderer","email":"w@example.com","firstName":"Sam","lastName":"Hart","password":"hunter22"}`

// Each taken unique column reports its own conflict; a lost race on the
// username index must not be blamed on the email.
func TestRegister_ConflictSentinels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
	}{
		{"email taken", services.ErrEmailTaken},
		{"username taken", services.ErrUsernameTaken},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &stubAuth{
				register: func(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
					return nil, tc.err
				},
			}
			resp, body := doJSON(t, authApp(svc, 0), http.MethodPost, "/api/auth/register", registerBody)

			assert.Equal(t, http.StatusConflict, resp.StatusCode)
			assert.Equal(t, tc.err.Error(), body["message"])
		})
	}
}

func TestRegister_Created(t *testing.T) {
	t.Parallel()

	svc := &stubAuth{
		register: func(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
			return &dto.AuthResponse{
				AccessToken:  "token",
				RefreshToken: "refresh",
				User:         dto.UserSelf{ID: 1, Username: req.Username, Email: req.Email},
			}, nil
		},
	}
	resp, body := doJSON(t, authApp(svc, 0), http.MethodPost, "/api/auth/register", registerBody)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, body["access_token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := &stubAuth{
		login: func(req *dto.LoginRequest) (*dto.AuthResponse, error) {
			return nil, services.ErrInvalidCredentials
		},
	}
	resp, body := doJSON(t, authApp(svc, 0), http.MethodPost, "/api/auth/login",
		`{"credential":"wanderer","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestMe_Unauthenticated(t *testing.T) {
	t.Parallel()

	app := authApp(&stubAuth{}, 0)
	resp, body := doJSON(t, app, http.MethodGet, "/api/auth/me", "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authentication required", body["message"])
}

func TestMe_SelfView(t *testing.T) {
	t.Parallel()

	svc := &stubAuth{
		me: func(userID uint) (*dto.UserSelf, error) {
			require.Equal(t, uint(3), userID)
			return &dto.UserSelf{ID: 3, Username: "wanderer", Email: "w@example.com"}, nil
		},
	}
	resp, body := doJSON(t, authApp(svc, 3), http.MethodGet, "/api/auth/me", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "wanderer", body["username"])
	assert.Equal(t, "w@example.com", body["email"])
}
