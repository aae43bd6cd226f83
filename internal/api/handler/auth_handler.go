package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/souqly/marketplace-api/internal/api/metrics"
	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionService
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	FullName string `json:"fullName" validate:"required,max=255"`
	Phone    string `json:"phone"    validate:"max=32"`
	Role     string `json:"role"     validate:"omitempty,oneof=customer store_owner admin"`
}

type registerResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    loginUser `json:"user"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Failure      500   {object}  Envelope
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", metrics.AuthResult(err)).Inc()
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	metrics.AuthAttemptsTotal.WithLabelValues("register", metrics.AuthResult(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, registerResponse{
		Status:  statusSuccess,
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

// Login authenticates a user and returns a signed session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.AuthResult(err)).Inc()
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.AuthResult(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Status:  statusSuccess,
		Message: "Login successful",
		Token:   token,
		User: loginUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		},
	})
}

// Logout revokes the token the request was authenticated with.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, found := ClaimsFrom(c)
	if !found {
		return domain.ErrAuthMissing
	}
	if err := h.sessions.Revoke(c.Request().Context(), claims); err != nil {
		return err
	}
	return ok(c, "Logged out", nil)
}
