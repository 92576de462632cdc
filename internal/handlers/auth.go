package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"blogcore/internal/apperr"
	"blogcore/internal/config"
	"blogcore/internal/logger"
	"blogcore/internal/models"
	"blogcore/internal/services"
	"blogcore/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Msg  string             `json:"msg"`
	User models.UserSummary `json:"user"`
}

type loginResponse struct {
	Msg   string `json:"msg"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body services.RegisterRequest true "Данные регистрации"
// @Success 201 {object} registerResponse
// @Failure 409 {object} helpers.ErrorResponse "Email или username уже занят"
// @Failure 422 {object} helpers.ErrorResponse "Ошибка валидации"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Register", zap.Error(err))
		helpers.Fail(w, r, apperr.InvalidInput("Invalid JSON body"))
		return
	}

	user, err := h.authService.RegisterUser(r.Context(), req)
	if err != nil {
		helpers.Fail(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, registerResponse{
		Msg:  "User created successfully",
		User: user.Summary(),
	})
}

// Login godoc
// @Summary Вход по email и паролю
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Данные для входа"
// @Success 200 {object} loginResponse
// @Failure 401 {object} helpers.ErrorResponse "Неверный email или пароль"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Fail(w, r, apperr.InvalidInput("Invalid JSON body"))
		return
	}

	cfg, _ := config.LoadConfig()
	ttl, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		ttl = time.Hour
	}

	token, user, err := h.authService.LoginUser(r.Context(), req.Email, req.Password, cfg.JWTSecret, ttl)
	if err != nil {
		helpers.Fail(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, loginResponse{
		Msg:   "user logged in successfully",
		Role:  user.Role,
		Token: token,
	})
}
