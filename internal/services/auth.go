package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"blogcore/internal/apperr"
	"blogcore/internal/logger"
	"blogcore/internal/models"
	"blogcore/internal/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AuthService struct {
	repo UserRepo
}

func NewAuthService(repo UserRepo) *AuthService {
	return &AuthService{repo: repo}
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUsersByRole(ctx context.Context, role string) ([]*models.User, error)
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// validateRegister собирает список ошибок по полям — клиент получает
// их одним 422, а не по одной за запрос.
func validateRegister(req *RegisterRequest) []apperr.FieldError {
	var fields []apperr.FieldError

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	req.Role = strings.TrimSpace(req.Role)

	if req.Email == "" || !strings.Contains(req.Email, "@") || strings.HasPrefix(req.Email, "@") || strings.HasSuffix(req.Email, "@") {
		fields = append(fields, apperr.FieldError{Field: "email", Message: "Invalid email address"})
	}
	if len(req.Password) < 8 {
		fields = append(fields, apperr.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if len(req.Username) < 2 {
		fields = append(fields, apperr.FieldError{Field: "username", Message: "Username must be at least 2 characters"})
	}
	if !models.IsValidRole(req.Role) {
		fields = append(fields, apperr.FieldError{Field: "role", Message: "Role must be one of: reader, author, admin"})
	}

	return fields
}

// RegisterUser регистрирует пользователя. Проверка уникальности здесь —
// check-then-insert; финальный арбитр — UNIQUE-констрейнты в базе,
// их нарушение классифицируется как Conflict.
func (s *AuthService) RegisterUser(ctx context.Context, req RegisterRequest) (*models.User, error) {
	logger.WithCtx(ctx).Info("Регистрация пользователя (service)", zap.String("username", req.Username), zap.String("email", req.Email))

	if fields := validateRegister(&req); len(fields) > 0 {
		logger.WithCtx(ctx).Warn("Валидация регистрации не пройдена", zap.Int("violations", len(fields)))
		return nil, apperr.Validation(fields...)
	}

	if taken, err := s.repo.IsEmailTaken(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict(fmt.Sprintf("%s already exists", req.Email))
	}

	if taken, err := s.repo.IsUsernameTaken(ctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict(fmt.Sprintf("%s already exists", req.Username))
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hashed,
		Role:         req.Role,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		logger.WithCtx(ctx).Error("Ошибка создания пользователя", zap.Error(err))
		return nil, err
	}

	logger.WithCtx(ctx).Info("Пользователь зарегистрирован (service)", zap.Int("user_id", user.ID), zap.String("role", user.Role))
	return user, nil
}

func validateLogin(email, password string) []apperr.FieldError {
	var fields []apperr.FieldError
	if email == "" || !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		fields = append(fields, apperr.FieldError{Field: "email", Message: "Invalid email address"})
	}
	if len(password) < 8 {
		fields = append(fields, apperr.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	return fields
}

// LoginUser проверяет пару email/пароль и выдаёт access-токен.
// Неизвестный email и неверный пароль дают один и тот же ответ —
// детерминированно, без блокировок по числу попыток.
func (s *AuthService) LoginUser(ctx context.Context, email, password, jwtSecret string, ttl time.Duration) (string, *models.User, error) {
	logger.WithCtx(ctx).Info("Попытка входа (service)", zap.String("email", email))

	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	if fields := validateLogin(email, password); len(fields) > 0 {
		return "", nil, apperr.Validation(fields...)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.WithCtx(ctx).Warn("Пользователь не найден (service)", zap.String("email", email))
			return "", nil, apperr.Unauthenticated("invalid email or password")
		}
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.WithCtx(ctx).Warn("Неверный пароль (service)", zap.String("email", email))
		return "", nil, apperr.Unauthenticated("invalid email or password")
	}

	token, err := utils.GenerateToken(jwtSecret, user, ttl)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка генерации access-токена", zap.Error(err))
		return "", nil, err
	}

	logger.WithCtx(ctx).Info("Вход выполнен (service)", zap.Int("user_id", user.ID), zap.String("role", user.Role))
	return token, user, nil
}
