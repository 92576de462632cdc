package services

import (
	"context"
	"fmt"
	"strings"

	"blogcore/internal/apperr"
	"blogcore/internal/logger"
	"blogcore/internal/models"
	"blogcore/internal/policy"

	"go.uber.org/zap"
)

// DirectoryService — админский справочник пользователей.
type DirectoryService struct {
	repo UserRepo
}

func NewDirectoryService(repo UserRepo) *DirectoryService {
	return &DirectoryService{repo: repo}
}

var directoryRoles = []string{models.RoleAuthor, models.RoleReader, models.RoleAdmin}

// List возвращает пользователей, при необходимости отфильтрованных
// по роли. Хеш пароля из этого слоя не выходит никогда.
func (s *DirectoryService) List(ctx context.Context, actor models.Actor, roleFilter string) ([]*models.User, error) {
	if !policy.CanListUsers(actor) {
		logger.WithCtx(ctx).Warn("Справочник пользователей запрещён", zap.String("role", actor.Role))
		return nil, apperr.Forbidden("Access denied")
	}

	if roleFilter == "" {
		return s.repo.GetAllUsers(ctx)
	}

	if !models.IsValidRole(roleFilter) {
		return nil, apperr.InvalidInput(fmt.Sprintf("Invalid role. Must be one of: %s", strings.Join(directoryRoles, ", ")))
	}

	return s.repo.GetUsersByRole(ctx, roleFilter)
}
