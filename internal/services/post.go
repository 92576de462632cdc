package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"blogcore/internal/apperr"
	"blogcore/internal/logger"
	"blogcore/internal/models"
	"blogcore/internal/policy"
	"blogcore/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// publishedFeedLimit — публичная лента без фильтра отдаёт не больше
// десяти последних опубликованных постов.
const publishedFeedLimit = 10

type PostService struct {
	repo      PostRepo
	sanitizer *bluemonday.Policy
}

func NewPostService(repo PostRepo) *PostService {
	return &PostService{
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

type PostRepo interface {
	Create(ctx context.Context, post *models.Post) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetBySlugWithAuthor(ctx context.Context, slug string) (*models.PostWithAuthor, error)
	ListPublished(ctx context.Context, limit int) ([]*models.PostWithAuthor, error)
	ListPublishedByAuthor(ctx context.Context, username string) ([]*models.PostWithAuthor, error)
	GetOwnerBySlug(ctx context.Context, slug string) (*models.PostOwner, error)
	UpdateContent(ctx context.Context, slug, title, content string) (*models.Post, error)
	SetPublish(ctx context.Context, slug string, publish bool) (*models.Post, error)
	Delete(ctx context.Context, slug string) error
}

func validatePostContent(title, content string) []apperr.FieldError {
	var fields []apperr.FieldError
	if utf8.RuneCountInString(strings.TrimSpace(title)) < 2 {
		fields = append(fields, apperr.FieldError{Field: "title", Message: "Title must be at least 2 characters"})
	}
	if strings.TrimSpace(content) == "" {
		fields = append(fields, apperr.FieldError{Field: "content", Message: "Content is required"})
	}
	return fields
}

// Create создаёт пост. Слаг выводится из заголовка и проверяется на
// уникальность до вставки; гонку двух одинаковых слагов разрешает
// UNIQUE-констрейнт, и его нарушение станет Conflict, не 500.
func (s *PostService) Create(ctx context.Context, actor models.Actor, req models.CreatePostRequest) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание поста (service)", zap.Int("actor_id", actor.ID), zap.String("title", strings.TrimSpace(req.Title)))

	if !policy.CanCreatePost(actor) {
		log.Warn("Создание поста запрещено", zap.String("role", actor.Role))
		return nil, apperr.Forbidden("")
	}

	if fields := validatePostContent(req.Title, req.Content); len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !models.IsValidStatus(status) {
		return nil, apperr.InvalidInput("Status must be one of: draft, published, archived")
	}

	title := strings.TrimSpace(req.Title)
	slug := utils.GenerateSlug(title)
	if slug == "" {
		return nil, apperr.InvalidInput("Title does not produce a valid slug")
	}

	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		log.Warn("Слаг уже занят", zap.String("slug", slug))
		return nil, apperr.Conflict("")
	}

	var publishedAt *time.Time
	if status == models.StatusPublished {
		now := time.Now()
		publishedAt = &now
	}

	post := &models.Post{
		Title:       title,
		Content:     s.sanitizer.Sanitize(req.Content),
		Slug:        slug,
		AuthorID:    actor.ID,
		Status:      status,
		PublishedAt: publishedAt,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		log.Error("Ошибка создания поста (service)", zap.Error(err))
		return nil, err
	}

	log.Info("Пост создан (service)", zap.Int("post_id", post.ID), zap.String("slug", post.Slug))
	return post, nil
}

// GetBySlug — публичное чтение. Неопубликованный пост неотличим от
// отсутствующего: в обоих случаях NotFound.
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*models.PostWithAuthor, error) {
	if !utils.IsValidSlug(slug) {
		return nil, apperr.InvalidInput("Invalid slug format")
	}

	post, err := s.repo.GetBySlugWithAuthor(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, err
	}

	if post.Status != models.StatusPublished {
		return nil, apperr.NotFound("Post not found")
	}

	return post, nil
}

// ListPublished — лента опубликованного. Без фильтра: десять последних
// по published_at. С фильтром по username автора: все его публикации.
func (s *PostService) ListPublished(ctx context.Context, authorFilter string) ([]*models.PostWithAuthor, error) {
	if authorFilter == "" {
		posts, err := s.repo.ListPublished(ctx, publishedFeedLimit)
		if err != nil {
			return nil, err
		}
		if len(posts) == 0 {
			return nil, apperr.NotFound("Post not found")
		}
		return posts, nil
	}

	posts, err := s.repo.ListPublishedByAuthor(ctx, authorFilter)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, apperr.NotFound("Author has no post")
	}
	return posts, nil
}

// Update — владелец сверяется по username из свежего запроса к базе.
func (s *PostService) Update(ctx context.Context, actor models.Actor, slug string, req models.UpdatePostRequest) (*models.Post, error) {
	log := logger.WithCtx(ctx)

	if !actor.IsAuthor() {
		return nil, apperr.Forbidden("Permission denied")
	}

	if !utils.IsValidSlug(slug) {
		return nil, apperr.InvalidInput("Invalid slug format")
	}

	if fields := validatePostContent(req.Title, req.Content); len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	owner, err := s.repo.GetOwnerBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, err
	}

	if !policy.CanUpdatePost(actor, owner.AuthorUsername) {
		log.Warn("Обновление чужого поста запрещено",
			zap.Int("actor_id", actor.ID), zap.String("slug", slug))
		return nil, apperr.Forbidden("")
	}

	post, err := s.repo.UpdateContent(ctx, slug, strings.TrimSpace(req.Title), s.sanitizer.Sanitize(req.Content))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, err
	}

	log.Info("Пост обновлён (service)", zap.Int("post_id", post.ID), zap.String("slug", slug))
	return post, nil
}

// Delete удаляет пост. Возвращает признак того, что удаление выполнил
// админ над чужим постом — ответ клиенту различает эти случаи.
func (s *PostService) Delete(ctx context.Context, actor models.Actor, slug string) (deletedByAdmin bool, err error) {
	log := logger.WithCtx(ctx)

	if !utils.IsValidSlug(slug) {
		return false, apperr.InvalidInput("Invalid slug format")
	}

	owner, err := s.repo.GetOwnerBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperr.NotFound("Post not found")
		}
		return false, err
	}

	if !policy.CanDeletePost(actor, owner.AuthorID) {
		log.Warn("Удаление поста запрещено",
			zap.Int("actor_id", actor.ID), zap.Int("author_id", owner.AuthorID), zap.String("role", actor.Role))
		return false, apperr.Forbidden("")
	}

	if err := s.repo.Delete(ctx, slug); err != nil {
		return false, err
	}

	log.Info("Пост удалён (service)", zap.String("slug", slug), zap.Int("actor_id", actor.ID))
	return actor.IsAdmin() && actor.ID != owner.AuthorID, nil
}

// SetPublish переключает публикацию. Доступно только автору-владельцу;
// published_at при снятии с публикации не очищается.
func (s *PostService) SetPublish(ctx context.Context, actor models.Actor, slug string, publish bool) (*models.Post, error) {
	if !utils.IsValidSlug(slug) {
		return nil, apperr.InvalidInput("Invalid slug format")
	}

	owner, err := s.repo.GetOwnerBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, err
	}

	if !policy.CanUpdatePost(actor, owner.AuthorUsername) {
		return nil, apperr.Forbidden("")
	}

	post, err := s.repo.SetPublish(ctx, slug, publish)
	if err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("Статус публикации изменён (service)",
		zap.String("slug", slug), zap.Bool("publish", publish))
	return post, nil
}
