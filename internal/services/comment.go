package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"blogcore/internal/apperr"
	"blogcore/internal/logger"
	"blogcore/internal/models"
	"blogcore/internal/policy"
	"blogcore/internal/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const maxCommentLength = 1000

type CommentService struct {
	posts    PostFinder
	comments CommentRepo
}

func NewCommentService(posts PostFinder, comments CommentRepo) *CommentService {
	return &CommentService{posts: posts, comments: comments}
}

// PostFinder — ровно то, что нужно комментариям от постов: поиск по слагу.
type PostFinder interface {
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
}

type CommentRepo interface {
	Create(ctx context.Context, c *models.Comment) (*models.CommentWithAuthor, error)
	GetByID(ctx context.Context, id int) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int) ([]*models.CommentWithAuthor, error)
	Delete(ctx context.Context, id int) error
}

// Create создаёт комментарий под опубликованным постом. Черновик и
// архив маскируются под NotFound, чтобы не выдавать существование поста.
func (s *CommentService) Create(ctx context.Context, actor models.Actor, slug string, req models.CreateCommentRequest) (*models.CommentWithAuthor, error) {
	log := logger.WithCtx(ctx)

	if !utils.IsValidSlug(slug) {
		return nil, apperr.InvalidInput("Invalid slug format")
	}

	content := strings.TrimSpace(req.Content)
	if utf8.RuneCountInString(content) < 2 {
		return nil, apperr.Validation(apperr.FieldError{
			Field: "content", Message: "Comment must be at least 2 characters",
		})
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, apperr.InvalidInput("Comment must be less than 1000 characters")
	}

	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, err
	}

	if !policy.CanCreateComment(actor, post.Status) {
		// Неопубликованный пост не должен быть различим снаружи.
		log.Warn("Комментарий к неопубликованному посту", zap.String("slug", slug), zap.String("status", post.Status))
		return nil, apperr.NotFound("Post not found")
	}

	if req.ParentID != nil {
		parent, err := s.comments.GetByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperr.NotFound("Parent comment not found")
			}
			return nil, err
		}
		if parent.PostID != post.ID {
			return nil, apperr.InvalidInput("Parent comment does not belong to this post")
		}
	}

	comment := &models.Comment{
		Content:  content,
		PostID:   post.ID,
		UserID:   actor.ID,
		ParentID: req.ParentID,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		log.Error("Ошибка создания комментария (service)", zap.Error(err))
		return nil, err
	}

	log.Info("Комментарий создан (service)", zap.Int("comment_id", created.ID), zap.Int("post_id", post.ID))
	return created, nil
}

// List отдаёт все комментарии опубликованного поста, старые первыми.
func (s *CommentService) List(ctx context.Context, slug string) ([]*models.CommentWithAuthor, error) {
	if !utils.IsValidSlug(slug) {
		return nil, apperr.InvalidInput("Invalid slug format")
	}

	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, err
	}

	if post.Status != models.StatusPublished {
		return nil, apperr.NotFound("Post not found")
	}

	return s.comments.ListByPost(ctx, post.ID)
}

// Delete удаляет комментарий: владелец или админ. Возвращает признак
// того, что админ удалил чужой комментарий.
func (s *CommentService) Delete(ctx context.Context, actor models.Actor, id int) (deletedByAdmin bool, err error) {
	log := logger.WithCtx(ctx)

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperr.NotFound("Comment not found")
		}
		return false, err
	}

	if !policy.CanDeleteComment(actor, comment.UserID) {
		log.Warn("Удаление чужого комментария запрещено",
			zap.Int("actor_id", actor.ID), zap.Int("owner_id", comment.UserID))
		return false, apperr.Forbidden("")
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return false, err
	}

	log.Info("Комментарий удалён (service)", zap.Int("comment_id", id), zap.Int("actor_id", actor.ID))
	return actor.IsAdmin() && actor.ID != comment.UserID, nil
}
