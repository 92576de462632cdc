package repository

import (
	"context"

	"blogcore/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create вставляет комментарий и одним запросом возвращает его
// вместе со сводкой автора.
func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) (*models.CommentWithAuthor, error) {
	query := `
	INSERT INTO comments (content, post_id, user_id, parent_id)
	VALUES ($1, $2, $3, $4)
	RETURNING
		id,
		content,
		post_id,
		parent_id,
		created_at,
		updated_at,
		(SELECT username FROM users WHERE id = $3),
		(SELECT email FROM users WHERE id = $3)`

	var out models.CommentWithAuthor
	err := r.db.QueryRow(ctx, query, c.Content, c.PostID, c.UserID, c.ParentID).Scan(
		&out.ID,
		&out.Content,
		&out.PostID,
		&out.ParentID,
		&out.CreatedAt,
		&out.UpdatedAt,
		&out.Author.Username,
		&out.Author.Email,
	)
	if err != nil {
		return nil, err
	}
	out.Author.ID = c.UserID
	return &out, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	query := `SELECT id, content, post_id, user_id, parent_id, created_at, updated_at
	FROM comments
	WHERE id = $1`

	var c models.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Content, &c.PostID, &c.UserID, &c.ParentID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int) ([]*models.CommentWithAuthor, error) {
	query := `SELECT
		comments.id,
		comments.content,
		comments.post_id,
		comments.parent_id,
		comments.created_at,
		comments.updated_at,
		users.id,
		users.username,
		users.email
	FROM comments
	INNER JOIN users ON comments.user_id = users.id
	WHERE comments.post_id = $1
	ORDER BY comments.created_at ASC`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.CommentWithAuthor
	for rows.Next() {
		var c models.CommentWithAuthor
		if err := rows.Scan(
			&c.ID, &c.Content, &c.PostID, &c.ParentID, &c.CreatedAt, &c.UpdatedAt,
			&c.Author.ID, &c.Author.Username, &c.Author.Email,
		); err != nil {
			return nil, err
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CommentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}
