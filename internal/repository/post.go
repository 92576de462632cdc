package repository

import (
	"context"

	"blogcore/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostRepository struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
	INSERT INTO posts (title, content, slug, author_id, status, published_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		post.Title,
		post.Content,
		post.Slug,
		post.AuthorID,
		post.Status,
		post.PublishedAt,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
}

func (r *PostRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, slug).Scan(&exists)
	return exists, err
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	query := `SELECT id, title, content, slug, author_id, status, published_at, created_at, updated_at
	FROM posts
	WHERE slug = $1`

	var p models.Post
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&p.ID, &p.Title, &p.Content, &p.Slug, &p.AuthorID,
		&p.Status, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const postWithAuthorColumns = `
	posts.id,
	posts.title,
	posts.content,
	posts.slug,
	posts.status,
	posts.published_at,
	posts.created_at,
	posts.updated_at,
	users.id,
	users.username,
	users.email,
	COUNT(comments.id)`

func (r *PostRepository) GetBySlugWithAuthor(ctx context.Context, slug string) (*models.PostWithAuthor, error) {
	query := `SELECT ` + postWithAuthorColumns + `
	FROM posts
	INNER JOIN users ON posts.author_id = users.id
	LEFT JOIN comments ON posts.id = comments.post_id
	WHERE posts.slug = $1
	GROUP BY posts.id, users.id`

	var p models.PostWithAuthor
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&p.ID, &p.Title, &p.Content, &p.Slug, &p.Status,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Name, &p.Author.Email,
		&p.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) ListPublished(ctx context.Context, limit int) ([]*models.PostWithAuthor, error) {
	query := `SELECT ` + postWithAuthorColumns + `
	FROM posts
	INNER JOIN users ON posts.author_id = users.id
	LEFT JOIN comments ON posts.id = comments.post_id
	WHERE posts.status = 'published'
	GROUP BY posts.id, users.id
	ORDER BY posts.published_at DESC
	LIMIT $1`

	return r.scanPostList(ctx, query, limit)
}

func (r *PostRepository) ListPublishedByAuthor(ctx context.Context, username string) ([]*models.PostWithAuthor, error) {
	query := `SELECT ` + postWithAuthorColumns + `
	FROM posts
	INNER JOIN users ON posts.author_id = users.id
	LEFT JOIN comments ON posts.id = comments.post_id
	WHERE users.username = $1 AND posts.status = 'published'
	GROUP BY posts.id, users.id
	ORDER BY posts.published_at DESC`

	return r.scanPostList(ctx, query, username)
}

func (r *PostRepository) scanPostList(ctx context.Context, query string, args ...interface{}) ([]*models.PostWithAuthor, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.PostWithAuthor
	for rows.Next() {
		var p models.PostWithAuthor
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.Slug, &p.Status,
			&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
			&p.Author.ID, &p.Author.Name, &p.Author.Email,
			&p.CommentCount,
		); err != nil {
			return nil, err
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetOwnerBySlug — свежие поля владения для проверки авторизации.
func (r *PostRepository) GetOwnerBySlug(ctx context.Context, slug string) (*models.PostOwner, error) {
	query := `SELECT posts.id, posts.slug, posts.author_id, users.username
	FROM posts
	INNER JOIN users ON posts.author_id = users.id
	WHERE posts.slug = $1`

	var owner models.PostOwner
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&owner.ID, &owner.Slug, &owner.AuthorID, &owner.AuthorUsername,
	)
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *PostRepository) UpdateContent(ctx context.Context, slug, title, content string) (*models.Post, error) {
	query := `
	UPDATE posts
	SET title = $1, content = $2, updated_at = NOW()
	WHERE slug = $3
	RETURNING id, title, content, slug, author_id, status, published_at, created_at, updated_at`

	var p models.Post
	err := r.db.QueryRow(ctx, query, title, content, slug).Scan(
		&p.ID, &p.Title, &p.Content, &p.Slug, &p.AuthorID,
		&p.Status, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SetPublish переключает статус. published_at выставляется один раз
// и при снятии с публикации не очищается.
func (r *PostRepository) SetPublish(ctx context.Context, slug string, publish bool) (*models.Post, error) {
	query := `
	UPDATE posts
	SET status = CASE WHEN $2 THEN 'published' ELSE 'draft' END,
	    published_at = CASE WHEN $2 THEN COALESCE(published_at, NOW()) ELSE published_at END,
	    updated_at = NOW()
	WHERE slug = $1
	RETURNING id, title, content, slug, author_id, status, published_at, created_at, updated_at`

	var p models.Post
	err := r.db.QueryRow(ctx, query, slug, publish).Scan(
		&p.ID, &p.Title, &p.Content, &p.Slug, &p.AuthorID,
		&p.Status, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Delete(ctx context.Context, slug string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM posts WHERE slug = $1`, slug)
	return err
}
