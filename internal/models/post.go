package models

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

type Post struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Slug        string     `json:"slug"`
	AuthorID    int        `json:"author_id"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AuthorSummary — сводка автора внутри ответа по посту.
type AuthorSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PostWithAuthor — пост вместе с автором и количеством комментариев
// (результат JOIN-запроса, как его отдаёт публичное чтение).
type PostWithAuthor struct {
	ID           int           `json:"id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Slug         string        `json:"slug"`
	Status       string        `json:"-"`
	PublishedAt  *time.Time    `json:"publishedAt"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	Author       AuthorSummary `json:"author"`
	CommentCount int           `json:"commentCount"`
}

// PostOwner — свежепрочитанные поля владения для проверок авторизации.
// Никогда не кешируется между запросами.
type PostOwner struct {
	ID             int
	Slug           string
	AuthorID       int
	AuthorUsername string
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status,omitempty" example:"draft"`
}

type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
