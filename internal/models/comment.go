package models

import "time"

type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	PostID    int       `json:"post_id"`
	UserID    int       `json:"user_id"`
	ParentID  *int      `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentAuthor — сводка автора внутри ответа по комментарию.
type CommentAuthor struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CommentWithAuthor — комментарий со сводкой автора для ответов API.
type CommentWithAuthor struct {
	ID        int           `json:"id"`
	Content   string        `json:"content"`
	PostID    int           `json:"postId"`
	ParentID  *int          `json:"parentId"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Author    CommentAuthor `json:"author"`
}

type CreateCommentRequest struct {
	Content  string `json:"content"`
	ParentID *int   `json:"parentId,omitempty"`
}
