package handlers

import (
	"encoding/json"
	"net/http"

	"blogcore/internal/apperr"
	"blogcore/internal/middleware"
	"blogcore/internal/models"
	"blogcore/internal/services"
	"blogcore/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type createPostResponse struct {
	Post *models.Post `json:"post"`
}

type postResponse struct {
	Success bool                   `json:"success"`
	Data    *models.PostWithAuthor `json:"data"`
}

type postListResponse struct {
	Success bool                     `json:"success"`
	Count   int                      `json:"count"`
	Author  string                   `json:"author,omitempty"`
	Data    []*models.PostWithAuthor `json:"data"`
}

type updatePostResponse struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updated_at"`
}

type deletePostResponse struct {
	Success     bool   `json:"success"`
	Msg         string `json:"msg"`
	DeletedSlug string `json:"deletedSlug"`
}

type publishRequest struct {
	Publish bool `json:"publish"`
}

// Create godoc
// @Summary Создать пост (только author)
// @Tags posts
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreatePostRequest true "Данные поста"
// @Success 201 {object} createPostResponse
// @Failure 403 {object} helpers.ErrorResponse "Доступ запрещён"
// @Failure 409 {object} helpers.ErrorResponse "Слаг уже занят"
// @Router /api/v1/posts [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		helpers.Fail(w, r, apperr.Unauthenticated(""))
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Fail(w, r, apperr.InvalidInput("Invalid JSON body"))
		return
	}

	post, err := h.postService.Create(r.Context(), actor, req)
	if err != nil {
		helpers.Fail(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, createPostResponse{Post: post})
}

// GetBySlug godoc
// @Summary Получить опубликованный пост по слагу
// @Tags posts
// @Produce json
// @Param slug path string true "Слаг поста"
// @Success 200 {object} postResponse
// @Failure 404 {object} helpers.ErrorResponse "Пост не найден"
// @Router /api/v1/posts/{slug} [get]
func (h *PostHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.postService.GetBySlug(r.Context(), slug)
	if err != nil {
		helpers.Fail(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, postResponse{Success: true, Data: post})
}

// List godoc
// @Summary Лента опубликованных постов
// @Description Без фильтра — десять последних. С ?author=<username> — все публикации автора.
// @Tags posts
// @Security ApiKeyAuth
// @Produce json
// @Param author query string false "Username автора"
// @Success 200 {object} postListResponse
// @Failure 404 {object} helpers.ErrorResponse "Постов нет"
// @Router /api/v1/posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.ActorFrom(r.Context()); !ok {
		helpers.Fail(w, r, apperr.Unauthenticated(""))
		return
	}

	author := r.URL.Query().Get("author")

	posts, err := h.postService.ListPublished(r.Context(), author)
	if err != nil {
		helpers.Fail(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, postListResponse{
		Success: true,
		Count:   len(posts),
		Author:  author,
		Data:    posts,
	})
}

// Update godoc
// @Summary Обновить пост (только автор-владелец)
// @Tags posts
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param slug path string true "Слаг поста"
// @Param input body models.UpdatePostRequest true "Новые title и content"
// @Success 200 {object} updatePostResponse
// @Failure 403 {object} helpers.ErrorResponse "Доступ запрещён"
// @Failure 404 {object} helpers.ErrorResponse "Пост не найден"
// @Router /api/v1/posts/{slug} [put]
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		helpers.Fail(w, r, apperr.Unauthenticated(""))
		return
	}

	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Fail(w, r, apperr.InvalidInput("Invalid JSON body"))
		return
	}

	post, err := h.postService.Update(r.Context(), actor, mux.Vars(r)["slug"], req)
	if err != nil {
		helpers.Fail(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, updatePostResponse{
		Title:     post.Title,
		Content:   post.Content,
		UpdatedAt: post.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Delete godoc
// @Summary Удалить пост (админ или автор-владелец)
// @Tags posts
// @Security ApiKeyAuth
// @Produce json
// @Param slug path string true "Слаг поста"
// @Success 200 {object} deletePostResponse
// @Failure 403 {object} helpers.ErrorResponse "Доступ запрещён"
// @Failure 404 {object} helpers.ErrorResponse "Пост не найден"
// @Router /api/v1/posts/{slug} [delete]
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		helpers.Fail(w, r, apperr.Unauthenticated(""))
		return
	}

	slug := mux.Vars(r)["slug"]

	byAdmin, err := h.postService.Delete(r.Context(), actor, slug)
	if err != nil {
		helpers.Fail(w, r, err)
		return
	}

	msg := "Post deleted successfully"
	if byAdmin {
		msg = "Post deleted by admin"
	}

	helpers.JSON(w, http.StatusOK, deletePostResponse{
		Success:     true,
		Msg:         msg,
		DeletedSlug: slug,
	})
}

// SetPublish godoc
// @Summary Опубликовать или снять с публикации (только автор-владелец)
// @Tags posts
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param slug path string true "Слаг поста"
// @Param input body publishRequest true "Новый статус публикации"
// @Success 200 {object} createPostResponse
// @Failure 403 {object} helpers.ErrorResponse "Доступ запрещён"
// @Router /api/v1/posts/{slug}/publish [patch]
func (h *PostHandler) SetPublish(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		helpers.Fail(w, r, apperr.Unauthenticated(""))
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Fail(w, r, apperr.InvalidInput("Invalid JSON body"))
		return
	}

	post, err := h.postService.SetPublish(r.Context(), actor, mux.Vars(r)["slug"], req.Publish)
	if err != nil {
		helpers.Fail(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, createPostResponse{Post: post})
}
