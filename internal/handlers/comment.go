package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"blogcore/internal/apperr"
	"blogcore/internal/middleware"
	"blogcore/internal/models"
	"blogcore/internal/services"
	"blogcore/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type createCommentResponse struct {
	Success bool                      `json:"success"`
	Msg     string                    `json:"msg"`
	Comment *models.CommentWithAuthor `json:"comment"`
}

type commentListResponse struct {
	Success  bool                        `json:"success"`
	Count    int                         `json:"count"`
	Comments []*models.CommentWithAuthor `json:"comments"`
}

type deleteCommentResponse struct {
	Success          bool   `json:"success"`
	Msg              string `json:"msg"`
	DeletedCommentID int    `json:"deletedCommentId"`
}

// Create godoc
// @Summary Создать комментарий под опубликованным постом
// @Tags comments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param slug path string true "Слаг поста"
// @Param input body models.CreateCommentRequest true "Содержимое и необязательный parentId"
// @Success 201 {object} createCommentResponse
// @Failure 404 {object} helpers.ErrorResponse "Пост не найден"
// @Router /api/v1/posts/{slug}/comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		helpers.Fail(w, r, apperr.Unauthenticated(""))
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Fail(w, r, apperr.InvalidInput("Invalid parent comment ID"))
		return
	}

	comment, err := h.commentService.Create(r.Context(), actor, mux.Vars(r)["slug"], req)
	if err != nil {
		helpers.Fail(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, createCommentResponse{
		Success: true,
		Msg:     "Comment created successfully",
		Comment: comment,
	})
}

// List godoc
// @Summary Все комментарии опубликованного поста
// @Tags comments
// @Security ApiKeyAuth
// @Produce json
// @Param slug path string true "Слаг поста"
// @Success 200 {object} commentListResponse
// @Failure 404 {object} helpers.ErrorResponse "Пост не найден"
// @Router /api/v1/posts/{slug}/comments [get]
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.List(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		helpers.Fail(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, commentListResponse{
		Success:  true,
		Count:    len(comments),
		Comments: comments,
	})
}

// Delete godoc
// @Summary Удалить комментарий (владелец или админ)
// @Tags comments
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID комментария"
// @Success 200 {object} deleteCommentResponse
// @Failure 403 {object} helpers.ErrorResponse "Доступ запрещён"
// @Failure 404 {object} helpers.ErrorResponse "Комментарий не найден"
// @Router /api/v1/comments/{id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		helpers.Fail(w, r, apperr.Unauthenticated(""))
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Fail(w, r, apperr.InvalidInput("Invalid comment ID"))
		return
	}

	byAdmin, err := h.commentService.Delete(r.Context(), actor, id)
	if err != nil {
		helpers.Fail(w, r, err)
		return
	}

	msg := "Comment deleted successfully"
	if byAdmin {
		msg = "Comment deleted by admin"
	}

	helpers.JSON(w, http.StatusOK, deleteCommentResponse{
		Success:          true,
		Msg:              msg,
		DeletedCommentID: id,
	})
}
