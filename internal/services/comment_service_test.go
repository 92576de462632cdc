package services

import (
	"context"
	"strings"
	"testing"

	"blogcore/internal/apperr"
	"blogcore/internal/models"

	"github.com/jackc/pgx/v5"
)

// Мок-репозиторий комментариев
type mockCommentRepo struct {
	comments map[int]*models.Comment
	byPost   map[int][]*models.CommentWithAuthor
	deleted  []int
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{
		comments: make(map[int]*models.Comment),
		byPost:   make(map[int][]*models.CommentWithAuthor),
	}
}

func (m *mockCommentRepo) Create(_ context.Context, c *models.Comment) (*models.CommentWithAuthor, error) {
	c.ID = len(m.comments) + 1
	m.comments[c.ID] = c
	return &models.CommentWithAuthor{ID: c.ID, Content: c.Content, PostID: c.PostID, ParentID: c.ParentID}, nil
}

func (m *mockCommentRepo) GetByID(_ context.Context, id int) (*models.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return c, nil
}

func (m *mockCommentRepo) ListByPost(_ context.Context, postID int) ([]*models.CommentWithAuthor, error) {
	return m.byPost[postID], nil
}

func (m *mockCommentRepo) Delete(_ context.Context, id int) error {
	delete(m.comments, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func commentFixtures() (*mockPostRepo, *mockCommentRepo, *CommentService) {
	posts := newMockPostRepo()
	posts.posts["live-post"] = &models.Post{ID: 1, Slug: "live-post", Status: models.StatusPublished}
	posts.posts["draft-post"] = &models.Post{ID: 2, Slug: "draft-post", Status: models.StatusDraft}
	comments := newMockCommentRepo()
	return posts, comments, NewCommentService(posts, comments)
}

func TestCreateComment(t *testing.T) {
	_, comments, service := commentFixtures()

	created, err := service.Create(context.Background(), postReader, "live-post", models.CreateCommentRequest{
		Content: "  Nice post!  ",
	})
	if err != nil {
		t.Fatalf("ошибка создания комментария: %v", err)
	}
	if created.Content != "Nice post!" {
		t.Errorf("контент не обрезан: %q", created.Content)
	}
	if comments.comments[created.ID].PostID != 1 {
		t.Errorf("комментарий привязан не к тому посту: %d", comments.comments[created.ID].PostID)
	}
}

func TestCreateComment_Threaded(t *testing.T) {
	_, comments, service := commentFixtures()
	comments.comments[10] = &models.Comment{ID: 10, PostID: 1, UserID: 5}

	parentID := 10
	created, err := service.Create(context.Background(), postReader, "live-post", models.CreateCommentRequest{
		Content:  "reply here",
		ParentID: &parentID,
	})
	if err != nil {
		t.Fatalf("ошибка создания ответа: %v", err)
	}
	if created.ParentID == nil || *created.ParentID != 10 {
		t.Error("parent_id не сохранён")
	}
}

func TestCreateComment_ParentFromAnotherPost(t *testing.T) {
	posts, comments, service := commentFixtures()
	posts.posts["other-post"] = &models.Post{ID: 3, Slug: "other-post", Status: models.StatusPublished}
	comments.comments[10] = &models.Comment{ID: 10, PostID: 3, UserID: 5}

	parentID := 10
	_, err := service.Create(context.Background(), postReader, "live-post", models.CreateCommentRequest{
		Content:  "cross-post reply",
		ParentID: &parentID,
	})
	if kindOf(t, err) != apperr.KindInvalidInput {
		t.Fatalf("родитель из другого поста: ожидался 400, получено: %v", err)
	}
}

func TestCreateComment_ParentMissing(t *testing.T) {
	_, _, service := commentFixtures()

	parentID := 404
	_, err := service.Create(context.Background(), postReader, "live-post", models.CreateCommentRequest{
		Content:  "reply to nothing",
		ParentID: &parentID,
	})
	if kindOf(t, err) != apperr.KindNotFound {
		t.Fatalf("ожидался 404, получено: %v", err)
	}
	if err.Error() != "Parent comment not found" {
		t.Errorf("неожиданное сообщение: %q", err.Error())
	}
}

func TestCreateComment_UnpublishedPostMasked(t *testing.T) {
	_, _, service := commentFixtures()

	// Черновик не должен быть различим снаружи
	_, err := service.Create(context.Background(), postReader, "draft-post", models.CreateCommentRequest{
		Content: "sneaky comment",
	})
	if kindOf(t, err) != apperr.KindNotFound {
		t.Fatalf("черновик должен маскироваться под 404, получено: %v", err)
	}
	if err.Error() != "Post not found" {
		t.Errorf("неожиданное сообщение: %q", err.Error())
	}
}

func TestCreateComment_ContentBounds(t *testing.T) {
	_, _, service := commentFixtures()

	_, err := service.Create(context.Background(), postReader, "live-post", models.CreateCommentRequest{
		Content: "x",
	})
	if kindOf(t, err) != apperr.KindValidation {
		t.Fatalf("короткий комментарий: ожидался 422, получено: %v", err)
	}

	_, err = service.Create(context.Background(), postReader, "live-post", models.CreateCommentRequest{
		Content: strings.Repeat("a", 1001),
	})
	if kindOf(t, err) != apperr.KindInvalidInput {
		t.Fatalf("длинный комментарий: ожидался 400, получено: %v", err)
	}
}

func TestListComments(t *testing.T) {
	_, comments, service := commentFixtures()
	comments.byPost[1] = []*models.CommentWithAuthor{{ID: 1}, {ID: 2}}

	list, err := service.List(context.Background(), "live-post")
	if err != nil {
		t.Fatalf("ошибка списка: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("комментариев: %d", len(list))
	}

	_, err = service.List(context.Background(), "draft-post")
	if kindOf(t, err) != apperr.KindNotFound {
		t.Fatalf("комментарии черновика: ожидался 404, получено: %v", err)
	}
}

func TestDeleteComment_Owner(t *testing.T) {
	_, comments, service := commentFixtures()
	comments.comments[7] = &models.Comment{ID: 7, PostID: 1, UserID: postReader.ID}

	byAdmin, err := service.Delete(context.Background(), postReader, 7)
	if err != nil {
		t.Fatalf("ошибка удаления: %v", err)
	}
	if byAdmin {
		t.Error("владелец удалил свой комментарий — это не админское удаление")
	}
	if len(comments.deleted) != 1 {
		t.Errorf("удаления в репозитории: %v", comments.deleted)
	}
}

func TestDeleteComment_AdminDeletesForeign(t *testing.T) {
	_, comments, service := commentFixtures()
	comments.comments[7] = &models.Comment{ID: 7, PostID: 1, UserID: postReader.ID}

	byAdmin, err := service.Delete(context.Background(), postAdmin, 7)
	if err != nil {
		t.Fatalf("ошибка удаления: %v", err)
	}
	if !byAdmin {
		t.Error("админ удалил чужой комментарий — ответ должен это различать")
	}
}

func TestDeleteComment_Foreign(t *testing.T) {
	_, comments, service := commentFixtures()
	comments.comments[7] = &models.Comment{ID: 7, PostID: 1, UserID: 99}

	_, err := service.Delete(context.Background(), postReader, 7)
	if kindOf(t, err) != apperr.KindForbidden {
		t.Fatalf("чужой комментарий: ожидался 403, получено: %v", err)
	}
}

func TestDeleteComment_Missing(t *testing.T) {
	_, _, service := commentFixtures()

	_, err := service.Delete(context.Background(), postAdmin, 404)
	if kindOf(t, err) != apperr.KindNotFound {
		t.Fatalf("ожидался 404, получено: %v", err)
	}
}
