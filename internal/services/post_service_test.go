package services

import (
	"context"
	"strings"
	"testing"

	"blogcore/internal/apperr"
	"blogcore/internal/models"

	"github.com/jackc/pgx/v5"
)

// Мок-репозиторий постов
type mockPostRepo struct {
	posts    map[string]*models.Post // по слагу
	owners   map[string]*models.PostOwner
	feed     []*models.PostWithAuthor
	byAuthor map[string][]*models.PostWithAuthor
	deleted  []string
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{
		posts:    make(map[string]*models.Post),
		owners:   make(map[string]*models.PostOwner),
		byAuthor: make(map[string][]*models.PostWithAuthor),
	}
}

func (m *mockPostRepo) Create(_ context.Context, post *models.Post) error {
	post.ID = len(m.posts) + 1
	m.posts[post.Slug] = post
	return nil
}

func (m *mockPostRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	_, ok := m.posts[slug]
	return ok, nil
}

func (m *mockPostRepo) GetBySlug(_ context.Context, slug string) (*models.Post, error) {
	p, ok := m.posts[slug]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (m *mockPostRepo) GetBySlugWithAuthor(_ context.Context, slug string) (*models.PostWithAuthor, error) {
	p, ok := m.posts[slug]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &models.PostWithAuthor{ID: p.ID, Title: p.Title, Slug: p.Slug, Status: p.Status}, nil
}

func (m *mockPostRepo) ListPublished(_ context.Context, limit int) ([]*models.PostWithAuthor, error) {
	if len(m.feed) > limit {
		return m.feed[:limit], nil
	}
	return m.feed, nil
}

func (m *mockPostRepo) ListPublishedByAuthor(_ context.Context, username string) ([]*models.PostWithAuthor, error) {
	return m.byAuthor[username], nil
}

func (m *mockPostRepo) GetOwnerBySlug(_ context.Context, slug string) (*models.PostOwner, error) {
	o, ok := m.owners[slug]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return o, nil
}

func (m *mockPostRepo) UpdateContent(_ context.Context, slug, title, content string) (*models.Post, error) {
	p, ok := m.posts[slug]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	p.Title = title
	p.Content = content
	return p, nil
}

func (m *mockPostRepo) SetPublish(_ context.Context, slug string, publish bool) (*models.Post, error) {
	p, ok := m.posts[slug]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if publish {
		p.Status = models.StatusPublished
	} else {
		p.Status = models.StatusDraft
	}
	return p, nil
}

func (m *mockPostRepo) Delete(_ context.Context, slug string) error {
	delete(m.posts, slug)
	m.deleted = append(m.deleted, slug)
	return nil
}

var (
	postAuthor = models.Actor{ID: 2, Username: "author1", Role: models.RoleAuthor}
	postReader = models.Actor{ID: 1, Username: "reader1", Role: models.RoleReader}
	postAdmin  = models.Actor{ID: 3, Username: "admin1", Role: models.RoleAdmin}
)

func TestCreatePost(t *testing.T) {
	repo := newMockPostRepo()
	service := NewPostService(repo)

	post, err := service.Create(context.Background(), postAuthor, models.CreatePostRequest{
		Title:   "My First Post!",
		Content: "Hello, world.",
	})
	if err != nil {
		t.Fatalf("ошибка создания поста: %v", err)
	}

	if post.Slug != "my-first-post" {
		t.Errorf("слаг: %q", post.Slug)
	}
	if post.Status != models.StatusDraft {
		t.Errorf("статус по умолчанию должен быть draft, получен %q", post.Status)
	}
	if post.PublishedAt != nil {
		t.Error("у черновика не должно быть published_at")
	}
	if post.AuthorID != postAuthor.ID {
		t.Errorf("author_id: %d", post.AuthorID)
	}
}

func TestCreatePost_PublishedSetsTimestamp(t *testing.T) {
	repo := newMockPostRepo()
	service := NewPostService(repo)

	post, err := service.Create(context.Background(), postAuthor, models.CreatePostRequest{
		Title:   "Published Right Away",
		Content: "body",
		Status:  models.StatusPublished,
	})
	if err != nil {
		t.Fatalf("ошибка создания поста: %v", err)
	}
	if post.PublishedAt == nil {
		t.Fatal("у опубликованного поста должен быть published_at")
	}
}

func TestCreatePost_ForbiddenForNonAuthor(t *testing.T) {
	service := NewPostService(newMockPostRepo())

	for _, actor := range []models.Actor{postReader, postAdmin} {
		_, err := service.Create(context.Background(), actor, models.CreatePostRequest{
			Title: "Some Title", Content: "body",
		})
		if kindOf(t, err) != apperr.KindForbidden {
			t.Fatalf("роль %s: ожидался 403, получено: %v", actor.Role, err)
		}
	}
}

func TestCreatePost_SlugConflict(t *testing.T) {
	repo := newMockPostRepo()
	repo.posts["my-post"] = &models.Post{ID: 1, Slug: "my-post"}
	service := NewPostService(repo)

	_, err := service.Create(context.Background(), postAuthor, models.CreatePostRequest{
		Title: "My Post", Content: "body",
	})
	if kindOf(t, err) != apperr.KindConflict {
		t.Fatalf("ожидался конфликт слага, получено: %v", err)
	}
}

func TestCreatePost_SanitizesContent(t *testing.T) {
	repo := newMockPostRepo()
	service := NewPostService(repo)

	post, err := service.Create(context.Background(), postAuthor, models.CreatePostRequest{
		Title:   "Script Test",
		Content: `<p>ok</p><script>alert("xss")</script>`,
	})
	if err != nil {
		t.Fatalf("ошибка создания поста: %v", err)
	}
	if strings.Contains(post.Content, "<script>") {
		t.Errorf("контент не просанитизирован: %q", post.Content)
	}
}

func TestGetBySlug(t *testing.T) {
	repo := newMockPostRepo()
	repo.posts["live-post"] = &models.Post{ID: 1, Slug: "live-post", Status: models.StatusPublished}
	repo.posts["draft-post"] = &models.Post{ID: 2, Slug: "draft-post", Status: models.StatusDraft}
	service := NewPostService(repo)

	if _, err := service.GetBySlug(context.Background(), "live-post"); err != nil {
		t.Fatalf("опубликованный пост должен читаться: %v", err)
	}

	// Черновик неотличим от отсутствующего
	_, err := service.GetBySlug(context.Background(), "draft-post")
	if kindOf(t, err) != apperr.KindNotFound {
		t.Fatalf("черновик должен маскироваться под 404, получено: %v", err)
	}

	_, err = service.GetBySlug(context.Background(), "missing")
	if kindOf(t, err) != apperr.KindNotFound {
		t.Fatalf("ожидался 404, получено: %v", err)
	}

	_, err = service.GetBySlug(context.Background(), "Bad Slug!")
	if kindOf(t, err) != apperr.KindInvalidInput {
		t.Fatalf("ожидался 400 на битом слаге, получено: %v", err)
	}
}

func TestListPublished(t *testing.T) {
	repo := newMockPostRepo()
	for i := 0; i < 15; i++ {
		repo.feed = append(repo.feed, &models.PostWithAuthor{ID: i + 1})
	}
	service := NewPostService(repo)

	posts, err := service.ListPublished(context.Background(), "")
	if err != nil {
		t.Fatalf("ошибка ленты: %v", err)
	}
	if len(posts) != 10 {
		t.Errorf("лента без фильтра отдаёт максимум 10, получено %d", len(posts))
	}
}

func TestListPublished_Empty(t *testing.T) {
	service := NewPostService(newMockPostRepo())

	_, err := service.ListPublished(context.Background(), "")
	if kindOf(t, err) != apperr.KindNotFound {
		t.Fatalf("ожидался 404, получено: %v", err)
	}
	if err.Error() != "Post not found" {
		t.Errorf("неожиданное сообщение: %q", err.Error())
	}

	_, err = service.ListPublished(context.Background(), "ghost")
	if err.Error() != "Author has no post" {
		t.Errorf("неожиданное сообщение фильтра по автору: %q", err.Error())
	}
}

func TestUpdatePost(t *testing.T) {
	repo := newMockPostRepo()
	repo.posts["my-post"] = &models.Post{ID: 1, Slug: "my-post", Title: "Old", Content: "old"}
	repo.owners["my-post"] = &models.PostOwner{ID: 1, Slug: "my-post", AuthorID: postAuthor.ID, AuthorUsername: "author1"}
	service := NewPostService(repo)

	post, err := service.Update(context.Background(), postAuthor, "my-post", models.UpdatePostRequest{
		Title: "New Title", Content: "new body",
	})
	if err != nil {
		t.Fatalf("ошибка обновления: %v", err)
	}
	if post.Title != "New Title" {
		t.Errorf("заголовок не обновлён: %q", post.Title)
	}
}

func TestUpdatePost_NotOwner(t *testing.T) {
	repo := newMockPostRepo()
	repo.posts["their-post"] = &models.Post{ID: 1, Slug: "their-post"}
	repo.owners["their-post"] = &models.PostOwner{ID: 1, Slug: "their-post", AuthorID: 99, AuthorUsername: "author2"}
	service := NewPostService(repo)

	_, err := service.Update(context.Background(), postAuthor, "their-post", models.UpdatePostRequest{
		Title: "Hijack", Content: "body",
	})
	if kindOf(t, err) != apperr.KindForbidden {
		t.Fatalf("чужой пост: ожидался 403, получено: %v", err)
	}
}

func TestUpdatePost_NonAuthorRole(t *testing.T) {
	service := NewPostService(newMockPostRepo())

	_, err := service.Update(context.Background(), postReader, "any-post", models.UpdatePostRequest{
		Title: "Some", Content: "body",
	})
	if kindOf(t, err) != apperr.KindForbidden {
		t.Fatalf("ожидался 403, получено: %v", err)
	}
	if err.Error() != "Permission denied" {
		t.Errorf("неожиданное сообщение: %q", err.Error())
	}
}

func TestDeletePost(t *testing.T) {
	repo := newMockPostRepo()
	repo.posts["my-post"] = &models.Post{ID: 1, Slug: "my-post"}
	repo.owners["my-post"] = &models.PostOwner{ID: 1, Slug: "my-post", AuthorID: postAuthor.ID, AuthorUsername: "author1"}
	service := NewPostService(repo)

	byAdmin, err := service.Delete(context.Background(), postAuthor, "my-post")
	if err != nil {
		t.Fatalf("ошибка удаления: %v", err)
	}
	if byAdmin {
		t.Error("владелец удалил свой пост — это не админское удаление")
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "my-post" {
		t.Errorf("удаления в репозитории: %v", repo.deleted)
	}
}

func TestDeletePost_AdminDeletesForeign(t *testing.T) {
	repo := newMockPostRepo()
	repo.posts["their-post"] = &models.Post{ID: 1, Slug: "their-post"}
	repo.owners["their-post"] = &models.PostOwner{ID: 1, Slug: "their-post", AuthorID: postAuthor.ID, AuthorUsername: "author1"}
	service := NewPostService(repo)

	byAdmin, err := service.Delete(context.Background(), postAdmin, "their-post")
	if err != nil {
		t.Fatalf("ошибка удаления: %v", err)
	}
	if !byAdmin {
		t.Error("админ удалил чужой пост — ответ должен это различать")
	}
}

func TestDeletePost_ReaderForbidden(t *testing.T) {
	repo := newMockPostRepo()
	repo.owners["some-post"] = &models.PostOwner{ID: 1, Slug: "some-post", AuthorID: 5, AuthorUsername: "author5"}
	service := NewPostService(repo)

	_, err := service.Delete(context.Background(), postReader, "some-post")
	if kindOf(t, err) != apperr.KindForbidden {
		t.Fatalf("ожидался 403, получено: %v", err)
	}
}

func TestSetPublish(t *testing.T) {
	repo := newMockPostRepo()
	repo.posts["my-post"] = &models.Post{ID: 1, Slug: "my-post", Status: models.StatusDraft}
	repo.owners["my-post"] = &models.PostOwner{ID: 1, Slug: "my-post", AuthorID: postAuthor.ID, AuthorUsername: "author1"}
	service := NewPostService(repo)

	post, err := service.SetPublish(context.Background(), postAuthor, "my-post", true)
	if err != nil {
		t.Fatalf("ошибка публикации: %v", err)
	}
	if post.Status != models.StatusPublished {
		t.Errorf("статус после публикации: %q", post.Status)
	}

	_, err = service.SetPublish(context.Background(), postAdmin, "my-post", false)
	if kindOf(t, err) != apperr.KindForbidden {
		t.Fatalf("публикация доступна только владельцу, получено: %v", err)
	}
}
