// Package policy — чистые функции авторизации. Никаких запросов к базе:
// поля владения сюда приходят свежепрочитанными из репозиториев,
// чтобы решение никогда не принималось по устаревшим данным.
package policy

import "blogcore/internal/models"

// CanCreatePost — посты создают только авторы.
func CanCreatePost(actor models.Actor) bool {
	return actor.Role == models.RoleAuthor
}

// CanUpdatePost — редактирует автор-владелец; сверка по username,
// как в проверке владения при обновлении.
func CanUpdatePost(actor models.Actor, authorUsername string) bool {
	return actor.Role == models.RoleAuthor && actor.Username == authorUsername
}

// CanDeletePost — админ, либо автор-владелец (сверка по id).
func CanDeletePost(actor models.Actor, authorID int) bool {
	if actor.Role == models.RoleAdmin {
		return true
	}
	return actor.Role == models.RoleAuthor && actor.ID == authorID
}

// CanCreateComment — любой аутентифицированный пользователь,
// но только под опубликованным постом.
func CanCreateComment(actor models.Actor, postStatus string) bool {
	return actor.ID != 0 && postStatus == models.StatusPublished
}

// CanDeleteComment — админ, либо владелец комментария, независимо от роли.
func CanDeleteComment(actor models.Actor, ownerID int) bool {
	return actor.Role == models.RoleAdmin || actor.ID == ownerID
}

// CanListUsers — справочник пользователей доступен только админу.
func CanListUsers(actor models.Actor) bool {
	return actor.Role == models.RoleAdmin
}
