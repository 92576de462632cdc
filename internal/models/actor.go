package models

// Actor — проверенная личность запроса из claims токена. Передаётся
// в сервисы явным параметром, а не через глобальное состояние.
type Actor struct {
	ID       int
	Email    string
	Username string
	Role     string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsAuthor() bool {
	return a.Role == RoleAuthor
}
