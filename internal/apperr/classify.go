package apperr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Классификация ошибок хранилища. Коды PostgreSQL переводятся в доменные
// ошибки с фиксированными статусами; гонка check-then-insert по уникальному
// слагу приходит сюда как 23505 и становится Conflict, а не 500.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgInvalidTextRepr     = "22P02"
	pgCheckViolation      = "23514"
	pgUndefinedColumn     = "42703"
	pgUndefinedTable      = "42P01"
)

var keyDetailRe = regexp.MustCompile(`Key \((.*?)\)=`)

// Classify переводит любую ошибку запроса в *Error. Порядок фиксированный:
// доменные ошибки проходят как есть, затем ошибки хранилища по коду,
// остальное — Internal (в prod сообщение маскируется на уровне helpers).
func Classify(err error, dev bool) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound("")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPg(pgErr, dev)
	}

	if dev {
		return Internal(err)
	}
	return &Error{Kind: KindInternal, Message: "Something went wrong. Please try again later.", cause: err}
}

func classifyPg(pgErr *pgconn.PgError, dev bool) *Error {
	switch pgErr.Code {
	case pgUniqueViolation:
		// Detail вида: Key (email)=(test@example.com) already exists.
		field := "field"
		if m := keyDetailRe.FindStringSubmatch(pgErr.Detail); m != nil {
			field = m[1]
		}
		return Conflict(fmt.Sprintf("%s already exists", capitalize(field)))

	case pgForeignKeyViolation:
		field := "resource"
		if m := keyDetailRe.FindStringSubmatch(pgErr.Detail); m != nil {
			field = m[1]
		}
		return InvalidInput(fmt.Sprintf("Referenced %s does not exist", field))

	case pgNotNullViolation:
		column := pgErr.ColumnName
		if column == "" {
			column = "field"
		}
		return InvalidInput(fmt.Sprintf("%s is required", capitalize(column)))

	case pgInvalidTextRepr:
		return InvalidInput("Invalid data format. Please check your input.")

	case pgCheckViolation:
		constraint := pgErr.ConstraintName
		if constraint == "" {
			constraint = "value"
		}
		return InvalidInput(fmt.Sprintf("Invalid value for %s", constraint))

	case pgUndefinedColumn:
		return InvalidInput("Invalid field in query")

	case pgUndefinedTable:
		return &Error{Kind: KindInternal, Message: "Database configuration error", cause: pgErr}

	default:
		if dev {
			return &Error{Kind: KindInternal, Message: fmt.Sprintf("Database error: %s", pgErr.Message), cause: pgErr}
		}
		return &Error{Kind: KindInternal, Message: "Database error occurred", cause: pgErr}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
