package utils

import (
	"regexp"
	"strings"
)

var (
	slugFormatRe  = regexp.MustCompile(`^[a-z0-9-]+$`)
	slugStripRe   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpacesRe  = regexp.MustCompile(`\s+`)
	slugHyphensRe = regexp.MustCompile(`-+`)
)

// GenerateSlug выводит слаг из заголовка: нижний регистр, убрать всё,
// кроме [a-z0-9 -], пробелы в дефисы, повторные дефисы схлопнуть.
// Один и тот же заголовок всегда даёт один и тот же слаг.
func GenerateSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugSpacesRe.ReplaceAllString(slug, "-")
	slug = slugHyphensRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// IsValidSlug — формат слага в URL: только [a-z0-9-], непустой.
func IsValidSlug(slug string) bool {
	return slugFormatRe.MatchString(slug)
}
