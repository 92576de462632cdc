package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"uppercase", "GoLang Rocks", "golang-rocks"},
		{"punctuation stripped", "Hello, World!", "hello-world"},
		{"multiple spaces collapse", "a   b    c", "a-b-c"},
		{"leading and trailing junk", "  ---Hello---  ", "hello"},
		{"digits kept", "Top 10 Posts of 2025", "top-10-posts-of-2025"},
		{"hyphens collapse", "a -- b", "a-b"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.title))
		})
	}
}

func TestGenerateSlug_Deterministic(t *testing.T) {
	first := GenerateSlug("My First Post")
	second := GenerateSlug("My First Post")
	assert.Equal(t, first, second)
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("hello-world"))
	assert.True(t, IsValidSlug("post-123"))

	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("Hello-World"))
	assert.False(t, IsValidSlug("hello world"))
	assert.False(t, IsValidSlug("hello_world"))
	assert.False(t, IsValidSlug("привет"))
}

func TestGenerateSlug_ProducesValidSlug(t *testing.T) {
	for _, title := range []string{"Hello World", "Top 10!", "  A B  ", "Go, Go, Go"} {
		slug := GenerateSlug(title)
		if slug == "" {
			continue
		}
		assert.True(t, IsValidSlug(slug), "slug %q из заголовка %q не прошёл проверку формата", slug, title)
	}
}
