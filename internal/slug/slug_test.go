package slug_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DevGleb/RealWorldApp/internal/slug"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestGenerate(t *testing.T) {
	t.Run("matches slug pattern with hex suffix", func(t *testing.T) {
		s := slug.Generate("Test")

		assert.Regexp(t, `^test-[a-f0-9]{8}$`, s)
	})

	t.Run("multi word title", func(t *testing.T) {
		s := slug.Generate("How To Train Your Dragon")

		assert.Regexp(t, `^how-to-train-your-dragon-[a-f0-9]{8}$`, s)
		assert.True(t, slugPattern.MatchString(s))
	})

	t.Run("punctuation collapses to hyphens", func(t *testing.T) {
		s := slug.Generate("Hello, World! (Again)")

		assert.Regexp(t, `^hello-world-again-[a-f0-9]{8}$`, s)
	})

	t.Run("same title yields different slugs", func(t *testing.T) {
		a := slug.Generate("Duplicate Title")
		b := slug.Generate("Duplicate Title")

		assert.NotEqual(t, a, b)
	})

	t.Run("title with no usable characters still produces a slug", func(t *testing.T) {
		s := slug.Generate("!!!")

		assert.Regexp(t, `^[a-f0-9]{8}$`, s)
	})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Test", "test"},
		{"spaces", "A B C", "a-b-c"},
		{"leading and trailing junk", "  --Hello--  ", "hello"},
		{"mixed punctuation", "Go 1.21: what's new?", "go-1-21-what-s-new"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Normalize(tt.title))
		})
	}
}
