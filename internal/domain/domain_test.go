package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DevGleb/RealWorldApp/internal/domain"
)

func TestCanMutate(t *testing.T) {
	tests := []struct {
		name     string
		actorID  string
		authorID string
		want     bool
	}{
		{"owner may mutate", "user-1", "user-1", true},
		{"non-owner may not mutate", "user-2", "user-1", false},
		{"empty actor may not mutate", "", "user-1", false},
		{"empty actor and empty author", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanMutate(tt.actorID, tt.authorID))
		})
	}
}

func TestNewProfileView(t *testing.T) {
	t.Run("maps user fields", func(t *testing.T) {
		u := &domain.User{Username: "gleb", Bio: "bio", Image: "img.png"}

		p := domain.NewProfileView(u, true)

		assert.Equal(t, "gleb", p.Username)
		assert.Equal(t, "bio", p.Bio)
		assert.Equal(t, "img.png", p.Image)
		assert.True(t, p.Following)
	})

	t.Run("nil user yields empty profile", func(t *testing.T) {
		p := domain.NewProfileView(nil, false)

		assert.Equal(t, "", p.Username)
		assert.Equal(t, "", p.Bio)
		assert.Equal(t, "", p.Image)
		assert.False(t, p.Following)
	})
}
