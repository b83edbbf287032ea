package service

import (
	"testing"

	"bloglist/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanDelete(t *testing.T) {
	blog := &models.Blog{ID: 1, UserID: 42}

	t.Run("owner may delete", func(t *testing.T) {
		assert.True(t, CanDelete(&Identity{ID: 42, Username: "owner"}, blog))
	})

	t.Run("non-owner may not delete", func(t *testing.T) {
		assert.False(t, CanDelete(&Identity{ID: 43, Username: "other"}, blog))
	})

	t.Run("missing identity may not delete", func(t *testing.T) {
		assert.False(t, CanDelete(nil, blog))
	})

	t.Run("missing blog yields false", func(t *testing.T) {
		assert.False(t, CanDelete(&Identity{ID: 42}, nil))
	})
}

func TestCanCreate(t *testing.T) {
	assert.True(t, CanCreate(&Identity{ID: 1, Username: "alice"}))
	assert.False(t, CanCreate(nil))
}

func TestCanRead(t *testing.T) {
	assert.True(t, CanRead())
}
