package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicRoot(t *testing.T) {
	assert.Equal(t, "artifacts/default-app-id/public/data", PublicRoot("default-app-id"))
	assert.Equal(t, "artifacts/my-app/public/data", PublicRoot("my-app"))
}

func TestPrivateUserRoot(t *testing.T) {
	assert.Equal(t, "artifacts/my-app/users/u123", PrivateUserRoot("my-app", "u123"))
}

func TestPostsCollection(t *testing.T) {
	assert.Equal(t, "artifacts/my-app/public/data/courses/c1/posts", PostsCollection("my-app", "c1"))
}

func TestNoAppIDValidation(t *testing.T) {
	// Path-delimiter characters pass through untouched; callers own the
	// consequences.
	assert.Equal(t, "artifacts/a/b/public/data", PublicRoot("a/b"))
}
