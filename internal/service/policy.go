// Package service implements the application's business rules on top of the
// repository layer.
package service

import "bloglist/internal/models"

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	ID       uint
	Username string
}

// CanCreate reports whether the identity may create a blog.
// Any authenticated user may create.
func CanCreate(identity *Identity) bool {
	return identity != nil
}

// CanDelete reports whether the identity may delete the given blog.
// Only the recorded owner may delete; a missing identity or any ID mismatch
// is a hard false.
func CanDelete(identity *Identity, blog *models.Blog) bool {
	if identity == nil || blog == nil {
		return false
	}
	return blog.UserID == identity.ID
}

// CanRead reports whether a blog may be read. Reads are unauthenticated.
func CanRead() bool {
	return true
}
