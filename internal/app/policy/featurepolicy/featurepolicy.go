// internal/app/policy/featurepolicy.go
package featurepolicy

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sjihq/featureboard/internal/domain/models"
)

// The authorization rules here are deliberately uneven, mirroring the
// board's contract: update and hard delete are owner-only, status and
// soft delete are admin-only (the route gate enforces the role, not
// these predicates), and comment deletion is author-only. Comment
// editing carries no ownership check at all.

// CanUpdate reports whether caller may edit the feature's title and
// description. Only the owner may.
func CanUpdate(f models.Feature, callerID primitive.ObjectID) bool {
	return f.CreatedBy == callerID
}

// CanHardDelete reports whether caller may physically remove the
// feature. Only the owner may; admins use the soft-delete path instead.
func CanHardDelete(f models.Feature, callerID primitive.ObjectID) bool {
	return f.CreatedBy == callerID
}

// CanDeleteComment reports whether caller may remove the comment.
// Only the comment's own author may.
func CanDeleteComment(c models.Comment, callerID primitive.ObjectID) bool {
	return c.CommentsBy == callerID
}