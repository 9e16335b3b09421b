// internal/app/features/features/params.go
package features

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/auth"
)

// featureID parses the {id} URL parameter. A malformed ID is reported
// the same way as a missing feature.
func featureID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperr.NotFound("Feature not found")
	}
	return id, nil
}

// caller returns the signed-in user and their parsed ObjectID. Routes
// behind RequireSignedIn always have one; the error covers a corrupted
// context only.
func caller(r *http.Request) (*auth.CurrentUser, primitive.ObjectID, error) {
	u, ok := auth.UserFromRequest(r)
	if !ok {
		return nil, primitive.NilObjectID, apperr.Unauthorized("Authentication required")
	}
	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return nil, primitive.NilObjectID, apperr.Unauthorized("Authentication required")
	}
	return u, oid, nil
}