// internal/app/features/admins/handler.go
package admins

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/sjihq/featureboard/internal/app/store/users"
)

// Handler is the shared dependency container for the user
// administration surface. Every route is admin-gated.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs an admins Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users: userstore.New(db),
		Log:   logger,
	}
}