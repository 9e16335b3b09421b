// internal/app/features/features/handler.go
package features

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	featurestore "github.com/sjihq/featureboard/internal/app/store/features"
	userstore "github.com/sjihq/featureboard/internal/app/store/users"
)

// Handler is the shared dependency container for the feature-request
// surface. The various handlers (create, listing, engagement, comment
// CRUD) all share the same stores and logger.
type Handler struct {
	Features *featurestore.Store
	Users    *userstore.Store
	Log      *zap.Logger
}

// NewHandler constructs a features Handler. It is typically called from
// the bootstrap BuildHandler function, where the application's DB and
// logger are already initialized.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Features: featurestore.New(db),
		Users:    userstore.New(db),
		Log:      logger,
	}
}