// internal/app/features/boardconfig/handler.go
package boardconfig

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	configstore "github.com/sjihq/featureboard/internal/app/store/boardconfig"
)

// Handler serves the board-wide presentation settings: read for
// everyone, update for admins.
type Handler struct {
	Config *configstore.Store
	Log    *zap.Logger
}

// NewHandler constructs a boardconfig Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Config: configstore.New(db),
		Log:    logger,
	}
}