// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	userstore "github.com/sjihq/featureboard/internal/app/store/users"
	"github.com/sjihq/featureboard/internal/app/system/normalize"
	"github.com/sjihq/featureboard/internal/domain/models"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// The board needs a first admin, so when superadmin_email is configured
// that account is promoted (or created passwordless, sign-in via
// Google) here.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SuperAdminEmail == "" {
		return nil
	}
	return ensureSuperAdmin(ctx, deps, normalize.Email(appCfg.SuperAdminEmail), logger)
}

func ensureSuperAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	users := userstore.New(deps.MongoDatabase)

	u, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if u.IsAdmin() {
			return nil
		}
		if _, err := users.SetRole(ctx, u.ID, models.RoleAdmin); err != nil {
			return err
		}
		logger.Info("promoted superadmin", zap.String("email", email))
		return nil

	case errors.Is(err, userstore.ErrNotFound):
		created, err := users.Create(ctx, models.User{
			Name:  "Admin",
			Email: email,
			Role:  models.RoleAdmin,
		})
		if err != nil {
			return err
		}
		logger.Info("created superadmin", zap.String("user_id", created.ID.Hex()))
		return nil

	default:
		return err
	}
}