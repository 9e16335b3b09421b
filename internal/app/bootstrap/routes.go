// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminsfeature "github.com/sjihq/featureboard/internal/app/features/admins"
	boardconfigfeature "github.com/sjihq/featureboard/internal/app/features/boardconfig"
	featuresfeature "github.com/sjihq/featureboard/internal/app/features/features"
	healthfeature "github.com/sjihq/featureboard/internal/app/features/health"
	usersfeature "github.com/sjihq/featureboard/internal/app/features/users"
	userstore "github.com/sjihq/featureboard/internal/app/store/users"
	"github.com/sjihq/featureboard/internal/app/system/auth"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. The board is a JSON API: every
// router-level failure mode (unmatched route, wrong verb, panic) is
// answered with the same {message, statusCode} body the handlers use.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier := auth.NewTokenVerifier(appCfg.JWTSecret)
	issuer := auth.NewTokenIssuer(appCfg.JWTSecret, appCfg.JWTExpiry)

	// LoadUser fetches fresh account data per request, so role changes
	// and soft deletion take effect immediately.
	mw := auth.NewMiddleware(verifier, userstore.NewFetcher(deps.MongoDatabase), logger)

	r := chi.NewRouter()
	r.Use(httpjson.Recoverer(logger))
	r.Use(mw.LoadUser)
	r.NotFound(httpjson.NotFoundHandler())
	r.MethodNotAllowed(httpjson.MethodNotAllowedHandler())

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Core: the feature-request board
	featuresHandler := featuresfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/v1/features", featuresfeature.Routes(featuresHandler))

	// Accounts: register, login, google sign-in, me
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, issuer, usersfeature.GoogleConfig{
		ClientID:     appCfg.GoogleClientID,
		ClientSecret: appCfg.GoogleClientSecret,
		RedirectURL:  appCfg.GoogleRedirectURL,
	}, logger)
	r.Mount("/api/v1/users", usersfeature.Routes(usersHandler))

	// User administration
	adminsHandler := adminsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/v1/admins", adminsfeature.Routes(adminsHandler))

	// Board presentation settings
	boardHandler := boardconfigfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/v1/website", boardconfigfeature.Routes(boardHandler))

	return r, nil
}