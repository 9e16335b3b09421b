// internal/app/features/users/handler.go
package users

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	userstore "github.com/sjihq/featureboard/internal/app/store/users"
	"github.com/sjihq/featureboard/internal/app/system/auth"
	"github.com/sjihq/featureboard/internal/app/system/ratelimit"
	"github.com/sjihq/featureboard/internal/domain/models"
)

// GoogleConfig carries the OAuth2 client settings for Google sign-in.
// Leave ClientID empty to disable the endpoint.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Handler is the shared dependency container for account routes:
// register, login, Google sign-in, and the current-user view.
type Handler struct {
	Users  *userstore.Store
	Tokens *auth.TokenIssuer
	Limits *ratelimit.LoginLimiter
	Google GoogleConfig
	Log    *zap.Logger
}

// NewHandler constructs a users Handler.
func NewHandler(db *mongo.Database, tokens *auth.TokenIssuer, google GoogleConfig, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Tokens: tokens,
		Limits: ratelimit.NewLoginLimiter(),
		Google: google,
		Log:    logger,
	}
}

// oauth2Config returns the Google OAuth2 configuration.
func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.Google.ClientID,
		ClientSecret: h.Google.ClientSecret,
		RedirectURL:  h.Google.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// googleConfigured reports whether Google sign-in can be served.
func (h *Handler) googleConfigured() bool {
	return h.Google.ClientID != "" && h.Google.ClientSecret != ""
}

// userView is the account projection returned by every auth endpoint.
type userView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL,omitempty"`
	Role     string `json:"role"`
}

func toView(u models.User) userView {
	return userView{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		Email:    u.Email,
		PhotoURL: u.PhotoURL,
		Role:     u.Role,
	}
}