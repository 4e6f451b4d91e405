package auth

import (
	"errors"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/foodbridge/internal/config"
)

// placeholderSecret is the JWT secret config falls back to when none is set.
const placeholderSecret = "change-me-in-production"

var errWeakSecret = errors.New("jwt secret must be set in production")

// Module provides the password hasher and the session token strategy.
var Module = fx.Provide(
	newPasswordHasher,
	newTokenStrategy,
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger `optional:"true"`
}

func newTokenStrategy(p strategyParams) (Strategy, error) {
	secret := p.Config.JWTSecret
	if secret == "" || secret == placeholderSecret {
		if p.Config.Production() {
			return nil, errWeakSecret
		}
		if p.Logger != nil {
			p.Logger.Warn("signing session tokens with the placeholder secret")
		}
		secret = placeholderSecret
	}
	return NewJWTStrategy(secret, Options{TTL: p.Config.TokenTTL}), nil
}
