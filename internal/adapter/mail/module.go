package mail

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/foodbridge/internal/config"
)

// Module exposes mail rendering and delivery to the fx graph.
var Module = fx.Provide(
	NewRenderer,
	newSender,
)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) Sender {
	smtpCfg := p.Config.SMTP
	if smtpCfg.Host == "" {
		p.Logger.Warn("SMTP_HOST not set, notifications will only be logged")
		return NewLogSender(p.Logger)
	}
	return NewSMTPSender(smtpCfg.Host, smtpCfg.Port, smtpCfg.User, smtpCfg.Password, smtpCfg.From)
}
