package scheduler

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/foodbridge/internal/config"
	"github.com/polkiloo/foodbridge/internal/metrics"
	"github.com/polkiloo/foodbridge/internal/usecase"
)

// Module wires the overdue pickup sweep and binds it to the app lifecycle.
var Module = fx.Options(
	fx.Provide(newOverdueSweep),
	fx.Invoke(registerLifecycle),
)

type sweepParams struct {
	fx.In

	Config    *config.Config
	Donations *usecase.DonationUseCase
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

func newOverdueSweep(p sweepParams) *OverdueSweep {
	return NewOverdueSweep(p.Config.OverdueSchedule, p.Donations, p.Metrics, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, sweep *OverdueSweep) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error { return sweep.Start() },
		OnStop: func(context.Context) error {
			sweep.Stop()
			return nil
		},
	})
}
