package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/foodbridge/internal/adapter/mail"
	"github.com/polkiloo/foodbridge/internal/config"
	"github.com/polkiloo/foodbridge/internal/domain/repository"
	"github.com/polkiloo/foodbridge/internal/metrics"
	"github.com/polkiloo/foodbridge/internal/usecase"
	"github.com/polkiloo/foodbridge/internal/worker"
)

// Module wires the notification worker pool and exposes the use case notifier.
var Module = fx.Options(
	fx.Provide(newDispatcher),
	fx.Provide(newService),
	fx.Provide(func(s *Service) usecase.Notifier { return s }),
)

type dispatcherParams struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

func newDispatcher(p dispatcherParams) *worker.Dispatcher {
	return worker.NewDispatcher(p.Config.NotifyWorkers, p.Config.NotifyQueueSize, p.Config.NotifyTimeout, p.Metrics, p.Logger)
}

type serviceParams struct {
	fx.In

	Users      repository.UserRepository
	Renderer   *mail.Renderer
	Sender     mail.Sender
	Dispatcher *worker.Dispatcher
	Logger     *slog.Logger
}

func newService(p serviceParams) *Service {
	return NewService(p.Users, p.Renderer, p.Sender, p.Dispatcher, p.Logger)
}
