package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/foodbridge/internal/adapter/mail"
	"github.com/polkiloo/foodbridge/internal/app"
	"github.com/polkiloo/foodbridge/internal/config"
	"github.com/polkiloo/foodbridge/internal/logger"
	"github.com/polkiloo/foodbridge/internal/metrics"
	"github.com/polkiloo/foodbridge/internal/notify"
	"github.com/polkiloo/foodbridge/internal/pkg/auth"
	"github.com/polkiloo/foodbridge/internal/scheduler"
	"github.com/polkiloo/foodbridge/internal/server/http/router"
	"github.com/polkiloo/foodbridge/internal/storage"
	"github.com/polkiloo/foodbridge/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		storage.Module,
		mail.Module,
		notify.Module,
		usecase.Module,
		scheduler.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
