package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/foodbridge/internal/metrics"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	Setup,
	func(m *metrics.Metrics) Observability { return m },
)
