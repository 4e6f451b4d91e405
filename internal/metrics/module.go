package metrics

import (
	"go.uber.org/fx"

	"github.com/polkiloo/foodbridge/internal/usecase"
)

// Module provides the metrics registry and exposes it as the use case recorder.
var Module = fx.Provide(
	New,
	func(m *Metrics) usecase.Recorder { return m },
)
