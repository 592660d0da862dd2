package helpnet

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// метрики

var (
	pairingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "helpnet_pairings_created_total",
			Help: "Кол-во созданных пар помощи",
		},
	)

	sweepRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "helpnet_sweep_runs_total",
			Help: "Кол-во запусков массового прохода",
		},
	)

	unknownLevelTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "helpnet_unknown_level_total",
			Help: "Кол-во фолбэков на Star из-за неизвестного уровня",
		},
	)
)
