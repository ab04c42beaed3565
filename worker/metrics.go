package worker

import (
	"github.com/battlesnakeio/torus/rules"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ticks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "torus",
			Subsystem: "worker",
			Name:      "ticks_total",
			Help:      "Ticks run by the worker.",
		},
	)
	resets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "torus",
			Subsystem: "worker",
			Name:      "resets_total",
			Help:      "Self-collisions that reset the snake.",
		},
	)
	apples = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "torus",
			Subsystem: "worker",
			Name:      "apples_total",
			Help:      "Apples eaten.",
		},
	)
	snakeLength = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "torus",
			Subsystem: "worker",
			Name:      "snake_length",
			Help:      "Target length of the snake after the last tick.",
		},
	)
)

func init() {
	prometheus.MustRegister(ticks, resets, apples, snakeLength)
}

func observe(frame rules.Frame) {
	ticks.Inc()
	if frame.Result == rules.CollidedAndReset {
		resets.Inc()
	}
	if frame.AteApple {
		apples.Inc()
	}
	snakeLength.Set(float64(frame.Length))
}
