package monitor

import (
	"time"

	"snake-minigame/game/types"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks simulation activity. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	Steps        prometheus.Counter
	FoodEaten    *prometheus.CounterVec
	GameOvers    prometheus.Counter
	Restarts     prometheus.Counter
	SnakeLength  prometheus.Gauge
	TickInterval prometheus.Gauge
}

func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Number of simulation steps executed",
		}),
		FoodEaten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "food_eaten_total",
			Help:      "Number of foods eaten, by kind",
		}, []string{"kind"}),
		GameOvers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_overs_total",
			Help:      "Number of sessions ended by self-collision",
		}),
		Restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restarts_total",
			Help:      "Number of restarts from the game over screen",
		}),
		SnakeLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snake_length",
			Help:      "Current number of segments",
		}),
		TickInterval: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tick_interval_seconds",
			Help:      "Current interval between steps",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.Steps,
			m.FoodEaten,
			m.GameOvers,
			m.Restarts,
			m.SnakeLength,
			m.TickInterval,
		)
	}

	return m
}

func (m *Metrics) ObserveStep() {
	if m == nil {
		return
	}
	m.Steps.Inc()
}

func (m *Metrics) ObserveFoodEaten(kind types.FoodKind) {
	if m == nil {
		return
	}
	m.FoodEaten.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) ObserveGameOver() {
	if m == nil {
		return
	}
	m.GameOvers.Inc()
}

func (m *Metrics) ObserveRestart() {
	if m == nil {
		return
	}
	m.Restarts.Inc()
}

func (m *Metrics) SetSnakeLength(n int) {
	if m == nil {
		return
	}
	m.SnakeLength.Set(float64(n))
}

func (m *Metrics) SetTickInterval(d time.Duration) {
	if m == nil {
		return
	}
	m.TickInterval.Set(d.Seconds())
}
