// Package observability provides application metrics and tracing.
package observability

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// SignupsTotal counts successful account creations.
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warbler_signups_total",
		Help: "Total number of successful signups",
	})

	// MessagesCreated counts messages successfully persisted.
	MessagesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warbler_messages_created_total",
		Help: "Total number of messages created",
	})

	// LikesToggled counts like toggles by resulting state.
	LikesToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_likes_toggled_total",
		Help: "Total number of like toggles by resulting state",
	}, []string{"state"})

	// FollowsToggled counts follow mutations by direction.
	FollowsToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_follows_toggled_total",
		Help: "Total number of follow/unfollow mutations",
	}, []string{"action"})
)

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// InitMetrics builds the Prometheus HTTP middleware for the given service
// name. The middleware registers collectors in the default registry, so a
// single instance is shared by every caller.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New(serviceName)
	})
	return prom
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
