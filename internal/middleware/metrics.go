package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts failed Redis commands by command name. Cache and rate
// limit failures degrade silently, so this counter is how they stay visible.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dresscircle_redis_errors_total",
		Help: "Total number of failed Redis commands.",
	},
	[]string{"command"},
)

var (
	promOnce       sync.Once
	promMiddleware *fiberprometheus.FiberPrometheus
)

// InitMetrics returns the shared request metrics middleware. The collector
// registers itself globally, so it is created once per process no matter
// how many servers are constructed.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMiddleware = fiberprometheus.New(serviceName)
	})
	return promMiddleware
}

// MetricsMiddleware returns the request metrics handler for the app.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
