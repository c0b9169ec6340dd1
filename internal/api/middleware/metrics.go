// Package middleware provides Echo middleware for the emag-catalog HTTP server.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/emag-catalog/internal/metrics"
)

// unmatchedPath labels requests that hit no registered route, so probing
// clients cannot grow the label set without bound.
const unmatchedPath = "unmatched"

var probePaths = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// per route template. Scrapes are not counted; probes only flip their
// up/down gauge.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := routePath(c)
			if path == "/metrics" {
				return next(c)
			}
			if gauge, ok := probePaths[path]; ok {
				err := next(c)
				setUp(gauge, responseStatus(c, err))
				return err
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(responseStatus(c, err))
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

func routePath(c echo.Context) string {
	path := c.Path()
	if path == "" || path == "/*" {
		if _, ok := probePaths[c.Request().URL.Path]; ok {
			return c.Request().URL.Path
		}
		if c.Request().URL.Path == "/metrics" {
			return "/metrics"
		}
		return unmatchedPath
	}
	return path
}

// responseStatus reports the status the client will see. Echo writes the
// response for a returned error after the middleware chain unwinds.
func responseStatus(c echo.Context, err error) int {
	if c.Response().Committed || err == nil {
		return c.Response().Status
	}
	if he, ok := err.(*echo.HTTPError); ok { //nolint:errorlint // echo returns the concrete type
		return he.Code
	}
	return http.StatusInternalServerError
}

func setUp(gauge prometheus.Gauge, status int) {
	if status >= 200 && status < 300 {
		gauge.Set(1)
		return
	}
	gauge.Set(0)
}
