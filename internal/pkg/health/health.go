package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker reports the health of a single dependency
type Checker interface {
	Name() string
	CheckHealth(ctx context.Context) error
}

// CheckFunc adapts a function to the Checker interface
type CheckFunc struct {
	CheckerName string
	Fn          func(ctx context.Context) error
}

func (c CheckFunc) Name() string { return c.CheckerName }

func (c CheckFunc) CheckHealth(ctx context.Context) error {
	if c.Fn == nil {
		return nil
	}
	return c.Fn(ctx)
}

// RegisterHealthEndpoints registers liveness and readiness probes
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers ...Checker) {
	healthGroup := e.Group("/health")

	healthGroup.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	healthGroup.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": serviceName,
		})
	})

	healthGroup.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		checks := make(map[string]string, len(checkers))
		healthy := true
		for _, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				checks[checker.Name()] = err.Error()
				healthy = false
			} else {
				checks[checker.Name()] = "ok"
			}
		}

		if !healthy {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status":  "not ready",
				"service": serviceName,
				"checks":  checks,
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ready",
			"service": serviceName,
			"checks":  checks,
		})
	})
}
