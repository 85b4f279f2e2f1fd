package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/bankedge/gateway/internal/utils"
)

// OTPThrottleConfig contains configuration for the OTP send throttle
type OTPThrottleConfig struct {
	RedisClient *redis.Client
	Limit       int           // maximum send-otp requests per phone
	Period      time.Duration // window for the limit
}

// OTPThrottleMiddleware limits how often an OTP can be requested per phone
// number. Sending an SMS is a non-idempotent external side effect, so the
// throttle runs before the handler. When no Redis client is configured the
// middleware is a pass-through.
func OTPThrottleMiddleware(config OTPThrottleConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.RedisClient == nil {
				return next(c)
			}

			phone, err := peekPhone(c)
			if err != nil || phone == "" {
				// Leave payload validation to the handler
				return next(c)
			}

			key := fmt.Sprintf("otp:send:%s", phone)
			ctx := c.Request().Context()

			count, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				// Redis being down must not block logins
				return next(c)
			}
			if count == 1 {
				config.RedisClient.Expire(ctx, key, config.Period)
			}

			if count > int64(config.Limit) {
				ttl, _ := config.RedisClient.TTL(ctx, key).Result()
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Too many OTP requests")
			}

			return next(c)
		}
	}
}

// peekPhone reads the phone field from the JSON body without consuming it
func peekPhone(c echo.Context) (string, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return "", err
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		Phone string `json:"phone"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", err
	}
	return payload.Phone, nil
}
