package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPThrottle_PassThroughWithoutRedis(t *testing.T) {
	e := echo.New()
	e.POST("/auth/send-otp", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, OTPThrottleMiddleware(OTPThrottleConfig{}))

	req := httptest.NewRequest(http.MethodPost, "/auth/send-otp", strings.NewReader(`{"phone":"9876543210"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPeekPhone_BodyStaysReadable(t *testing.T) {
	payload := `{"phone":"9876543210"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/send-otp", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	phone, err := peekPhone(c)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", phone)

	// The handler still binds the full body afterwards
	body, err := io.ReadAll(c.Request().Body)
	require.NoError(t, err)
	assert.Equal(t, payload, string(body))
}

func TestPeekPhone_NonJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/send-otp", strings.NewReader("not json"))
	c := echo.New().NewContext(req, httptest.NewRecorder())

	phone, err := peekPhone(c)
	assert.Error(t, err)
	assert.Empty(t, phone)
}
