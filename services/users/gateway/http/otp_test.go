package gateway_http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankedge/gateway/internal/pkg/apperr"
	"github.com/bankedge/gateway/internal/pkg/models"
)

func newOtpClient(serverURL string) *OtpClient {
	return NewOtpClient(models.OTPConfig{
		BaseURL: serverURL,
		APIKey:  "test-api-key",
		Timeout: 5,
	})
}

func TestRequestCode_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-api-key/SMS/+919876543210/AUTOGEN", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Status":"Success","Details":"session-abc"}`))
	}))
	defer server.Close()

	client := newOtpClient(server.URL)

	sessionID, err := client.RequestCode(context.Background(), "+919876543210")

	require.NoError(t, err)
	assert.Equal(t, "session-abc", sessionID)
}

func TestRequestCode_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"Status":"Error","Details":"Invalid Api Key"}`))
	}))
	defer server.Close()

	client := newOtpClient(server.URL)

	_, err := client.RequestCode(context.Background(), "+919876543210")

	assert.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestRequestCode_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer server.Close()

	client := newOtpClient(server.URL)

	_, err := client.RequestCode(context.Background(), "+919876543210")

	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestRequestCode_Unreachable(t *testing.T) {
	server := httptest.NewServer(nil)
	server.Close()

	client := newOtpClient(server.URL)

	_, err := client.RequestCode(context.Background(), "+919876543210")

	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestVerifyCode_Match(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-api-key/SMS/VERIFY/session-abc/123456", r.URL.Path)
		w.Write([]byte(`{"Status":"Success","Details":"OTP Matched"}`))
	}))
	defer server.Close()

	client := newOtpClient(server.URL)

	valid, err := client.VerifyCode(context.Background(), "session-abc", "123456")

	require.NoError(t, err)
	assert.True(t, valid)
}

func TestVerifyCode_Mismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"Status":"Error","Details":"OTP Mismatch"}`))
	}))
	defer server.Close()

	client := newOtpClient(server.URL)

	// A wrong code is a clean negative result, not an error
	valid, err := client.VerifyCode(context.Background(), "session-abc", "000000")

	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyCode_ProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"Status":"Error","Details":"Service Unavailable"}`))
	}))
	defer server.Close()

	client := newOtpClient(server.URL)

	valid, err := client.VerifyCode(context.Background(), "session-abc", "123456")

	// Provider failures must be distinguishable from a wrong code
	assert.False(t, valid)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}
