package gateway_http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/bankedge/gateway/internal/pkg/apperr"
	httpclient "github.com/bankedge/gateway/internal/pkg/http"
	"github.com/bankedge/gateway/internal/pkg/logger"
	"github.com/bankedge/gateway/internal/pkg/models"
)

const otpStatusSuccess = "Success"

// otpProviderResponse is the provider's envelope. Details carries the
// session id on send and a match description on verify.
type otpProviderResponse struct {
	Status  string `json:"Status"`
	Details string `json:"Details"`
}

// OtpClient calls the external SMS OTP provider. The provider owns session
// lifetime and single-use semantics; this client holds no state.
type OtpClient struct {
	client *httpclient.Client
	apiKey string
}

// NewOtpClient creates a new OTP provider client
func NewOtpClient(cfg models.OTPConfig) *OtpClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	return &OtpClient{
		client: httpclient.NewClient(strings.TrimRight(cfg.BaseURL, "/"), timeout),
		apiKey: cfg.APIKey,
	}
}

// RequestCode asks the provider to send an OTP SMS to the phone number.
// A real SMS goes out on success, so callers must not retry blindly.
func (g *OtpClient) RequestCode(ctx context.Context, phone string) (string, error) {
	url := fmt.Sprintf("%s/%s/SMS/%s/AUTOGEN", g.client.BaseURL, g.apiKey, phone)

	body, statusCode, err := g.get(ctx, url)
	if err != nil {
		return "", apperr.Upstream("OTP provider unreachable", err)
	}

	var resp otpProviderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", apperr.Upstream("OTP provider returned malformed response", err)
	}

	if statusCode < 200 || statusCode >= 300 || resp.Status != otpStatusSuccess {
		return "", apperr.Upstream("Failed to send OTP",
			fmt.Errorf("provider status %d: %s", statusCode, resp.Status))
	}

	logger.Info("OTP sent",
		logger.String("phone", phone),
		logger.String("session_id", resp.Details))

	return resp.Details, nil
}

// VerifyCode checks the entered code against the provider session. A wrong
// code returns (false, nil); only provider failures return an error.
func (g *OtpClient) VerifyCode(ctx context.Context, sessionID, code string) (bool, error) {
	url := fmt.Sprintf("%s/%s/SMS/VERIFY/%s/%s", g.client.BaseURL, g.apiKey, sessionID, code)

	body, statusCode, err := g.get(ctx, url)
	if err != nil {
		return false, apperr.Upstream("OTP provider unreachable", err)
	}

	var resp otpProviderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, apperr.Upstream("OTP provider returned malformed response", err)
	}

	// The provider answers a mismatch with a parseable error envelope.
	// Anything beyond that is a provider failure, not a wrong code.
	if statusCode >= 500 {
		return false, apperr.Upstream("OTP provider error",
			fmt.Errorf("provider status %d: %s", statusCode, resp.Status))
	}

	return strings.EqualFold(resp.Status, otpStatusSuccess), nil
}

func (g *OtpClient) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, resp.StatusCode, nil
}
