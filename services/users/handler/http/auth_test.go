package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankedge/gateway/internal/pkg/apperr"
	"github.com/bankedge/gateway/internal/pkg/models"
	"github.com/bankedge/gateway/services/users/mocks"
)

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestSendOTP_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)

	mockUC.EXPECT().
		SendOTP(gomock.Any(), "+919876543210").
		Return("session-abc", nil)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/send-otp", `{"phone":"+919876543210"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.OtpSendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "session-abc", resp.SessionID)
}

func TestSendOTP_Handler_MissingPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockAuthUC(ctrl))

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/send-otp", `{}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTP_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.OtpVerifyRequest) (*models.AuthResponse, error) {
			assert.Equal(t, "9876543210", req.Phone)
			assert.Equal(t, "123456", req.OTP)
			assert.Equal(t, "session-abc", req.SessionID)
			return &models.AuthResponse{Token: "jwt-token", UserID: 11, Role: models.RoleCustomer}, nil
		})

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/verify-otp",
		`{"phone":"9876543210","otp":"123456","sessionId":"session-abc"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.VerifyOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jwt-token")
}

func TestVerifyOTP_Handler_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), gomock.Any()).
		Return(nil, apperr.Authentication("Invalid OTP"))

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/verify-otp",
		`{"phone":"9876543210","otp":"000000","sessionId":"session-abc"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.VerifyOTP(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid OTP")
}

func TestLoginAdmin_Handler_SetsSessionCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)

	mockUC.EXPECT().
		LoginAdmin(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{Token: "admin-jwt", UserID: 3, Role: models.RoleAdmin}, nil)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/admin-login",
		`{"username":"admin","password":"s3cret"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.LoginAdmin(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin-jwt")

	cookie := rec.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, "token=admin-jwt")
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, cookie, "SameSite=Strict")
}

func TestLoginAdmin_Handler_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)

	mockUC.EXPECT().
		LoginAdmin(gomock.Any(), gomock.Any()).
		Return(nil, apperr.Authentication("Invalid username or password"))

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/auth/admin-login",
		`{"username":"admin","password":"wrong"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.LoginAdmin(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
}

func TestRefreshToken_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)

	mockUC.EXPECT().
		RefreshToken(gomock.Any(), "old-token").
		Return(&models.AuthResponse{Token: "new-token", UserID: 3, Role: models.RoleAdmin}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer old-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.RefreshToken(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-token")
}

func TestRefreshToken_Handler_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockAuthUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.RefreshToken(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
