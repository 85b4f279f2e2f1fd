package models

// OtpRequest represents a request to send an OTP to a phone number
type OtpRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// OtpSendResponse is returned after the provider accepted a send request.
// SessionID is the provider's correlation handle for the later verify call.
type OtpSendResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// OtpVerifyRequest represents a request to verify an OTP against a session
type OtpVerifyRequest struct {
	Phone     string `json:"phone" validate:"required"`
	OTP       string `json:"otp" validate:"required"`
	SessionID string `json:"sessionId" validate:"required"`
}

// AdminLoginRequest represents an administrator credential login
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

// AuthEvent is published on NATS after a successful authentication flow
type AuthEvent struct {
	EventID  string `json:"event_id"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	NewUser  bool   `json:"new_user,omitempty"`
}
