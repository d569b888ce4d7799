package inbound

type sendOTPRequest struct {
	Email string `json:"email"`
}

type sendOTPResponse struct {
	Email     string `json:"email"`
	ExpiresIn int64  `json:"expires_in"`
}

// Message implements the router success message hook.
func (sendOTPResponse) Message() string {
	return "Verification code sent"
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type verifyOTPResponse struct {
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// Message implements the router success message hook.
func (verifyOTPResponse) Message() string {
	return "Email verified successfully"
}
