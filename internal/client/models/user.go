package models

// User is the identity derived from the access token payload. It exists for
// display purposes only; authorization decisions stay server-side.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenResponse is returned by both /auth/login and /auth/register.
// Role is only set by the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role,omitempty"`
}
