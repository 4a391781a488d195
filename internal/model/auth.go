package model

// Error codes returned alongside 401 responses so the client can tell
// an expired token apart from a bad one.
const (
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// TokenPair is the login/register response payload.
type TokenPair struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// AuthResponse bundles the issued token with the profile it belongs to.
type AuthResponse struct {
	Profile *Profile  `json:"profile"`
	Tokens  TokenPair `json:"tokens"`
}
