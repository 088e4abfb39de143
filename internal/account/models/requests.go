package models

// AddAccountRequest carries validated signup fields.
type AddAccountRequest struct {
	Name     string
	Email    string
	Password string // plaintext
}

// AuthenticationRequest carries validated login fields.
type AuthenticationRequest struct {
	Email    string
	Password string // plaintext
}
