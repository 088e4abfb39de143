package models

// LoginResult is the success body of a login.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
}
