package model

// TokenPair is the access/refresh credential pair issued at login.
// Access tokens are short-lived; refresh tokens last about a day.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
