package model

// Scope carries the authenticated identity of the current request.
// Populated by the auth middleware from the access token claims.
type Scope struct {
	UserID   uint
	Username string
}
