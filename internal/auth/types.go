package auth

// LoginInput is the credential pair submitted at login.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
