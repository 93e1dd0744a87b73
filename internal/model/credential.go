package model

import "encoding/base64"

// Credential is the authenticated identity of a dashboard session.
// The backend delegates all authentication to HTTP Basic, so the only
// secret the dashboard keeps is the Base64 encoding of
// "username:password".  The plaintext password is discarded as soon
// as the token is derived, and the token is sent unmodified with
// every backend request until logout clears the session.
//
// Fields:
//  Username – login name, kept for display in the page header.
//  Token    – Base64 of "username:password" used in the auth header.
type Credential struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// NewCredential encodes username and password into a Credential.  The
// password itself is not retained.
func NewCredential(username, password string) Credential {
	return Credential{
		Username: username,
		Token:    EncodeBasicToken(username, password),
	}
}

// EncodeBasicToken returns the Base64 encoding of "username:password",
// the value carried after "Basic " in the Authorization header.
func EncodeBasicToken(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}

// AuthHeader returns the full Authorization header value for this
// credential.
func (c Credential) AuthHeader() string {
	return "Basic " + c.Token
}

// Empty reports whether the credential carries no token.  An empty
// credential must never reach the network; callers fail closed.
func (c Credential) Empty() bool {
	return c.Token == ""
}
