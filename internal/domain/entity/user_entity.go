package entity

import "time"

// User is the credential record. PasswordHash holds a bcrypt digest and is
// never surfaced outside the authentication path.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the authenticated identity attached to a request. It is
// derived from a User at login or sign-up and is the serialized session
// payload; the password hash never enters a session.
type Principal struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Principal returns the request-facing identity for the user.
func (u *User) Principal() *Principal {
	return &Principal{ID: u.ID, Username: u.Username}
}
