// Package models defines the data records persisted by the emgtrack store.
package models

// User is one registered account as persisted in the users collection.
// PasswordHash never leaves the store/facade boundary; callers get a
// PublicUser instead.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}

// PublicUser is the redacted view of a User returned to boundary code.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the digest-free view of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}
