package entity

import "time"

// User is the canonical account shape, whether it came from the upstream
// validateUser endpoint or the local fallback store.
type User struct {
	Id    string
	Name  string
	Email string
	Phone string
}

// FallbackUser is a locally registered account used when the upstream API is
// unavailable and demo mode is enabled. Unlike the upstream storefront's
// local store, passwords are kept as bcrypt hashes.
type FallbackUser struct {
	Id           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}
