package models

import "time"

// User is an account of the sync server. The password never reaches the
// server: it stores the client-generated salt and the SHA-256 verifier of the
// derived key.
type User struct {
	ID        string
	Email     string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
