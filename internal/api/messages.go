package api

import "time"

type RegisterRequest struct {
	Email    string `json:"email"`
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type GetSaltRequest struct {
	Email string `json:"email"`
}

type GetSaltResponse struct {
	Salt []byte `json:"salt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Verifier []byte `json:"verifier"`
}

// TokenResponse is returned by Login and RefreshToken.
type TokenResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type PingResponse struct {
	Status string `json:"status"`
}

// InsertEntryRequest creates one immutable journal entry. OwnerID must match
// the user in the access token.
type InsertEntryRequest struct {
	OwnerID string `json:"owner_id"`
	Content string `json:"content"`
	Emotion string `json:"emotion"`
}

type InsertEntryResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// ListEntriesRequest asks for the newest Limit entries of OwnerID.
type ListEntriesRequest struct {
	OwnerID string `json:"owner_id"`
	Limit   int32  `json:"limit"`
}

type ListEntriesResponse struct {
	Entries []Entry `json:"entries"`
}

type Entry struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Content   string    `json:"content"`
	Emotion   string    `json:"emotion"`
	CreatedAt time.Time `json:"created_at"`
}

type Reminder struct {
	Enabled bool  `json:"enabled"`
	Hour    int32 `json:"hour"`
	Minute  int32 `json:"minute"`
}

// Profile is the settings profile of the signed-in user.
type Profile struct {
	Name      string    `json:"name"`
	Pronouns  string    `json:"pronouns"`
	Color     string    `json:"color"`
	Emotions  []string  `json:"emotions"`
	Reminder  Reminder  `json:"reminder"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GetProfileRequest struct {
	OwnerID string `json:"owner_id"`
}

// UpsertProfileRequest replaces the whole profile of OwnerID.
type UpsertProfileRequest struct {
	OwnerID string  `json:"owner_id"`
	Profile Profile `json:"profile"`
}

type ProfileResponse struct {
	Profile Profile `json:"profile"`
}
