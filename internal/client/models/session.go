package models

// Session is an authenticated identity together with its token pair.
type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
}

// Valid reports whether s identifies a user.
func (s Session) Valid() bool {
	return s.UserID != ""
}
