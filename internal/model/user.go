package model

// User is an account that may own notes.
// PasswordHash must never leave the process; wire projections drop it.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"-"`
	NoteIDs      []string `json:"notes"`
}
