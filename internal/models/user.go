package models

// User represents a registered user. Senha holds the bcrypt hash of the
// password, never the plaintext, and is never serialized.
type User struct {
	ID    int64  `db:"id" json:"id"`
	Nome  string `db:"nome" json:"nome"`
	Email string `db:"email" json:"email"`
	Senha string `db:"senha" json:"-"`
}
