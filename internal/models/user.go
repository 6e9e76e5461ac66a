// Package models defines the data shapes persisted by the BiteAI core:
// the registered-user table, the active session, and per-user tracking state.
package models

// User is the public view of an account. It never carries password material
// and is what sessions embed and callers receive.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Age       string `json:"age,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// UserRecord is the durable account record, keyed by email in the
// registered-user table. Immutable once created.
//
// Salt is kept for record-shape compatibility with earlier data; bcrypt
// embeds its own salt in PasswordHash, so the field carries no secret.
type UserRecord struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Salt         string `json:"salt"`
	Name         string `json:"name"`
	Age          string `json:"age,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// Public returns the password-free view of the record.
func (r *UserRecord) Public() User {
	return User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		Age:       r.Age,
		CreatedAt: r.CreatedAt,
	}
}

// Session is the single active session. ExpiresAt is epoch milliseconds;
// a session past it is treated as absent and purged on the next read.
type Session struct {
	User      User   `json:"user"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
