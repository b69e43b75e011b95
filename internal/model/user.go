package model

// User represents an application user record as stored in the
// `users` table. Timestamps are kept as Unix-millisecond numbers
// because that is how the API serializes them; the database columns
// are BIGINTs for the same reason.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	FullName     – display name, at least 3 characters.
//	Email        – unique email address.
//	PasswordHash – bcrypt hashed password. Never leaves the server.
//	CreatedAt    – creation time in Unix milliseconds.
//	UpdatedAt    – last update time in Unix milliseconds.
type User struct {
	ID           uint64 // users.id
	FullName     string // users.full_name
	Email        string // users.email
	PasswordHash string // users.password_hash
	CreatedAt    int64  // users.created_at
	UpdatedAt    int64  // users.updated_at
}
