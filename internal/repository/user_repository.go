package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/study-event-tracker/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,full_name,email,password_hash,created_at,updated_at"

// Create inserts a user with an already-hashed password and returns the
// stored record. A MySQL duplicate-key error (1062) on the email unique
// index is mapped to ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, fullName, email, passwordHash string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	now := time.Now().UnixMilli()
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (full_name, email, password_hash, created_at, updated_at) VALUES (?,?,?,?,?)",
		fullName, email, passwordHash, now, now)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		ID:           uint64(id),
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Update replaces the profile fields of a user and returns the stored
// record. The password must already be hashed by the caller.
func (r *UserRepo) Update(ctx context.Context, id uint64, fullName, email, passwordHash string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	now := time.Now().UnixMilli()
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET full_name=?, email=?, password_hash=?, updated_at=? WHERE id=?",
		fullName, email, passwordHash, now, id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a user and returns the deleted record's data. The row is
// read first so the caller can echo it back after the delete.
func (r *UserRepo) Delete(ctx context.Context, id uint64) (model.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id); err != nil {
		return model.User{}, err
	}
	return u, nil
}
