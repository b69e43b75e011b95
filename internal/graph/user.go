package graph

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/study-event-tracker/internal/auth"
	"github.com/iliyamo/study-event-tracker/internal/repository"
	"github.com/iliyamo/study-event-tracker/internal/validate"
)

// UserArgs carries the arguments shared by userCreate and userUpdate.
// Everything is nullable at the schema level; the validation rules decide
// what is actually required per operation.
type UserArgs struct {
	FullName *string
	Email    *string
	Password *string
}

// UserCreate registers a new account. The password is hashed before it
// ever reaches the store; a uniqueness violation on the email column maps
// to the domain-specific "email already in use" message.
func (r *RootResolver) UserCreate(ctx context.Context, args UserArgs) (*UserResolver, error) {
	if !validate.UserCreate(args.FullName, args.Email, args.Password) {
		return nil, errors.New(r.tr.Translate(ctx, "user.create.fail.message"))
	}

	hash, err := auth.HashPassword(*args.Password)
	if err != nil {
		return nil, err
	}

	u, err := r.users.Create(ctx, *args.FullName, *args.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, errors.New(r.tr.Translate(ctx, "user.create.validate.email.in.use"))
		}
		return nil, err
	}
	return &UserResolver{u: u}, nil
}

// UserLogin verifies credentials and returns a signed access token as an
// opaque string. Each failure mode carries its own localized message.
func (r *RootResolver) UserLogin(ctx context.Context, args struct{ Email, Password *string }) (string, error) {
	if !validate.UserLogin(args.Email, args.Password) {
		return "", errors.New(r.tr.Translate(ctx, "user.login.invalid.login.data"))
	}

	u, err := r.users.GetByEmail(ctx, *args.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errors.New(r.tr.Translate(ctx, "user.login.user.not.found"))
		}
		return "", errors.New(r.tr.Translate(ctx, "user.login.fail.to.login"))
	}

	if !auth.VerifyPassword(u.PasswordHash, *args.Password) {
		return "", errors.New(r.tr.Translate(ctx, "user.login.incorrect.password"))
	}

	token, err := auth.NewToken(r.secret, u.ID)
	if err != nil {
		return "", errors.New(r.tr.Translate(ctx, "user.login.fail.to.login"))
	}
	return token, nil
}

// UserUpdate replaces the caller's profile. Partial updates are refused:
// fullName, email and password must all be supplied together. The
// password is re-hashed on every update.
func (r *RootResolver) UserUpdate(ctx context.Context, args UserArgs) (*UserResolver, error) {
	caller, err := r.identity(ctx)
	if err != nil {
		return nil, err
	}

	if !validate.UserUpdate(args.FullName, args.Email, args.Password) {
		return nil, errors.New(r.tr.Translate(ctx, "user.create.fail.message"))
	}
	if args.FullName == nil || args.Email == nil || args.Password == nil {
		return nil, errors.New(r.tr.Translate(ctx, "user.create.fail.message"))
	}

	hash, err := auth.HashPassword(*args.Password)
	if err != nil {
		return nil, err
	}

	u, err := r.users.Update(ctx, caller.ID, *args.FullName, *args.Email, hash)
	if err != nil {
		return nil, err
	}
	return &UserResolver{u: u}, nil
}

// UserDelete removes the caller's own account and echoes the deleted
// record. Only the authenticated identity selects the row; no id
// argument is accepted.
func (r *RootResolver) UserDelete(ctx context.Context) (*UserResolver, error) {
	caller, err := r.identity(ctx)
	if err != nil {
		return nil, err
	}

	u, err := r.users.Delete(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return &UserResolver{u: u}, nil
}
