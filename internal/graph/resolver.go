// Package graph implements the GraphQL schema and its resolvers. Every
// user-scoped resolver follows the same sequence: resolve the caller's
// identity, validate the arguments, perform exactly one owner-scoped
// persistence call, then reshape the result.
package graph

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/study-event-tracker/internal/auth"
	"github.com/iliyamo/study-event-tracker/internal/i18n"
	"github.com/iliyamo/study-event-tracker/internal/model"
)

// UserStore is the persistence surface resolvers need for users.
// *repository.UserRepo satisfies it; tests substitute fakes.
type UserStore interface {
	Create(ctx context.Context, fullName, email, passwordHash string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	Update(ctx context.Context, id uint64, fullName, email, passwordHash string) (model.User, error)
	Delete(ctx context.Context, id uint64) (model.User, error)
}

// StudyEventStore is the persistence surface resolvers need for study
// events. *repository.StudyEventRepo satisfies it.
type StudyEventStore interface {
	Create(ctx context.Context, ev *model.StudyEvent) error
	GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (model.StudyEvent, error)
	ListByOwner(ctx context.Context, ownerID uint64) ([]model.StudyEvent, error)
	Update(ctx context.Context, ev *model.StudyEvent) error
	Delete(ctx context.Context, id, ownerID uint64) (model.StudyEvent, error)
}

// RootResolver carries the dependencies shared by every operation: the
// signing secret for login, the message translator and the two stores.
type RootResolver struct {
	secret string
	tr     *i18n.Translator
	users  UserStore
	events StudyEventStore
}

// NewRootResolver wires a root resolver with its collaborators.
func NewRootResolver(secret string, tr *i18n.Translator, users UserStore, events StudyEventStore) *RootResolver {
	return &RootResolver{secret: secret, tr: tr, users: users, events: events}
}

// Hello returns the static greeting.
func (r *RootResolver) Hello() string {
	return "Welcome to Study Event GraphQL, version: 1.0"
}

// identity resolves the authenticated caller or fails with the localized
// forbidden error. No persistence access happens when this fails.
func (r *RootResolver) identity(ctx context.Context) (auth.Identity, error) {
	id, ok := auth.IdentityFrom(ctx)
	if !ok || id.ID == 0 {
		return auth.Identity{}, errors.New(r.tr.Translate(ctx, "user.login.forbidden"))
	}
	return id, nil
}

// UserResolver exposes a user record. The password hash is deliberately
// unreachable: there is no schema field for it.
type UserResolver struct{ u model.User }

func (r *UserResolver) ID() int32            { return int32(r.u.ID) }
func (r *UserResolver) FullName() string     { return r.u.FullName }
func (r *UserResolver) Email() string        { return r.u.Email }
func (r *UserResolver) CreatedAt() Timestamp { return Timestamp(r.u.CreatedAt) }
func (r *UserResolver) UpdatedAt() Timestamp { return Timestamp(r.u.UpdatedAt) }

// StudyEventResolver exposes a study event record, optionally joined
// with its owner. Create, delete and get-by-id attach the owner; update
// and list return bare records.
type StudyEventResolver struct {
	ev    model.StudyEvent
	owner *model.User
}

func (r *StudyEventResolver) ID() int32            { return int32(r.ev.ID) }
func (r *StudyEventResolver) Subject() string      { return r.ev.Subject }
func (r *StudyEventResolver) Source() string       { return r.ev.Source }
func (r *StudyEventResolver) ResourceName() string { return r.ev.ResourceName }
func (r *StudyEventResolver) IsConcluded() bool    { return r.ev.IsConcluded }

func (r *StudyEventResolver) Link() *string  { return nullableString(r.ev.Link) }
func (r *StudyEventResolver) Image() *string { return nullableString(r.ev.Image) }

func (r *StudyEventResolver) EstimatedTime() *Timestamp { return nullableTimestamp(r.ev.EstimatedTime) }
func (r *StudyEventResolver) ConclusionDate() *Timestamp {
	return nullableTimestamp(r.ev.ConclusionDate)
}

func (r *StudyEventResolver) User() *UserResolver {
	if r.owner == nil {
		return nil
	}
	return &UserResolver{u: *r.owner}
}

// StudyEventListResolver is the named wrapper returned by studyEventGetAll.
type StudyEventListResolver struct{ events []model.StudyEvent }

func (r *StudyEventListResolver) UserStudyEvents() []*StudyEventResolver {
	resolvers := make([]*StudyEventResolver, 0, len(r.events))
	for _, ev := range r.events {
		resolvers = append(resolvers, &StudyEventResolver{ev: ev})
	}
	return resolvers
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullableTimestamp(v sql.NullInt64) *Timestamp {
	if !v.Valid {
		return nil
	}
	t := Timestamp(v.Int64)
	return &t
}
