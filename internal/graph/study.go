package graph

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/iliyamo/study-event-tracker/internal/model"
	"github.com/iliyamo/study-event-tracker/internal/repository"
	"github.com/iliyamo/study-event-tracker/internal/validate"
)

// StudyEventCreateArgs carries the content arguments for studyEventCreate.
type StudyEventCreateArgs struct {
	Subject        *string
	Source         *string
	ResourceName   *string
	Link           *string
	Image          *string
	EstimatedTime  *Timestamp
	IsConcluded    *bool
	ConclusionDate *Timestamp
}

// StudyEventUpdateArgs is StudyEventCreateArgs plus the mandatory id of
// the record being updated.
type StudyEventUpdateArgs struct {
	ID             *int32
	Subject        *string
	Source         *string
	ResourceName   *string
	Link           *string
	Image          *string
	EstimatedTime  *Timestamp
	IsConcluded    *bool
	ConclusionDate *Timestamp
}

// StudyEventCreate stores a new study event bound to the caller and
// returns it joined with the owner record.
func (r *RootResolver) StudyEventCreate(ctx context.Context, args StudyEventCreateArgs) (*StudyEventResolver, error) {
	caller, err := r.identity(ctx)
	if err != nil {
		return nil, err
	}

	if !validate.StudyEventCreate(args.Subject, args.Source, args.ResourceName, args.Link) {
		return nil, errors.New(r.tr.Translate(ctx, "study.event.validate.create.invalid.args"))
	}

	owner, err := r.users.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	ev := model.StudyEvent{
		Subject:        *args.Subject,
		Source:         *args.Source,
		ResourceName:   *args.ResourceName,
		Link:           toNullString(args.Link),
		Image:          toNullString(args.Image),
		EstimatedTime:  toNullInt64(args.EstimatedTime),
		IsConcluded:    args.IsConcluded != nil && *args.IsConcluded,
		ConclusionDate: toNullInt64(args.ConclusionDate),
		UserID:         owner.ID,
	}
	if err := r.events.Create(ctx, &ev); err != nil {
		return nil, err
	}
	return &StudyEventResolver{ev: ev, owner: &owner}, nil
}

// StudyEventUpdate applies the supplied fields to one of the caller's
// events. Absent fields keep their stored values; in particular the
// conclusion date is preserved unless the caller sends a value greater
// than -1. The updated record is returned bare, without the owner.
func (r *RootResolver) StudyEventUpdate(ctx context.Context, args StudyEventUpdateArgs) (*StudyEventResolver, error) {
	caller, err := r.identity(ctx)
	if err != nil {
		return nil, err
	}

	if !validate.StudyEventUpdate(args.ID, args.Source, args.Link) {
		return nil, errors.New(r.tr.Translatef(ctx, "study.event.validate.create.invalid.args", idString(args.ID)))
	}

	ev, err := r.events.GetByIDAndOwner(ctx, uint64(*args.ID), caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrStudyEventNotFound) {
			return nil, errors.New(r.tr.Translatef(ctx, "study.event.not.found", idString(args.ID)))
		}
		return nil, err
	}

	if args.Subject != nil {
		ev.Subject = *args.Subject
	}
	if args.Source != nil {
		ev.Source = *args.Source
	}
	if args.ResourceName != nil {
		ev.ResourceName = *args.ResourceName
	}
	if args.Link != nil {
		ev.Link = toNullString(args.Link)
	}
	if args.Image != nil {
		ev.Image = toNullString(args.Image)
	}
	if args.EstimatedTime != nil {
		ev.EstimatedTime = toNullInt64(args.EstimatedTime)
	}
	if args.IsConcluded != nil {
		ev.IsConcluded = *args.IsConcluded
	}
	// The conclusion date keeps its previous value unless the caller sends
	// a number greater than -1.
	if args.ConclusionDate != nil && int64(*args.ConclusionDate) > -1 {
		ev.ConclusionDate = toNullInt64(args.ConclusionDate)
	}

	if err := r.events.Update(ctx, &ev); err != nil {
		return nil, err
	}
	return &StudyEventResolver{ev: ev}, nil
}

// StudyEventDelete removes one of the caller's events and returns the
// deleted record joined with its owner.
func (r *RootResolver) StudyEventDelete(ctx context.Context, args struct{ ID *int32 }) (*StudyEventResolver, error) {
	caller, err := r.identity(ctx)
	if err != nil {
		return nil, err
	}

	if !validate.StudyEventID(args.ID) {
		return nil, errors.New(r.tr.Translate(ctx, "study.event.validate.id.required"))
	}

	ev, err := r.events.Delete(ctx, uint64(*args.ID), caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrStudyEventNotFound) {
			return nil, errors.New(r.tr.Translatef(ctx, "study.event.not.found", idString(args.ID)))
		}
		return nil, err
	}

	owner, err := r.users.GetByID(ctx, caller.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	res := &StudyEventResolver{ev: ev}
	if err == nil {
		res.owner = &owner
	}
	return res, nil
}

// StudyEventGetAll lists every event owned by the caller inside the
// named list wrapper. Records come back bare, per the declared list type.
func (r *RootResolver) StudyEventGetAll(ctx context.Context) (*StudyEventListResolver, error) {
	caller, err := r.identity(ctx)
	if err != nil {
		return nil, err
	}

	events, err := r.events.ListByOwner(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return &StudyEventListResolver{events: events}, nil
}

// StudyEventGetById fetches a single event scoped to the caller and
// returns it joined with the owner record.
func (r *RootResolver) StudyEventGetById(ctx context.Context, args struct{ ID *int32 }) (*StudyEventResolver, error) {
	caller, err := r.identity(ctx)
	if err != nil {
		return nil, err
	}

	if !validate.StudyEventID(args.ID) {
		return nil, errors.New(r.tr.Translate(ctx, "study.event.validate.id.required"))
	}

	ev, err := r.events.GetByIDAndOwner(ctx, uint64(*args.ID), caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrStudyEventNotFound) {
			return nil, errors.New(r.tr.Translatef(ctx, "study.event.not.found", idString(args.ID)))
		}
		return nil, err
	}

	owner, err := r.users.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return &StudyEventResolver{ev: ev, owner: &owner}, nil
}

func idString(id *int32) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(int64(*id), 10)
}

func toNullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func toNullInt64(v *Timestamp) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
