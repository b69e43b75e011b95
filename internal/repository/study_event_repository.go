package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/study-event-tracker/internal/model"
)

// StudyEventRepo manages persistence for study events. Every read and
// write that targets a single row is scoped by both the row id and the
// owning user so callers can never touch another user's events.
type StudyEventRepo struct{ DB *sql.DB }

func NewStudyEventRepo(db *sql.DB) *StudyEventRepo { return &StudyEventRepo{DB: db} }

const studyEventColumns = "id,subject,source,resource_name,link,image,estimated_time,is_concluded,conclusion_date,user_id,created_at,updated_at"

func scanStudyEvent(row *sql.Row) (model.StudyEvent, error) {
	var ev model.StudyEvent
	err := row.Scan(&ev.ID, &ev.Subject, &ev.Source, &ev.ResourceName, &ev.Link, &ev.Image,
		&ev.EstimatedTime, &ev.IsConcluded, &ev.ConclusionDate, &ev.UserID, &ev.CreatedAt, &ev.UpdatedAt)
	return ev, err
}

// Create inserts a study event bound to ev.UserID and fills in the
// generated id and timestamps.
func (r *StudyEventRepo) Create(ctx context.Context, ev *model.StudyEvent) error {
	now := time.Now().UnixMilli()
	ev.CreatedAt, ev.UpdatedAt = now, now
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO study_events
		 (subject, source, resource_name, link, image, estimated_time, is_concluded, conclusion_date, user_id, created_at, updated_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		ev.Subject, ev.Source, ev.ResourceName, ev.Link, ev.Image,
		ev.EstimatedTime, ev.IsConcluded, ev.ConclusionDate, ev.UserID, ev.CreatedAt, ev.UpdatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	ev.ID = uint64(id)
	return nil
}

// GetByIDAndOwner fetches a single study event scoped by id and owner.
// A row owned by someone else yields ErrStudyEventNotFound, same as a
// missing row.
func (r *StudyEventRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (model.StudyEvent, error) {
	ev, err := scanStudyEvent(r.DB.QueryRowContext(ctx,
		"SELECT "+studyEventColumns+" FROM study_events WHERE id=? AND user_id=? LIMIT 1",
		id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.StudyEvent{}, ErrStudyEventNotFound
	}
	return ev, err
}

// ListByOwner returns every study event belonging to a user.
func (r *StudyEventRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.StudyEvent, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+studyEventColumns+" FROM study_events WHERE user_id=? ORDER BY id",
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.StudyEvent
	for rows.Next() {
		var ev model.StudyEvent
		if err := rows.Scan(&ev.ID, &ev.Subject, &ev.Source, &ev.ResourceName, &ev.Link, &ev.Image,
			&ev.EstimatedTime, &ev.IsConcluded, &ev.ConclusionDate, &ev.UserID, &ev.CreatedAt, &ev.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Update writes the content fields of an event. The WHERE clause carries
// both id and owner, so an event owned by someone else is never touched.
func (r *StudyEventRepo) Update(ctx context.Context, ev *model.StudyEvent) error {
	ev.UpdatedAt = time.Now().UnixMilli()
	_, err := r.DB.ExecContext(ctx,
		`UPDATE study_events
		 SET subject=?, source=?, resource_name=?, link=?, image=?, estimated_time=?, is_concluded=?, conclusion_date=?, updated_at=?
		 WHERE id=? AND user_id=?`,
		ev.Subject, ev.Source, ev.ResourceName, ev.Link, ev.Image,
		ev.EstimatedTime, ev.IsConcluded, ev.ConclusionDate, ev.UpdatedAt, ev.ID, ev.UserID)
	// RowsAffected is not checked: MySQL reports zero affected rows when
	// the new values equal the current ones, which must not be confused
	// with a missing row. Existence is verified by the caller beforehand.
	return err
}

// Delete removes an event scoped by id and owner and returns the deleted
// record's data.
func (r *StudyEventRepo) Delete(ctx context.Context, id, ownerID uint64) (model.StudyEvent, error) {
	ev, err := r.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return model.StudyEvent{}, err
	}
	if _, err := r.DB.ExecContext(ctx,
		"DELETE FROM study_events WHERE id=? AND user_id=?", id, ownerID); err != nil {
		return model.StudyEvent{}, err
	}
	return ev, nil
}
