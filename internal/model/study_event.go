package model

import "database/sql"

// Study sources accepted for StudyEvent.Source. The column is a plain
// string; the allowed set is enforced by the validation layer before
// any insert or update happens.
const (
	SourceOnlineCourse = "ONLINE_COURSE"
	SourceYoutube      = "YOUTUBE"
	SourcePDFEbook     = "PDF/EBOOK"
	SourceBook         = "BOOK"
)

// StudySources lists every accepted value for StudyEvent.Source.
var StudySources = []string{SourceOnlineCourse, SourceYoutube, SourcePDFEbook, SourceBook}

// StudyEvent mirrors the `study_events` table. Every event belongs to
// exactly one user (UserID); all reads and writes are scoped by that
// owner. Optional columns use database/sql null types.
//
// Fields:
//
//	ID             – primary key identifier.
//	Subject        – what is being studied.
//	Source         – one of StudySources.
//	ResourceName   – course/book/video title.
//	Link           – optional URL to the resource.
//	Image          – optional cover or preview image.
//	EstimatedTime  – optional expected conclusion timestamp (Unix ms).
//	IsConcluded    – whether the resource has been finished. Defaults false.
//	ConclusionDate – optional conclusion timestamp (Unix ms).
//	UserID         – owning user.
//	CreatedAt      – creation time in Unix milliseconds.
//	UpdatedAt      – last update time in Unix milliseconds.
type StudyEvent struct {
	ID             uint64         // study_events.id
	Subject        string         // study_events.subject
	Source         string         // study_events.source
	ResourceName   string         // study_events.resource_name
	Link           sql.NullString // study_events.link (nullable)
	Image          sql.NullString // study_events.image (nullable)
	EstimatedTime  sql.NullInt64  // study_events.estimated_time (nullable)
	IsConcluded    bool           // study_events.is_concluded
	ConclusionDate sql.NullInt64  // study_events.conclusion_date (nullable)
	UserID         uint64         // study_events.user_id
	CreatedAt      int64          // study_events.created_at
	UpdatedAt      int64          // study_events.updated_at
}
