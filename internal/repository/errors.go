// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// resolvers to distinguish between different failure scenarios. For
// example, ErrEmailExists indicates that a uniqueness constraint fired
// on user creation, while ErrStudyEventNotFound signals that an
// owner-scoped lookup matched no row.
package repository

import "errors"

// ErrEmailExists is returned when a user insert hits the unique index on
// users.email. Resolvers translate this into the domain-specific
// "email already in use" message.
var ErrEmailExists = errors.New("email already exists")

// ErrStudyEventNotFound is returned when a study event does not exist or
// is not owned by the caller. Both cases look identical on purpose so
// callers cannot probe other users' record IDs.
var ErrStudyEventNotFound = errors.New("study event not found")
