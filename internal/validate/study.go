package validate

import "github.com/iliyamo/study-event-tracker/internal/model"

// StudyEventCreate checks creation input: subject, source and resource
// name are required, the source must be one of the known study sources
// and the link must be a URL when present. Numeric and boolean fields
// are typed by the GraphQL layer and need no checks here.
func StudyEventCreate(subject, source, resourceName, link *string) bool {
	return Check(subject, Required()) &&
		Check(source, Required(), OneOf(model.StudySources...)) &&
		Check(resourceName, Required()) &&
		Check(link, URL())
}

// StudyEventUpdate checks update input: the id is mandatory and positive
// while every content field is optional, keeping the same shape
// constraints as creation.
func StudyEventUpdate(id *int32, source, link *string) bool {
	return PositiveID(id) &&
		Check(source, OneOf(model.StudySources...)) &&
		Check(link, URL())
}

// StudyEventID checks delete and get-by-id input: a positive id.
func StudyEventID(id *int32) bool {
	return PositiveID(id)
}
