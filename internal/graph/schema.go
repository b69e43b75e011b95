package graph

import graphql "github.com/graph-gophers/graphql-go"

// Schema is the GraphQL schema in SDL form. Every operation lives under
// the Query type, mirroring how the API has always been exposed. Each
// resolver enforces its own authorization; the schema itself carries no
// auth information.
const Schema = `
	schema {
		query: Query
	}

	type Query {
		# A welcome message from the server.
		hello: String!

		# Create a new user account.
		userCreate(fullName: String, email: String, password: String): User
		# Verify credentials and return a signed access token.
		userLogin(email: String, password: String): String!
		# Replace the caller's profile. fullName, email and password must
		# all be supplied together.
		userUpdate(fullName: String, email: String, password: String): User
		# Delete the caller's own account.
		userDelete: User

		# Create a study event owned by the caller.
		studyEventCreate(subject: String, source: String, resourceName: String,
			link: String, image: String, estimatedTime: Timestamp,
			isConcluded: Boolean, conclusionDate: Timestamp): StudyEvent
		# Update one of the caller's study events.
		studyEventUpdate(id: Int, subject: String, source: String, resourceName: String,
			link: String, image: String, estimatedTime: Timestamp,
			isConcluded: Boolean, conclusionDate: Timestamp): StudyEvent
		# Delete one of the caller's study events.
		studyEventDelete(id: Int): StudyEvent
		# List every study event owned by the caller.
		studyEventGetAll: StudyEventList
		# Fetch one of the caller's study events by id.
		studyEventGetById(id: Int): StudyEvent
	}

	type User {
		id: Int!
		fullName: String!
		email: String!
		createdAt: Timestamp!
		updatedAt: Timestamp!
	}

	type StudyEvent {
		id: Int!
		subject: String!
		# One of ONLINE_COURSE, YOUTUBE, PDF/EBOOK, BOOK.
		source: String!
		resourceName: String!
		link: String
		image: String
		estimatedTime: Timestamp
		isConcluded: Boolean!
		conclusionDate: Timestamp
		user: User
	}

	type StudyEventList {
		userStudyEvents: [StudyEvent!]!
	}

	# Unix-millisecond timestamp. Accepts numeric or numeric-string input
	# and rejects non-positive values.
	scalar Timestamp
`

// MustParseSchema binds the SDL to a root resolver, panicking on any
// mismatch between schema fields and resolver methods.
func MustParseSchema(r *RootResolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}
