package graph

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Timestamp is the custom scalar used for every date field: a Unix
// timestamp in milliseconds. Clients may send it as a number or a
// numeric string; non-positive and unparsable values are rejected during
// argument packing, before any resolver runs.
type Timestamp int64

// ImplementsGraphQLType names the GraphQL scalar this type backs.
func (Timestamp) ImplementsGraphQLType(name string) bool { return name == "Timestamp" }

// UnmarshalGraphQL converts a literal or variable value into a Timestamp.
func (t *Timestamp) UnmarshalGraphQL(input interface{}) error {
	var ms int64
	switch v := input.(type) {
	case int:
		ms = int64(v)
	case int32:
		ms = int64(v)
	case int64:
		ms = v
	case float64:
		ms = int64(v)
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timestamp: %q", v)
		}
		ms = parsed
	default:
		return fmt.Errorf("invalid timestamp type: %T", input)
	}
	if ms <= 0 {
		return fmt.Errorf("timestamp must be positive, got %d", ms)
	}
	*t = Timestamp(ms)
	return nil
}

// MarshalJSON serializes the timestamp as a plain number.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(t))
}
