package id

import "github.com/oklog/ulid/v2"

// New returns a fresh ULID. Lexicographic order matches creation order, which
// keeps created_at range queries on DynamoDB cheap.
func New() string {
	return ulid.Make().String()
}
