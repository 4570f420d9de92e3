package models

import "github.com/payline/payline-go/pure_utils"

// List is one page of a paginated collection, generic over the element type.
// Data keeps the server-provided order. Traversing beyond one page is the
// caller's concern.
type List[T any] struct {
	Data       []T
	HasMore    bool
	Url        string
	TotalCount pure_utils.Null[int64]
}
