package models

// Ref is an expandable reference: relational fields the API returns either as
// a bare identifier or as the fully embedded related object, depending on the
// expansion requested by the caller. The shape is discovered at decode time,
// never declared in advance.
//
// Expanded is nil for the shallow form. Requests only ever carry the bare
// identifier, so encoding a Ref always emits Id alone.
type Ref[T any] struct {
	Id       string
	Expanded *T
}

func RefFromId[T any](id string) Ref[T] {
	return Ref[T]{Id: id}
}

func RefFromValue[T any](id string, value T) Ref[T] {
	return Ref[T]{Id: id, Expanded: &value}
}

func (r Ref[T]) IsExpanded() bool {
	return r.Expanded != nil
}
