package models

import (
	"time"

	"github.com/payline/payline-go/pure_utils"
)

// Event is a webhook envelope, generic over the payload entity. Type stays a
// plain string on purpose: the API introduces event types faster than clients
// model them, and callers dispatch on Type before committing to a payload
// decoder. This is the one place where an unrecognized tag must not fail.
type Event[T any] struct {
	Id              string
	Created         time.Time
	LiveMode        bool
	Type            string
	Data            EventData[T]
	PendingWebhooks NonNegInt
	ApiVersion      pure_utils.Null[string]
	Request         pure_utils.Null[string]
}

type EventData[T any] struct {
	Object T
}
