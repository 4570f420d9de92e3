package models

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/payline/payline-go/pure_utils"
)

type Customer struct {
	Id            string
	Created       time.Time
	LiveMode      bool
	Description   null.String
	Email         null.String
	Balance       int64
	Currency      pure_utils.Null[string]
	Delinquent    bool
	DefaultSource pure_utils.Null[Ref[Card]]

	// Cards and Sources carry the same payload under two wire names; which one
	// the API fills depends on the account's pinned API version. At most one
	// is populated, which is documented but not validated upstream, so it is
	// not validated here either.
	Cards   *List[Card]
	Sources *List[Card]

	Subscriptions *List[Subscription]
	Discount      *Discount
	Metadata      Metadata
}
