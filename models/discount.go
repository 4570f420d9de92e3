package models

import (
	"time"

	"github.com/payline/payline-go/pure_utils"
)

type Discount struct {
	Coupon   Coupon
	Customer string
	Start    time.Time

	// End maps to the wire key "end".
	End pure_utils.Null[time.Time]

	Subscription pure_utils.Null[string]
}
