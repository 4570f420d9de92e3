package models

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/payline/payline-go/pure_utils"
)

type Coupon struct {
	Id       string
	Created  time.Time
	LiveMode bool
	Duration string

	// The API documents amount_off and percent_off as mutually exclusive but
	// does not enforce it in responses, so neither does this model.
	AmountOff  null.Int
	PercentOff null.Int

	Currency         pure_utils.Null[string]
	DurationInMonths pure_utils.Null[int64]
	MaxRedemptions   pure_utils.Null[PosInt]
	TimesRedeemed    NonNegInt
	RedeemBy         pure_utils.Null[time.Time]
	Valid            bool
	Metadata         Metadata
}
