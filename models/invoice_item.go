package models

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/payline/payline-go/pure_utils"
)

type InvoiceItem struct {
	Id           string
	Date         time.Time
	LiveMode     bool
	Amount       int64
	Currency     string
	Customer     string
	Period       Period
	Plan         *Plan
	Proration    bool
	Quantity     pure_utils.Null[PosInt]
	Invoice      pure_utils.Null[string]
	Subscription pure_utils.Null[string]
	Description  null.String
	Metadata     Metadata
}
