package models

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/payline/payline-go/pure_utils"
)

// Period is a billing interval. The wire names are "start" and "end"; the
// internal field name End is purely presentational and carries no semantics
// beyond the wire key it maps to.
type Period struct {
	Start time.Time
	End   time.Time
}

type LineItemType string

const (
	LineItemInvoiceItem  LineItemType = "invoiceitem"
	LineItemSubscription LineItemType = "subscription"
)

func LineItemTypeFrom(s string) (LineItemType, error) {
	switch s {
	case "invoiceitem":
		return LineItemInvoiceItem, nil
	case "subscription":
		return LineItemSubscription, nil
	}
	return "", errors.Wrapf(ErrUnknownEnumTag, "line item type %q", s)
}

func (t LineItemType) String() string {
	return string(t)
}

type Invoice struct {
	Id                 string
	Date               time.Time
	LiveMode           bool
	Customer           string
	Currency           string
	Subtotal           int64
	Total              int64
	AmountDue          int64
	StartingBalance    int64
	EndingBalance      pure_utils.Null[int64]
	Charge             pure_utils.Null[string]
	Subscription       pure_utils.Null[string]
	Paid               bool
	Closed             bool
	Attempted          bool
	AttemptCount       NonNegInt
	PeriodStart        time.Time
	PeriodEnd          time.Time
	NextPaymentAttempt pure_utils.Null[time.Time]
	Lines              List[InvoiceLineItem]
	Discount           *Discount
	Metadata           Metadata
}

type InvoiceLineItem struct {
	Id        string
	LiveMode  bool
	Amount    int64
	Currency  string
	Period    Period
	Plan      *Plan
	Proration bool
	Quantity  pure_utils.Null[PosInt]

	// Subscription is only populated for type "invoiceitem" lines, pointing at
	// the subscription the one-off item was billed against.
	Subscription pure_utils.Null[string]

	Description null.String
	Type        LineItemType
	Metadata    Metadata
}
