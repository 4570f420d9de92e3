package models

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/payline/payline-go/pure_utils"
)

type RefundReason string

const (
	RefundDuplicate           RefundReason = "duplicate"
	RefundFraudulent          RefundReason = "fraudulent"
	RefundRequestedByCustomer RefundReason = "requested_by_customer"
)

func RefundReasonFrom(s string) (RefundReason, error) {
	switch s {
	case "duplicate":
		return RefundDuplicate, nil
	case "fraudulent":
		return RefundFraudulent, nil
	case "requested_by_customer":
		return RefundRequestedByCustomer, nil
	}
	return "", errors.Wrapf(ErrUnknownEnumTag, "refund reason %q", s)
}

func (r RefundReason) String() string {
	return string(r)
}

type Refund struct {
	Id       string
	Created  time.Time
	Amount   NonNegInt
	Currency string
	Charge   string
	Reason   pure_utils.Null[RefundReason]
	Metadata Metadata
}
