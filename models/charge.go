package models

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/payline/payline-go/pure_utils"
)

type ChargeStatus string

const (
	ChargeSucceeded ChargeStatus = "succeeded"
	ChargeFailed    ChargeStatus = "failed"
)

func ChargeStatusFrom(s string) (ChargeStatus, error) {
	switch s {
	case "succeeded":
		return ChargeSucceeded, nil
	case "failed":
		return ChargeFailed, nil
	}
	return "", errors.Wrapf(ErrUnknownEnumTag, "charge status %q", s)
}

func (s ChargeStatus) String() string {
	return string(s)
}

type Charge struct {
	Id             string
	Created        time.Time
	LiveMode       bool
	Amount         NonNegInt
	AmountRefunded NonNegInt
	Currency       string
	Status         ChargeStatus
	Paid           bool
	Captured       bool
	Refunded       bool

	// Source is the card that was charged, always fully embedded.
	Source Card

	Customer       pure_utils.Null[string]
	Invoice        pure_utils.Null[string]
	Description    null.String
	FailureCode    null.String
	FailureMessage null.String
	Refunds        List[Refund]
	Metadata       Metadata
}
