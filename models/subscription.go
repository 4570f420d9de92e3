package models

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/payline/payline-go/pure_utils"
)

type SubscriptionStatus string

const (
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionUnpaid   SubscriptionStatus = "unpaid"
)

func SubscriptionStatusFrom(s string) (SubscriptionStatus, error) {
	switch s {
	case "trialing":
		return SubscriptionTrialing, nil
	case "active":
		return SubscriptionActive, nil
	case "past_due":
		return SubscriptionPastDue, nil
	case "canceled":
		return SubscriptionCanceled, nil
	case "unpaid":
		return SubscriptionUnpaid, nil
	}
	return "", errors.Wrapf(ErrUnknownEnumTag, "subscription status %q", s)
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

type Subscription struct {
	Id                 string
	Customer           string
	Status             SubscriptionStatus
	Plan               Plan
	Start              time.Time
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	CancelAtPeriodEnd  bool
	CanceledAt         pure_utils.Null[time.Time]
	EndedAt            pure_utils.Null[time.Time]
	TrialStart         pure_utils.Null[time.Time]
	TrialEnd           pure_utils.Null[time.Time]
	Quantity           PosInt
	Discount           *Discount
	Metadata           Metadata
}
