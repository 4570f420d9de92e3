package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

const rawPlan = `{
	"id": "gold-monthly",
	"object": "plan",
	"created": 1386247539,
	"livemode": false,
	"amount": 2000,
	"currency": "usd",
	"interval": "month",
	"interval_count": 1,
	"name": "Gold",
	"trial_period_days": null,
	"statement_descriptor": null,
	"metadata": {}
}`

const rawSubscription = `{
	"id": "sub_5rfJxnBLGSwsoz",
	"object": "subscription",
	"customer": "cus_5rfJKDJkuxzh5Q",
	"status": "active",
	"plan": ` + rawPlan + `,
	"start": 1422783135,
	"current_period_start": 1422783135,
	"current_period_end": 1425202335,
	"cancel_at_period_end": false,
	"canceled_at": null,
	"ended_at": null,
	"trial_start": null,
	"trial_end": null,
	"quantity": 1,
	"metadata": {}
}`

func TestDecodeSubscription(t *testing.T) {
	sub, err := DecodeSubscription([]byte(rawSubscription))
	require.NoError(t, err)

	assert.Equal(t, models.SubscriptionActive, sub.Status)
	assert.Equal(t, "cus_5rfJKDJkuxzh5Q", sub.Customer)
	assert.Equal(t, "gold-monthly", sub.Plan.Id)
	assert.Equal(t, models.NonNegInt(2000), sub.Plan.Amount)
	assert.Equal(t, models.PosInt(1), sub.Quantity)
	assert.True(t, sub.CanceledAt.Set)
	assert.Nil(t, sub.CanceledAt.Ptr())
}

func TestDecodeSubscriptionUnknownStatus(t *testing.T) {
	raw := strings.Replace(rawSubscription, `"active"`, `"frozen"`, 1)

	_, err := DecodeSubscription([]byte(raw))
	assert.ErrorIs(t, err, models.ErrUnknownEnumTag)

	var decodeErr models.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "status", decodeErr.Path)
}

func planFixture() models.Plan {
	return models.Plan{
		Id:            "gold-monthly",
		Created:       time.Unix(1386247539, 0).UTC(),
		Amount:        2000,
		Currency:      "usd",
		Interval:      "month",
		IntervalCount: 1,
		Name:          "Gold",
		Metadata:      models.Metadata{},
	}
}

func subscriptionFixture() models.Subscription {
	return models.Subscription{
		Id:                 "sub_5rfJxnBLGSwsoz",
		Customer:           "cus_5rfJKDJkuxzh5Q",
		Status:             models.SubscriptionTrialing,
		Plan:               planFixture(),
		Start:              time.Unix(1422783135, 0).UTC(),
		CurrentPeriodStart: time.Unix(1422783135, 0).UTC(),
		CurrentPeriodEnd:   time.Unix(1425202335, 0).UTC(),
		TrialStart:         pure_utils.NullFrom(time.Unix(1422783135, 0).UTC()),
		TrialEnd:           pure_utils.NullFrom(time.Unix(1423992735, 0).UTC()),
		Quantity:           2,
		Metadata:           models.Metadata{{Key: "seats", Value: "2"}},
	}
}

func TestSubscriptionRoundTrip(t *testing.T) {
	sub := subscriptionFixture()

	raw, err := EncodeSubscription(sub)
	require.NoError(t, err)

	decoded, err := DecodeSubscription(raw)
	require.NoError(t, err)
	assert.Equal(t, sub, decoded)
}

func TestPlanRoundTrip(t *testing.T) {
	plan := planFixture()
	plan.TrialPeriodDays = pure_utils.NullFrom(models.PosInt(14))

	raw, err := EncodePlan(plan)
	require.NoError(t, err)

	decoded, err := DecodePlan(raw)
	require.NoError(t, err)
	assert.Equal(t, plan, decoded)
}

func TestEncodeSubscriptionRejectsZeroQuantity(t *testing.T) {
	sub := subscriptionFixture()
	sub.Quantity = 0

	_, err := EncodeSubscription(sub)
	assert.ErrorIs(t, err, models.ErrValidation)
}
