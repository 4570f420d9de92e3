package dto

import (
	"testing"
	"time"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

func TestDecodeCoupon(t *testing.T) {
	raw := `{
		"id": "25OFF",
		"object": "coupon",
		"created": 1422783430,
		"livemode": false,
		"duration": "repeating",
		"amount_off": null,
		"percent_off": 25,
		"currency": null,
		"duration_in_months": 3,
		"max_redemptions": null,
		"redeem_by": null,
		"valid": true,
		"metadata": {}
	}`

	coupon, err := DecodeCoupon([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "25OFF", coupon.Id)
	assert.Equal(t, "repeating", coupon.Duration)
	assert.False(t, coupon.AmountOff.Valid)
	assert.Equal(t, int64(25), coupon.PercentOff.Int64)
	assert.Equal(t, int64(3), coupon.DurationInMonths.Value())
	// times_redeemed absent substitutes the documented default.
	assert.Equal(t, models.NonNegInt(0), coupon.TimesRedeemed)
	assert.True(t, coupon.Valid)
}

func TestCouponRoundTrip(t *testing.T) {
	coupon := models.Coupon{
		Id:            "FLAT5",
		Created:       time.Unix(1422783430, 0).UTC(),
		Duration:      "once",
		AmountOff:     null.IntFrom(500),
		PercentOff:    null.Int{},
		Currency:      pure_utils.NullFrom("usd"),
		TimesRedeemed: 12,
		RedeemBy:      pure_utils.NullFrom(time.Unix(1430000000, 0).UTC()),
		Valid:         true,
		Metadata:      models.Metadata{{Key: "campaign", Value: "winter"}},
	}

	raw, err := EncodeCoupon(coupon)
	require.NoError(t, err)

	decoded, err := DecodeCoupon(raw)
	require.NoError(t, err)
	assert.Equal(t, coupon, decoded)
}

func TestDiscountRoundTrip(t *testing.T) {
	discount := models.Discount{
		Coupon: models.Coupon{
			Id:       "25OFF",
			Created:  time.Unix(1422783430, 0).UTC(),
			Duration: "forever",
			Valid:    true,
			Metadata: models.Metadata{},
		},
		Customer:     "cus_5rfJKDJkuxzh5Q",
		Start:        time.Unix(1422783430, 0).UTC(),
		End:          pure_utils.NullValue[time.Time](),
		Subscription: pure_utils.NullFrom("sub_5rfJxnBLGSwsoz"),
	}

	raw, err := EncodeDiscount(discount)
	require.NoError(t, err)

	decoded, err := DecodeDiscount(raw)
	require.NoError(t, err)
	assert.Equal(t, discount, decoded)
}

func TestMetadataOrderPreservedOnEncode(t *testing.T) {
	raw := `{
		"id": "ORDERED",
		"object": "coupon",
		"created": 1422783430,
		"livemode": false,
		"duration": "once",
		"valid": true,
		"metadata": {"zeta": "1", "alpha": "2", "mike": "3"}
	}`

	coupon, err := DecodeCoupon([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, models.Metadata{
		{Key: "zeta", Value: "1"},
		{Key: "alpha", Value: "2"},
		{Key: "mike", Value: "3"},
	}, coupon.Metadata)

	out, err := EncodeCoupon(coupon)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"metadata":{"zeta":"1","alpha":"2","mike":"3"}`)
}
