package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

const rawCharge = `{
	"id": "ch_15I6p2B2eZvKYlo2",
	"object": "charge",
	"created": 1422783742,
	"livemode": false,
	"amount": 1000,
	"amount_refunded": 250,
	"currency": "usd",
	"status": "succeeded",
	"paid": true,
	"captured": true,
	"refunded": false,
	"source": ` + rawCard + `,
	"customer": "cus_5rfJKDJkuxzh5Q",
	"invoice": null,
	"description": null,
	"failure_code": null,
	"failure_message": null,
	"refunds": {
		"object": "list",
		"data": [{
			"id": "re_15I6pLB2eZvKYlo2",
			"object": "refund",
			"created": 1422784382,
			"amount": 250,
			"currency": "usd",
			"charge": "ch_15I6p2B2eZvKYlo2",
			"reason": "requested_by_customer",
			"metadata": {}
		}],
		"has_more": false,
		"url": "/v1/charges/ch_15I6p2B2eZvKYlo2/refunds"
	},
	"metadata": {}
}`

func TestDecodeCharge(t *testing.T) {
	charge, err := DecodeCharge([]byte(rawCharge))
	require.NoError(t, err)

	assert.Equal(t, models.NonNegInt(1000), charge.Amount)
	assert.Equal(t, models.NonNegInt(250), charge.AmountRefunded)
	assert.Equal(t, models.ChargeSucceeded, charge.Status)
	assert.Equal(t, "card_15Hv6nB2eZvKYlo2", charge.Source.Id)
	assert.Equal(t, "cus_5rfJKDJkuxzh5Q", charge.Customer.Value())
	assert.True(t, charge.Invoice.Set)
	assert.Nil(t, charge.Invoice.Ptr())

	require.Len(t, charge.Refunds.Data, 1)
	refund := charge.Refunds.Data[0]
	assert.Equal(t, models.RefundRequestedByCustomer, refund.Reason.Value())
	assert.Equal(t, "ch_15I6p2B2eZvKYlo2", refund.Charge)
}

func TestDecodeChargeUnknownStatus(t *testing.T) {
	raw := strings.Replace(rawCharge, `"succeeded"`, `"pending"`, 1)

	_, err := DecodeCharge([]byte(raw))
	assert.ErrorIs(t, err, models.ErrUnknownEnumTag)

	var decodeErr models.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "status", decodeErr.Path)
}

func TestDecodeChargeNegativeAmount(t *testing.T) {
	raw := strings.Replace(rawCharge, `"amount": 1000`, `"amount": -1`, 1)

	_, err := DecodeCharge([]byte(raw))
	assert.ErrorIs(t, err, models.ErrValidation)

	var decodeErr models.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "amount", decodeErr.Path)
}

func TestDecodeChargeWrongWireType(t *testing.T) {
	raw := strings.Replace(rawCharge, `"paid": true`, `"paid": "yes"`, 1)

	_, err := DecodeCharge([]byte(raw))
	assert.ErrorIs(t, err, models.ErrTypeMismatch)
}

func TestDecodeChargeOversizedMetadata(t *testing.T) {
	pairs := make([]string, 0, 11)
	for i := 0; i < 11; i++ {
		pairs = append(pairs, `"key_`+strings.Repeat("a", i)+`": "v"`)
	}
	raw := strings.Replace(rawCharge, `"metadata": {}
}`, `"metadata": {`+strings.Join(pairs, ",")+`}
}`, 1)

	_, err := DecodeCharge([]byte(raw))
	assert.ErrorIs(t, err, models.ErrValidation)

	var decodeErr models.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "metadata", decodeErr.Path)
}

func chargeFixture() models.Charge {
	return models.Charge{
		Id:             "ch_15I6p2B2eZvKYlo2",
		Created:        time.Unix(1422783742, 0).UTC(),
		Amount:         1000,
		AmountRefunded: 250,
		Currency:       "usd",
		Status:         models.ChargeSucceeded,
		Paid:           true,
		Captured:       true,
		Source: models.Card{
			Id: "card_15Hv6nB2eZvKYlo2", Brand: "Visa", Last4: "4242",
			ExpMonth: 12, ExpYear: 2027, Fingerprint: "Xt5EWLLDS7FJjR1c", Funding: "credit",
			Customer: pure_utils.NullFrom(models.RefFromId[models.Customer]("cus_5rfJKDJkuxzh5Q")),
		},
		Customer:    pure_utils.NullFrom("cus_5rfJKDJkuxzh5Q"),
		Description: null.StringFrom("order 6735"),
		Refunds: models.List[models.Refund]{
			Data: []models.Refund{{
				Id:       "re_15I6pLB2eZvKYlo2",
				Created:  time.Unix(1422784382, 0).UTC(),
				Amount:   250,
				Currency: "usd",
				Charge:   "ch_15I6p2B2eZvKYlo2",
				Reason:   pure_utils.NullFrom(models.RefundRequestedByCustomer),
				Metadata: models.Metadata{},
			}},
			Url: "/v1/charges/ch_15I6p2B2eZvKYlo2/refunds",
		},
		Metadata: models.Metadata{},
	}
}

func TestChargeRoundTrip(t *testing.T) {
	charge := chargeFixture()

	raw, err := EncodeCharge(charge)
	require.NoError(t, err)

	decoded, err := DecodeCharge(raw)
	require.NoError(t, err)
	assert.Equal(t, charge, decoded)
}

func TestEncodeChargeRejectsNegativeAmount(t *testing.T) {
	charge := chargeFixture()
	charge.AmountRefunded = -1

	_, err := EncodeCharge(charge)
	assert.ErrorIs(t, err, models.ErrValidation)
}
