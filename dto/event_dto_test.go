package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

const rawChargeEvent = `{
	"id": "evt_15I6qhB2eZvKYlo2",
	"object": "event",
	"created": 1422784543,
	"livemode": false,
	"type": "charge.refunded",
	"data": {"object": ` + rawCharge + `},
	"pending_webhooks": 1,
	"api_version": "2015-01-26",
	"request": "req_5rgGfYGXzoDGRF"
}`

func TestDecodeEventTypeProbe(t *testing.T) {
	eventType, err := DecodeEventType([]byte(rawChargeEvent))
	require.NoError(t, err)
	assert.Equal(t, "charge.refunded", eventType)
}

func TestDecodeEventTypeUnmodeledTypeIsNotAnError(t *testing.T) {
	// Enum strictness stops at the event envelope: a type tag the client has
	// never seen still decodes as a plain string.
	raw := `{
		"id": "evt_1", "object": "event", "created": 1422784543, "livemode": false,
		"type": "charge.teleported",
		"data": {"object": {}},
		"pending_webhooks": 0
	}`

	eventType, err := DecodeEventType([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "charge.teleported", eventType)
}

func TestDecodeChargeEventTwoPass(t *testing.T) {
	eventType, err := DecodeEventType([]byte(rawChargeEvent))
	require.NoError(t, err)
	require.Equal(t, "charge.refunded", eventType)

	event, err := DecodeChargeEvent([]byte(rawChargeEvent))
	require.NoError(t, err)

	assert.Equal(t, "evt_15I6qhB2eZvKYlo2", event.Id)
	assert.Equal(t, "charge.refunded", event.Type)
	assert.Equal(t, models.NonNegInt(1), event.PendingWebhooks)
	assert.Equal(t, "2015-01-26", event.ApiVersion.Value())
	assert.Equal(t, "ch_15I6p2B2eZvKYlo2", event.Data.Object.Id)
}

func TestDecodeEventAgainstWrongPayloadType(t *testing.T) {
	_, err := DecodeSubscriptionEvent([]byte(rawChargeEvent))
	assert.ErrorIs(t, err, models.ErrTypeMismatch)

	var decodeErr models.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "data.object.object", decodeErr.Path)
}

func TestChargeEventRoundTrip(t *testing.T) {
	event := models.Event[models.Charge]{
		Id:              "evt_15I6qhB2eZvKYlo2",
		Created:         time.Unix(1422784543, 0).UTC(),
		Type:            "charge.refunded",
		Data:            models.EventData[models.Charge]{Object: chargeFixture()},
		PendingWebhooks: 1,
		ApiVersion:      pure_utils.NullFrom("2015-01-26"),
		Request:         pure_utils.NullFrom("req_5rgGfYGXzoDGRF"),
	}

	raw, err := EncodeEvent(event, AdaptChargeDto)
	require.NoError(t, err)

	decoded, err := DecodeChargeEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}
