package dto

import (
	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type EventDto[T any] struct {
	Id              string                  `json:"id"`
	Object          string                  `json:"object"`
	Created         int64                   `json:"created"`
	Livemode        bool                    `json:"livemode"`
	Type            string                  `json:"type"`
	Data            EventDataDto[T]         `json:"data"`
	PendingWebhooks int64                   `json:"pending_webhooks"`
	ApiVersion      pure_utils.Null[string] `json:"api_version,omitzero"`
	Request         pure_utils.Null[string] `json:"request,omitzero"`
}

type EventDataDto[T any] struct {
	Object T `json:"object"`
}

// DecodeEventType reads only the event's type tag, so a caller can pick the
// right payload decoder without paying for a full decode attempt against the
// wrong entity. The tag decodes as a plain string: event types the client
// does not know yet must still go through.
func DecodeEventType(raw []byte) (string, error) {
	root, err := parseObject(raw)
	if err != nil {
		return "", err
	}
	if err := checkObjectTag(root, "", "event"); err != nil {
		return "", err
	}
	return requireString(root, "", "type")
}

func decodeEvent[T any](raw []byte, payload objectDecoder[T]) (models.Event[T], error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.Event[T]{}, err
	}
	if err := checkObjectTag(root, "", "event"); err != nil {
		return models.Event[T]{}, err
	}
	var event models.Event[T]
	if event.Id, err = requireString(root, "", "id"); err != nil {
		return models.Event[T]{}, err
	}
	if event.Created, err = requireTime(root, "", "created"); err != nil {
		return models.Event[T]{}, err
	}
	if event.LiveMode, err = requireBool(root, "", "livemode"); err != nil {
		return models.Event[T]{}, err
	}
	if event.Type, err = requireString(root, "", "type"); err != nil {
		return models.Event[T]{}, err
	}
	data := root.Get("data")
	if !data.Exists() {
		return models.Event[T]{}, missingErr("", "data")
	}
	if !data.IsObject() {
		return models.Event[T]{}, typeErr("", "data", "object", data)
	}
	if event.Data.Object, err = requireObject(data, "data", "object", payload); err != nil {
		return models.Event[T]{}, err
	}
	if event.PendingWebhooks, err = requireNonNegInt(root, "", "pending_webhooks"); err != nil {
		return models.Event[T]{}, err
	}
	if event.ApiVersion, err = optString(root, "", "api_version"); err != nil {
		return models.Event[T]{}, err
	}
	if event.Request, err = optString(root, "", "request"); err != nil {
		return models.Event[T]{}, err
	}
	return event, nil
}

// AdaptEventDto rebuilds the wire envelope around an adapted payload, e.g.
// AdaptEventDto(event, AdaptChargeDto).
func AdaptEventDto[M, D any](event models.Event[M], payload func(M) (D, error)) (EventDto[D], error) {
	if err := event.PendingWebhooks.Validate(); err != nil {
		return EventDto[D]{}, err
	}
	object, err := payload(event.Data.Object)
	if err != nil {
		return EventDto[D]{}, err
	}
	return EventDto[D]{
		Id:              event.Id,
		Object:          "event",
		Created:         epoch(event.Created),
		Livemode:        event.LiveMode,
		Type:            event.Type,
		Data:            EventDataDto[D]{Object: object},
		PendingWebhooks: event.PendingWebhooks.Int64(),
		ApiVersion:      event.ApiVersion,
		Request:         event.Request,
	}, nil
}

func EncodeEvent[M, D any](event models.Event[M], payload func(M) (D, error)) ([]byte, error) {
	dto, err := AdaptEventDto(event, payload)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}

func DecodeChargeEvent(raw []byte) (models.Event[models.Charge], error) {
	return decodeEvent(raw, decodeCharge)
}

func DecodeCustomerEvent(raw []byte) (models.Event[models.Customer], error) {
	return decodeEvent(raw, decodeCustomer)
}

func DecodeCardEvent(raw []byte) (models.Event[models.Card], error) {
	return decodeEvent(raw, decodeCard)
}

func DecodeRefundEvent(raw []byte) (models.Event[models.Refund], error) {
	return decodeEvent(raw, decodeRefund)
}

func DecodeInvoiceEvent(raw []byte) (models.Event[models.Invoice], error) {
	return decodeEvent(raw, decodeInvoice)
}

func DecodeInvoiceItemEvent(raw []byte) (models.Event[models.InvoiceItem], error) {
	return decodeEvent(raw, decodeInvoiceItem)
}

func DecodeSubscriptionEvent(raw []byte) (models.Event[models.Subscription], error) {
	return decodeEvent(raw, decodeSubscription)
}

func DecodePlanEvent(raw []byte) (models.Event[models.Plan], error) {
	return decodeEvent(raw, decodePlan)
}

func DecodeCouponEvent(raw []byte) (models.Event[models.Coupon], error) {
	return decodeEvent(raw, decodeCoupon)
}

func DecodeDiscountEvent(raw []byte) (models.Event[models.Discount], error) {
	return decodeEvent(raw, decodeDiscount)
}
