package dto

import (
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type SubscriptionDto struct {
	Id                 string                  `json:"id"`
	Object             string                  `json:"object"`
	Customer           string                  `json:"customer"`
	Status             string                  `json:"status"`
	Plan               PlanDto                 `json:"plan"`
	Start              int64                   `json:"start"`
	CurrentPeriodStart int64                   `json:"current_period_start"`
	CurrentPeriodEnd   int64                   `json:"current_period_end"`
	CancelAtPeriodEnd  bool                    `json:"cancel_at_period_end"`
	CanceledAt         pure_utils.Null[int64]  `json:"canceled_at,omitzero"`
	EndedAt            pure_utils.Null[int64]  `json:"ended_at,omitzero"`
	TrialStart         pure_utils.Null[int64]  `json:"trial_start,omitzero"`
	TrialEnd           pure_utils.Null[int64]  `json:"trial_end,omitzero"`
	Quantity           int64                   `json:"quantity"`
	Discount           *DiscountDto            `json:"discount,omitempty"`
	Metadata           MetadataDto             `json:"metadata"`
}

func DecodeSubscription(raw []byte) (models.Subscription, error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.Subscription{}, err
	}
	return decodeSubscription(root, "")
}

func decodeSubscription(obj gjson.Result, path string) (models.Subscription, error) {
	if err := checkObjectTag(obj, path, "subscription"); err != nil {
		return models.Subscription{}, err
	}
	var sub models.Subscription
	var err error
	if sub.Id, err = requireString(obj, path, "id"); err != nil {
		return models.Subscription{}, err
	}
	if sub.Customer, err = requireString(obj, path, "customer"); err != nil {
		return models.Subscription{}, err
	}
	if sub.Status, err = requireEnum(obj, path, "status", models.SubscriptionStatusFrom); err != nil {
		return models.Subscription{}, err
	}
	if sub.Plan, err = requireObject(obj, path, "plan", decodePlan); err != nil {
		return models.Subscription{}, err
	}
	if sub.Start, err = requireTime(obj, path, "start"); err != nil {
		return models.Subscription{}, err
	}
	if sub.CurrentPeriodStart, err = requireTime(obj, path, "current_period_start"); err != nil {
		return models.Subscription{}, err
	}
	if sub.CurrentPeriodEnd, err = requireTime(obj, path, "current_period_end"); err != nil {
		return models.Subscription{}, err
	}
	if sub.CancelAtPeriodEnd, err = boolOrDefault(obj, path, "cancel_at_period_end", false); err != nil {
		return models.Subscription{}, err
	}
	if sub.CanceledAt, err = optTime(obj, path, "canceled_at"); err != nil {
		return models.Subscription{}, err
	}
	if sub.EndedAt, err = optTime(obj, path, "ended_at"); err != nil {
		return models.Subscription{}, err
	}
	if sub.TrialStart, err = optTime(obj, path, "trial_start"); err != nil {
		return models.Subscription{}, err
	}
	if sub.TrialEnd, err = optTime(obj, path, "trial_end"); err != nil {
		return models.Subscription{}, err
	}
	if sub.Quantity, err = requirePosInt(obj, path, "quantity"); err != nil {
		return models.Subscription{}, err
	}
	if sub.Discount, err = optObject(obj, path, "discount", decodeDiscount); err != nil {
		return models.Subscription{}, err
	}
	if sub.Metadata, err = decodeMetadata(obj, path); err != nil {
		return models.Subscription{}, err
	}
	return sub, nil
}

func AdaptSubscriptionDto(sub models.Subscription) (SubscriptionDto, error) {
	if err := sub.Quantity.Validate(); err != nil {
		return SubscriptionDto{}, err
	}
	plan, err := AdaptPlanDto(sub.Plan)
	if err != nil {
		return SubscriptionDto{}, err
	}
	metadata, err := adaptMetadataDto(sub.Metadata)
	if err != nil {
		return SubscriptionDto{}, err
	}
	var discount *DiscountDto
	if sub.Discount != nil {
		d, err := AdaptDiscountDto(*sub.Discount)
		if err != nil {
			return SubscriptionDto{}, err
		}
		discount = &d
	}
	return SubscriptionDto{
		Id:                 sub.Id,
		Object:             "subscription",
		Customer:           sub.Customer,
		Status:             sub.Status.String(),
		Plan:               plan,
		Start:              epoch(sub.Start),
		CurrentPeriodStart: epoch(sub.CurrentPeriodStart),
		CurrentPeriodEnd:   epoch(sub.CurrentPeriodEnd),
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
		CanceledAt:         optEpoch(sub.CanceledAt),
		EndedAt:            optEpoch(sub.EndedAt),
		TrialStart:         optEpoch(sub.TrialStart),
		TrialEnd:           optEpoch(sub.TrialEnd),
		Quantity:           sub.Quantity.Int64(),
		Discount:           discount,
		Metadata:           metadata,
	}, nil
}

func EncodeSubscription(sub models.Subscription) ([]byte, error) {
	dto, err := AdaptSubscriptionDto(sub)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}

func DecodeSubscriptionList(raw []byte) (models.List[models.Subscription], error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.List[models.Subscription]{}, err
	}
	return decodeList(root, "", decodeSubscription)
}
