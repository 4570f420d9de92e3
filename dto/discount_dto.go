package dto

import (
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type DiscountDto struct {
	Object       string                  `json:"object"`
	Coupon       CouponDto               `json:"coupon"`
	Customer     string                  `json:"customer"`
	Start        int64                   `json:"start"`
	End          pure_utils.Null[int64]  `json:"end,omitzero"`
	Subscription pure_utils.Null[string] `json:"subscription,omitzero"`
}

func DecodeDiscount(raw []byte) (models.Discount, error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.Discount{}, err
	}
	return decodeDiscount(root, "")
}

func decodeDiscount(obj gjson.Result, path string) (models.Discount, error) {
	if err := checkObjectTag(obj, path, "discount"); err != nil {
		return models.Discount{}, err
	}
	var discount models.Discount
	var err error
	if discount.Coupon, err = requireObject(obj, path, "coupon", decodeCoupon); err != nil {
		return models.Discount{}, err
	}
	if discount.Customer, err = requireString(obj, path, "customer"); err != nil {
		return models.Discount{}, err
	}
	if discount.Start, err = requireTime(obj, path, "start"); err != nil {
		return models.Discount{}, err
	}
	if discount.End, err = optTime(obj, path, "end"); err != nil {
		return models.Discount{}, err
	}
	if discount.Subscription, err = optString(obj, path, "subscription"); err != nil {
		return models.Discount{}, err
	}
	return discount, nil
}

func AdaptDiscountDto(discount models.Discount) (DiscountDto, error) {
	coupon, err := AdaptCouponDto(discount.Coupon)
	if err != nil {
		return DiscountDto{}, err
	}
	return DiscountDto{
		Object:       "discount",
		Coupon:       coupon,
		Customer:     discount.Customer,
		Start:        epoch(discount.Start),
		End:          optEpoch(discount.End),
		Subscription: discount.Subscription,
	}, nil
}

func EncodeDiscount(discount models.Discount) ([]byte, error) {
	dto, err := AdaptDiscountDto(discount)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}
