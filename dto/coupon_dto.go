package dto

import (
	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type CouponDto struct {
	Id               string                  `json:"id"`
	Object           string                  `json:"object"`
	Created          int64                   `json:"created"`
	Livemode         bool                    `json:"livemode"`
	Duration         string                  `json:"duration"`
	AmountOff        null.Int                `json:"amount_off"`
	PercentOff       null.Int                `json:"percent_off"`
	Currency         pure_utils.Null[string] `json:"currency,omitzero"`
	DurationInMonths pure_utils.Null[int64]  `json:"duration_in_months,omitzero"`
	MaxRedemptions   pure_utils.Null[int64]  `json:"max_redemptions,omitzero"`
	TimesRedeemed    int64                   `json:"times_redeemed"`
	RedeemBy         pure_utils.Null[int64]  `json:"redeem_by,omitzero"`
	Valid            bool                    `json:"valid"`
	Metadata         MetadataDto             `json:"metadata"`
}

func DecodeCoupon(raw []byte) (models.Coupon, error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.Coupon{}, err
	}
	return decodeCoupon(root, "")
}

func decodeCoupon(obj gjson.Result, path string) (models.Coupon, error) {
	if err := checkObjectTag(obj, path, "coupon"); err != nil {
		return models.Coupon{}, err
	}
	var coupon models.Coupon
	var err error
	if coupon.Id, err = requireString(obj, path, "id"); err != nil {
		return models.Coupon{}, err
	}
	if coupon.Created, err = requireTime(obj, path, "created"); err != nil {
		return models.Coupon{}, err
	}
	if coupon.LiveMode, err = requireBool(obj, path, "livemode"); err != nil {
		return models.Coupon{}, err
	}
	if coupon.Duration, err = requireString(obj, path, "duration"); err != nil {
		return models.Coupon{}, err
	}
	if coupon.AmountOff, err = nullableInt(obj, path, "amount_off"); err != nil {
		return models.Coupon{}, err
	}
	if coupon.PercentOff, err = nullableInt(obj, path, "percent_off"); err != nil {
		return models.Coupon{}, err
	}
	if coupon.Currency, err = optString(obj, path, "currency"); err != nil {
		return models.Coupon{}, err
	}
	if coupon.DurationInMonths, err = optInt(obj, path, "duration_in_months"); err != nil {
		return models.Coupon{}, err
	}
	if coupon.MaxRedemptions, err = optPosInt(obj, path, "max_redemptions"); err != nil {
		return models.Coupon{}, err
	}
	if coupon.TimesRedeemed, err = nonNegIntOrZero(obj, path, "times_redeemed"); err != nil {
		return models.Coupon{}, err
	}
	if coupon.RedeemBy, err = optTime(obj, path, "redeem_by"); err != nil {
		return models.Coupon{}, err
	}
	if coupon.Valid, err = requireBool(obj, path, "valid"); err != nil {
		return models.Coupon{}, err
	}
	if coupon.Metadata, err = decodeMetadata(obj, path); err != nil {
		return models.Coupon{}, err
	}
	return coupon, nil
}

func AdaptCouponDto(coupon models.Coupon) (CouponDto, error) {
	if err := coupon.TimesRedeemed.Validate(); err != nil {
		return CouponDto{}, err
	}
	metadata, err := adaptMetadataDto(coupon.Metadata)
	if err != nil {
		return CouponDto{}, err
	}
	return CouponDto{
		Id:               coupon.Id,
		Object:           "coupon",
		Created:          epoch(coupon.Created),
		Livemode:         coupon.LiveMode,
		Duration:         coupon.Duration,
		AmountOff:        coupon.AmountOff,
		PercentOff:       coupon.PercentOff,
		Currency:         coupon.Currency,
		DurationInMonths: coupon.DurationInMonths,
		MaxRedemptions:   pure_utils.MapNull(coupon.MaxRedemptions, models.PosInt.Int64),
		TimesRedeemed:    coupon.TimesRedeemed.Int64(),
		RedeemBy:         optEpoch(coupon.RedeemBy),
		Valid:            coupon.Valid,
		Metadata:         metadata,
	}, nil
}

func EncodeCoupon(coupon models.Coupon) ([]byte, error) {
	dto, err := AdaptCouponDto(coupon)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}

func DecodeCouponList(raw []byte) (models.List[models.Coupon], error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.List[models.Coupon]{}, err
	}
	return decodeList(root, "", decodeCoupon)
}
