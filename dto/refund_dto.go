package dto

import (
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type RefundDto struct {
	Id       string                  `json:"id"`
	Object   string                  `json:"object"`
	Created  int64                   `json:"created"`
	Amount   int64                   `json:"amount"`
	Currency string                  `json:"currency"`
	Charge   string                  `json:"charge"`
	Reason   pure_utils.Null[string] `json:"reason,omitzero"`
	Metadata MetadataDto             `json:"metadata"`
}

func DecodeRefund(raw []byte) (models.Refund, error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.Refund{}, err
	}
	return decodeRefund(root, "")
}

func decodeRefund(obj gjson.Result, path string) (models.Refund, error) {
	if err := checkObjectTag(obj, path, "refund"); err != nil {
		return models.Refund{}, err
	}
	var refund models.Refund
	var err error
	if refund.Id, err = requireString(obj, path, "id"); err != nil {
		return models.Refund{}, err
	}
	if refund.Created, err = requireTime(obj, path, "created"); err != nil {
		return models.Refund{}, err
	}
	if refund.Amount, err = requireNonNegInt(obj, path, "amount"); err != nil {
		return models.Refund{}, err
	}
	if refund.Currency, err = requireString(obj, path, "currency"); err != nil {
		return models.Refund{}, err
	}
	if refund.Charge, err = requireString(obj, path, "charge"); err != nil {
		return models.Refund{}, err
	}
	if refund.Reason, err = optEnum(obj, path, "reason", models.RefundReasonFrom); err != nil {
		return models.Refund{}, err
	}
	if refund.Metadata, err = decodeMetadata(obj, path); err != nil {
		return models.Refund{}, err
	}
	return refund, nil
}

func AdaptRefundDto(refund models.Refund) (RefundDto, error) {
	if err := refund.Amount.Validate(); err != nil {
		return RefundDto{}, err
	}
	metadata, err := adaptMetadataDto(refund.Metadata)
	if err != nil {
		return RefundDto{}, err
	}
	return RefundDto{
		Id:       refund.Id,
		Object:   "refund",
		Created:  epoch(refund.Created),
		Amount:   refund.Amount.Int64(),
		Currency: refund.Currency,
		Charge:   refund.Charge,
		Reason:   pure_utils.MapNull(refund.Reason, models.RefundReason.String),
		Metadata: metadata,
	}, nil
}

func EncodeRefund(refund models.Refund) ([]byte, error) {
	dto, err := AdaptRefundDto(refund)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}

func DecodeRefundList(raw []byte) (models.List[models.Refund], error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.List[models.Refund]{}, err
	}
	return decodeList(root, "", decodeRefund)
}
