package dto

import (
	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type ChargeDto struct {
	Id             string                  `json:"id"`
	Object         string                  `json:"object"`
	Created        int64                   `json:"created"`
	Livemode       bool                    `json:"livemode"`
	Amount         int64                   `json:"amount"`
	AmountRefunded int64                   `json:"amount_refunded"`
	Currency       string                  `json:"currency"`
	Status         string                  `json:"status"`
	Paid           bool                    `json:"paid"`
	Captured       bool                    `json:"captured"`
	Refunded       bool                    `json:"refunded"`
	Source         CardDto                 `json:"source"`
	Customer       pure_utils.Null[string] `json:"customer,omitzero"`
	Invoice        pure_utils.Null[string] `json:"invoice,omitzero"`
	Description    null.String             `json:"description"`
	FailureCode    null.String             `json:"failure_code"`
	FailureMessage null.String             `json:"failure_message"`
	Refunds        ListDto[RefundDto]      `json:"refunds"`
	Metadata       MetadataDto             `json:"metadata"`
}

func DecodeCharge(raw []byte) (models.Charge, error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.Charge{}, err
	}
	return decodeCharge(root, "")
}

func decodeCharge(obj gjson.Result, path string) (models.Charge, error) {
	if err := checkObjectTag(obj, path, "charge"); err != nil {
		return models.Charge{}, err
	}
	var charge models.Charge
	var err error
	if charge.Id, err = requireString(obj, path, "id"); err != nil {
		return models.Charge{}, err
	}
	if charge.Created, err = requireTime(obj, path, "created"); err != nil {
		return models.Charge{}, err
	}
	if charge.LiveMode, err = requireBool(obj, path, "livemode"); err != nil {
		return models.Charge{}, err
	}
	if charge.Amount, err = requireNonNegInt(obj, path, "amount"); err != nil {
		return models.Charge{}, err
	}
	if charge.AmountRefunded, err = requireNonNegInt(obj, path, "amount_refunded"); err != nil {
		return models.Charge{}, err
	}
	if charge.Currency, err = requireString(obj, path, "currency"); err != nil {
		return models.Charge{}, err
	}
	if charge.Status, err = requireEnum(obj, path, "status", models.ChargeStatusFrom); err != nil {
		return models.Charge{}, err
	}
	if charge.Paid, err = requireBool(obj, path, "paid"); err != nil {
		return models.Charge{}, err
	}
	if charge.Captured, err = requireBool(obj, path, "captured"); err != nil {
		return models.Charge{}, err
	}
	if charge.Refunded, err = requireBool(obj, path, "refunded"); err != nil {
		return models.Charge{}, err
	}
	if charge.Source, err = requireObject(obj, path, "source", decodeCard); err != nil {
		return models.Charge{}, err
	}
	if charge.Customer, err = optString(obj, path, "customer"); err != nil {
		return models.Charge{}, err
	}
	if charge.Invoice, err = optString(obj, path, "invoice"); err != nil {
		return models.Charge{}, err
	}
	if charge.Description, err = nullableString(obj, path, "description"); err != nil {
		return models.Charge{}, err
	}
	if charge.FailureCode, err = nullableString(obj, path, "failure_code"); err != nil {
		return models.Charge{}, err
	}
	if charge.FailureMessage, err = nullableString(obj, path, "failure_message"); err != nil {
		return models.Charge{}, err
	}
	if charge.Refunds, err = requireList(obj, path, "refunds", decodeRefund); err != nil {
		return models.Charge{}, err
	}
	if charge.Metadata, err = decodeMetadata(obj, path); err != nil {
		return models.Charge{}, err
	}
	return charge, nil
}

func AdaptChargeDto(charge models.Charge) (ChargeDto, error) {
	if err := charge.Amount.Validate(); err != nil {
		return ChargeDto{}, err
	}
	if err := charge.AmountRefunded.Validate(); err != nil {
		return ChargeDto{}, err
	}
	source, err := AdaptCardDto(charge.Source)
	if err != nil {
		return ChargeDto{}, err
	}
	refunds, err := adaptListDto(charge.Refunds, AdaptRefundDto)
	if err != nil {
		return ChargeDto{}, err
	}
	metadata, err := adaptMetadataDto(charge.Metadata)
	if err != nil {
		return ChargeDto{}, err
	}
	return ChargeDto{
		Id:             charge.Id,
		Object:         "charge",
		Created:        epoch(charge.Created),
		Livemode:       charge.LiveMode,
		Amount:         charge.Amount.Int64(),
		AmountRefunded: charge.AmountRefunded.Int64(),
		Currency:       charge.Currency,
		Status:         charge.Status.String(),
		Paid:           charge.Paid,
		Captured:       charge.Captured,
		Refunded:       charge.Refunded,
		Source:         source,
		Customer:       charge.Customer,
		Invoice:        charge.Invoice,
		Description:    charge.Description,
		FailureCode:    charge.FailureCode,
		FailureMessage: charge.FailureMessage,
		Refunds:        refunds,
		Metadata:       metadata,
	}, nil
}

func EncodeCharge(charge models.Charge) ([]byte, error) {
	dto, err := AdaptChargeDto(charge)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}

func DecodeChargeList(raw []byte) (models.List[models.Charge], error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.List[models.Charge]{}, err
	}
	return decodeList(root, "", decodeCharge)
}

func EncodeChargeList(list models.List[models.Charge]) ([]byte, error) {
	dto, err := adaptListDto(list, AdaptChargeDto)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}
