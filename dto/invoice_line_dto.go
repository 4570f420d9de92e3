package dto

import (
	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type PeriodDto struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

func decodePeriod(obj gjson.Result, path string) (models.Period, error) {
	var period models.Period
	var err error
	if period.Start, err = requireTime(obj, path, "start"); err != nil {
		return models.Period{}, err
	}
	if period.End, err = requireTime(obj, path, "end"); err != nil {
		return models.Period{}, err
	}
	return period, nil
}

func adaptPeriodDto(period models.Period) PeriodDto {
	return PeriodDto{Start: epoch(period.Start), End: epoch(period.End)}
}

type InvoiceLineDto struct {
	Id           string                  `json:"id"`
	Object       string                  `json:"object"`
	Livemode     bool                    `json:"livemode"`
	Amount       int64                   `json:"amount"`
	Currency     string                  `json:"currency"`
	Period       PeriodDto               `json:"period"`
	Plan         *PlanDto                `json:"plan,omitempty"`
	Proration    bool                    `json:"proration"`
	Quantity     pure_utils.Null[int64]  `json:"quantity,omitzero"`
	Subscription pure_utils.Null[string] `json:"subscription,omitzero"`
	Description  null.String             `json:"description"`
	Type         string                  `json:"type"`
	Metadata     MetadataDto             `json:"metadata"`
}

func DecodeInvoiceLine(raw []byte) (models.InvoiceLineItem, error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.InvoiceLineItem{}, err
	}
	return decodeInvoiceLine(root, "")
}

func decodeInvoiceLine(obj gjson.Result, path string) (models.InvoiceLineItem, error) {
	if err := checkObjectTag(obj, path, "line_item"); err != nil {
		return models.InvoiceLineItem{}, err
	}
	var line models.InvoiceLineItem
	var err error
	if line.Id, err = requireString(obj, path, "id"); err != nil {
		return models.InvoiceLineItem{}, err
	}
	if line.LiveMode, err = requireBool(obj, path, "livemode"); err != nil {
		return models.InvoiceLineItem{}, err
	}
	if line.Amount, err = requireInt(obj, path, "amount"); err != nil {
		return models.InvoiceLineItem{}, err
	}
	if line.Currency, err = requireString(obj, path, "currency"); err != nil {
		return models.InvoiceLineItem{}, err
	}
	if line.Period, err = requireObject(obj, path, "period", decodePeriod); err != nil {
		return models.InvoiceLineItem{}, err
	}
	if line.Plan, err = optObject(obj, path, "plan", decodePlan); err != nil {
		return models.InvoiceLineItem{}, err
	}
	if line.Proration, err = boolOrDefault(obj, path, "proration", false); err != nil {
		return models.InvoiceLineItem{}, err
	}
	if line.Quantity, err = optPosInt(obj, path, "quantity"); err != nil {
		return models.InvoiceLineItem{}, err
	}
	if line.Subscription, err = optString(obj, path, "subscription"); err != nil {
		return models.InvoiceLineItem{}, err
	}
	if line.Description, err = nullableString(obj, path, "description"); err != nil {
		return models.InvoiceLineItem{}, err
	}
	if line.Type, err = requireEnum(obj, path, "type", models.LineItemTypeFrom); err != nil {
		return models.InvoiceLineItem{}, err
	}
	if line.Metadata, err = decodeMetadata(obj, path); err != nil {
		return models.InvoiceLineItem{}, err
	}
	return line, nil
}

func AdaptInvoiceLineDto(line models.InvoiceLineItem) (InvoiceLineDto, error) {
	metadata, err := adaptMetadataDto(line.Metadata)
	if err != nil {
		return InvoiceLineDto{}, err
	}
	var plan *PlanDto
	if line.Plan != nil {
		p, err := AdaptPlanDto(*line.Plan)
		if err != nil {
			return InvoiceLineDto{}, err
		}
		plan = &p
	}
	return InvoiceLineDto{
		Id:           line.Id,
		Object:       "line_item",
		Livemode:     line.LiveMode,
		Amount:       line.Amount,
		Currency:     line.Currency,
		Period:       adaptPeriodDto(line.Period),
		Plan:         plan,
		Proration:    line.Proration,
		Quantity:     pure_utils.MapNull(line.Quantity, models.PosInt.Int64),
		Subscription: line.Subscription,
		Description:  line.Description,
		Type:         line.Type.String(),
		Metadata:     metadata,
	}, nil
}

func EncodeInvoiceLine(line models.InvoiceLineItem) ([]byte, error) {
	dto, err := AdaptInvoiceLineDto(line)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}
