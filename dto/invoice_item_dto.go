package dto

import (
	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type InvoiceItemDto struct {
	Id           string                  `json:"id"`
	Object       string                  `json:"object"`
	Date         int64                   `json:"date"`
	Livemode     bool                    `json:"livemode"`
	Amount       int64                   `json:"amount"`
	Currency     string                  `json:"currency"`
	Customer     string                  `json:"customer"`
	Period       PeriodDto               `json:"period"`
	Plan         *PlanDto                `json:"plan,omitempty"`
	Proration    bool                    `json:"proration"`
	Quantity     pure_utils.Null[int64]  `json:"quantity,omitzero"`
	Invoice      pure_utils.Null[string] `json:"invoice,omitzero"`
	Subscription pure_utils.Null[string] `json:"subscription,omitzero"`
	Description  null.String             `json:"description"`
	Metadata     MetadataDto             `json:"metadata"`
}

func DecodeInvoiceItem(raw []byte) (models.InvoiceItem, error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.InvoiceItem{}, err
	}
	return decodeInvoiceItem(root, "")
}

func decodeInvoiceItem(obj gjson.Result, path string) (models.InvoiceItem, error) {
	if err := checkObjectTag(obj, path, "invoiceitem"); err != nil {
		return models.InvoiceItem{}, err
	}
	var item models.InvoiceItem
	var err error
	if item.Id, err = requireString(obj, path, "id"); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.Date, err = requireTime(obj, path, "date"); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.LiveMode, err = requireBool(obj, path, "livemode"); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.Amount, err = requireInt(obj, path, "amount"); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.Currency, err = requireString(obj, path, "currency"); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.Customer, err = requireString(obj, path, "customer"); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.Period, err = requireObject(obj, path, "period", decodePeriod); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.Plan, err = optObject(obj, path, "plan", decodePlan); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.Proration, err = boolOrDefault(obj, path, "proration", false); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.Quantity, err = optPosInt(obj, path, "quantity"); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.Invoice, err = optString(obj, path, "invoice"); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.Subscription, err = optString(obj, path, "subscription"); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.Description, err = nullableString(obj, path, "description"); err != nil {
		return models.InvoiceItem{}, err
	}
	if item.Metadata, err = decodeMetadata(obj, path); err != nil {
		return models.InvoiceItem{}, err
	}
	return item, nil
}

func AdaptInvoiceItemDto(item models.InvoiceItem) (InvoiceItemDto, error) {
	metadata, err := adaptMetadataDto(item.Metadata)
	if err != nil {
		return InvoiceItemDto{}, err
	}
	var plan *PlanDto
	if item.Plan != nil {
		p, err := AdaptPlanDto(*item.Plan)
		if err != nil {
			return InvoiceItemDto{}, err
		}
		plan = &p
	}
	return InvoiceItemDto{
		Id:           item.Id,
		Object:       "invoiceitem",
		Date:         epoch(item.Date),
		Livemode:     item.LiveMode,
		Amount:       item.Amount,
		Currency:     item.Currency,
		Customer:     item.Customer,
		Period:       adaptPeriodDto(item.Period),
		Plan:         plan,
		Proration:    item.Proration,
		Quantity:     pure_utils.MapNull(item.Quantity, models.PosInt.Int64),
		Invoice:      item.Invoice,
		Subscription: item.Subscription,
		Description:  item.Description,
		Metadata:     metadata,
	}, nil
}

func EncodeInvoiceItem(item models.InvoiceItem) ([]byte, error) {
	dto, err := AdaptInvoiceItemDto(item)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}

func DecodeInvoiceItemList(raw []byte) (models.List[models.InvoiceItem], error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.List[models.InvoiceItem]{}, err
	}
	return decodeList(root, "", decodeInvoiceItem)
}
