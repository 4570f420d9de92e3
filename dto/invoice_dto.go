package dto

import (
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type InvoiceDto struct {
	Id                 string                   `json:"id"`
	Object             string                   `json:"object"`
	Date               int64                    `json:"date"`
	Livemode           bool                     `json:"livemode"`
	Customer           string                   `json:"customer"`
	Currency           string                   `json:"currency"`
	Subtotal           int64                    `json:"subtotal"`
	Total              int64                    `json:"total"`
	AmountDue          int64                    `json:"amount_due"`
	StartingBalance    int64                    `json:"starting_balance"`
	EndingBalance      pure_utils.Null[int64]   `json:"ending_balance,omitzero"`
	Charge             pure_utils.Null[string]  `json:"charge,omitzero"`
	Subscription       pure_utils.Null[string]  `json:"subscription,omitzero"`
	Paid               bool                     `json:"paid"`
	Closed             bool                     `json:"closed"`
	Attempted          bool                     `json:"attempted"`
	AttemptCount       int64                    `json:"attempt_count"`
	PeriodStart        int64                    `json:"period_start"`
	PeriodEnd          int64                    `json:"period_end"`
	NextPaymentAttempt pure_utils.Null[int64]   `json:"next_payment_attempt,omitzero"`
	Lines              ListDto[InvoiceLineDto]  `json:"lines"`
	Discount           *DiscountDto             `json:"discount,omitempty"`
	Metadata           MetadataDto              `json:"metadata"`
}

func DecodeInvoice(raw []byte) (models.Invoice, error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.Invoice{}, err
	}
	return decodeInvoice(root, "")
}

func decodeInvoice(obj gjson.Result, path string) (models.Invoice, error) {
	if err := checkObjectTag(obj, path, "invoice"); err != nil {
		return models.Invoice{}, err
	}
	var invoice models.Invoice
	var err error
	if invoice.Id, err = requireString(obj, path, "id"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.Date, err = requireTime(obj, path, "date"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.LiveMode, err = requireBool(obj, path, "livemode"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.Customer, err = requireString(obj, path, "customer"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.Currency, err = requireString(obj, path, "currency"); err != nil {
		return models.Invoice{}, err
	}
	// Subtotal and friends can legitimately be negative when credit notes or
	// account balance come into play, so they stay plain integers.
	if invoice.Subtotal, err = requireInt(obj, path, "subtotal"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.Total, err = requireInt(obj, path, "total"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.AmountDue, err = requireInt(obj, path, "amount_due"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.StartingBalance, err = requireInt(obj, path, "starting_balance"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.EndingBalance, err = optInt(obj, path, "ending_balance"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.Charge, err = optString(obj, path, "charge"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.Subscription, err = optString(obj, path, "subscription"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.Paid, err = requireBool(obj, path, "paid"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.Closed, err = requireBool(obj, path, "closed"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.Attempted, err = requireBool(obj, path, "attempted"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.AttemptCount, err = requireNonNegInt(obj, path, "attempt_count"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.PeriodStart, err = requireTime(obj, path, "period_start"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.PeriodEnd, err = requireTime(obj, path, "period_end"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.NextPaymentAttempt, err = optTime(obj, path, "next_payment_attempt"); err != nil {
		return models.Invoice{}, err
	}
	if invoice.Lines, err = requireList(obj, path, "lines", decodeInvoiceLine); err != nil {
		return models.Invoice{}, err
	}
	if invoice.Discount, err = optObject(obj, path, "discount", decodeDiscount); err != nil {
		return models.Invoice{}, err
	}
	if invoice.Metadata, err = decodeMetadata(obj, path); err != nil {
		return models.Invoice{}, err
	}
	return invoice, nil
}

func AdaptInvoiceDto(invoice models.Invoice) (InvoiceDto, error) {
	if err := invoice.AttemptCount.Validate(); err != nil {
		return InvoiceDto{}, err
	}
	lines, err := adaptListDto(invoice.Lines, AdaptInvoiceLineDto)
	if err != nil {
		return InvoiceDto{}, err
	}
	metadata, err := adaptMetadataDto(invoice.Metadata)
	if err != nil {
		return InvoiceDto{}, err
	}
	var discount *DiscountDto
	if invoice.Discount != nil {
		d, err := AdaptDiscountDto(*invoice.Discount)
		if err != nil {
			return InvoiceDto{}, err
		}
		discount = &d
	}
	return InvoiceDto{
		Id:                 invoice.Id,
		Object:             "invoice",
		Date:               epoch(invoice.Date),
		Livemode:           invoice.LiveMode,
		Customer:           invoice.Customer,
		Currency:           invoice.Currency,
		Subtotal:           invoice.Subtotal,
		Total:              invoice.Total,
		AmountDue:          invoice.AmountDue,
		StartingBalance:    invoice.StartingBalance,
		EndingBalance:      invoice.EndingBalance,
		Charge:             invoice.Charge,
		Subscription:       invoice.Subscription,
		Paid:               invoice.Paid,
		Closed:             invoice.Closed,
		Attempted:          invoice.Attempted,
		AttemptCount:       invoice.AttemptCount.Int64(),
		PeriodStart:        epoch(invoice.PeriodStart),
		PeriodEnd:          epoch(invoice.PeriodEnd),
		NextPaymentAttempt: optEpoch(invoice.NextPaymentAttempt),
		Lines:              lines,
		Discount:           discount,
		Metadata:           metadata,
	}, nil
}

func EncodeInvoice(invoice models.Invoice) ([]byte, error) {
	dto, err := AdaptInvoiceDto(invoice)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}

func DecodeInvoiceList(raw []byte) (models.List[models.Invoice], error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.List[models.Invoice]{}, err
	}
	return decodeList(root, "", decodeInvoice)
}
