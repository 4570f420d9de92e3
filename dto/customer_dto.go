package dto

import (
	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type CustomerDto struct {
	Id            string                   `json:"id"`
	Object        string                   `json:"object"`
	Created       int64                    `json:"created"`
	Livemode      bool                     `json:"livemode"`
	Description   null.String              `json:"description"`
	Email         null.String              `json:"email"`
	Balance       int64                    `json:"balance"`
	Currency      pure_utils.Null[string]  `json:"currency,omitzero"`
	Delinquent    bool                     `json:"delinquent"`
	DefaultSource pure_utils.Null[string]  `json:"default_source,omitzero"`
	Cards         *ListDto[CardDto]        `json:"cards,omitempty"`
	Sources       *ListDto[CardDto]        `json:"sources,omitempty"`
	Subscriptions *ListDto[SubscriptionDto] `json:"subscriptions,omitempty"`
	Discount      *DiscountDto             `json:"discount,omitempty"`
	Metadata      MetadataDto              `json:"metadata"`
}

func DecodeCustomer(raw []byte) (models.Customer, error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.Customer{}, err
	}
	return decodeCustomer(root, "")
}

func decodeCustomer(obj gjson.Result, path string) (models.Customer, error) {
	if err := checkObjectTag(obj, path, "customer"); err != nil {
		return models.Customer{}, err
	}
	var customer models.Customer
	var err error
	if customer.Id, err = requireString(obj, path, "id"); err != nil {
		return models.Customer{}, err
	}
	if customer.Created, err = requireTime(obj, path, "created"); err != nil {
		return models.Customer{}, err
	}
	if customer.LiveMode, err = requireBool(obj, path, "livemode"); err != nil {
		return models.Customer{}, err
	}
	if customer.Description, err = nullableString(obj, path, "description"); err != nil {
		return models.Customer{}, err
	}
	if customer.Email, err = nullableString(obj, path, "email"); err != nil {
		return models.Customer{}, err
	}
	if customer.Balance, err = requireInt(obj, path, "balance"); err != nil {
		return models.Customer{}, err
	}
	if customer.Currency, err = optString(obj, path, "currency"); err != nil {
		return models.Customer{}, err
	}
	if customer.Delinquent, err = boolOrDefault(obj, path, "delinquent", false); err != nil {
		return models.Customer{}, err
	}
	if customer.DefaultSource, err = optRef(obj, path, "default_source", decodeCard); err != nil {
		return models.Customer{}, err
	}
	if customer.Cards, err = optList(obj, path, "cards", decodeCard); err != nil {
		return models.Customer{}, err
	}
	if customer.Sources, err = optList(obj, path, "sources", decodeCard); err != nil {
		return models.Customer{}, err
	}
	if customer.Subscriptions, err = optList(obj, path, "subscriptions", decodeSubscription); err != nil {
		return models.Customer{}, err
	}
	if customer.Discount, err = optObject(obj, path, "discount", decodeDiscount); err != nil {
		return models.Customer{}, err
	}
	if customer.Metadata, err = decodeMetadata(obj, path); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func AdaptCustomerDto(customer models.Customer) (CustomerDto, error) {
	metadata, err := adaptMetadataDto(customer.Metadata)
	if err != nil {
		return CustomerDto{}, err
	}
	cards, err := adaptOptListDto(customer.Cards, AdaptCardDto)
	if err != nil {
		return CustomerDto{}, err
	}
	sources, err := adaptOptListDto(customer.Sources, AdaptCardDto)
	if err != nil {
		return CustomerDto{}, err
	}
	subscriptions, err := adaptOptListDto(customer.Subscriptions, AdaptSubscriptionDto)
	if err != nil {
		return CustomerDto{}, err
	}
	var discount *DiscountDto
	if customer.Discount != nil {
		d, err := AdaptDiscountDto(*customer.Discount)
		if err != nil {
			return CustomerDto{}, err
		}
		discount = &d
	}
	return CustomerDto{
		Id:            customer.Id,
		Object:        "customer",
		Created:       epoch(customer.Created),
		Livemode:      customer.LiveMode,
		Description:   customer.Description,
		Email:         customer.Email,
		Balance:       customer.Balance,
		Currency:      customer.Currency,
		Delinquent:    customer.Delinquent,
		DefaultSource: optRefId(customer.DefaultSource),
		Cards:         cards,
		Sources:       sources,
		Subscriptions: subscriptions,
		Discount:      discount,
		Metadata:      metadata,
	}, nil
}

func EncodeCustomer(customer models.Customer) ([]byte, error) {
	dto, err := AdaptCustomerDto(customer)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}

func DecodeCustomerList(raw []byte) (models.List[models.Customer], error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.List[models.Customer]{}, err
	}
	return decodeList(root, "", decodeCustomer)
}
