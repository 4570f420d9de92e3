package dto

import (
	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type CardDto struct {
	Id          string                  `json:"id"`
	Object      string                  `json:"object"`
	Brand       string                  `json:"brand"`
	Last4       string                  `json:"last4"`
	ExpMonth    int64                   `json:"exp_month"`
	ExpYear     int64                   `json:"exp_year"`
	Fingerprint string                  `json:"fingerprint"`
	Funding     string                  `json:"funding"`
	Name        null.String             `json:"name"`
	Country     null.String             `json:"country"`
	Customer    pure_utils.Null[string] `json:"customer,omitzero"`
}

func DecodeCard(raw []byte) (models.Card, error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.Card{}, err
	}
	return decodeCard(root, "")
}

func decodeCard(obj gjson.Result, path string) (models.Card, error) {
	if err := checkObjectTag(obj, path, "card"); err != nil {
		return models.Card{}, err
	}
	var card models.Card
	var err error
	if card.Id, err = requireString(obj, path, "id"); err != nil {
		return models.Card{}, err
	}
	if card.Brand, err = requireString(obj, path, "brand"); err != nil {
		return models.Card{}, err
	}
	if card.Last4, err = requireString(obj, path, "last4"); err != nil {
		return models.Card{}, err
	}
	if card.ExpMonth, err = requirePosInt(obj, path, "exp_month"); err != nil {
		return models.Card{}, err
	}
	if card.ExpYear, err = requirePosInt(obj, path, "exp_year"); err != nil {
		return models.Card{}, err
	}
	if card.Fingerprint, err = requireString(obj, path, "fingerprint"); err != nil {
		return models.Card{}, err
	}
	if card.Funding, err = requireString(obj, path, "funding"); err != nil {
		return models.Card{}, err
	}
	if card.Name, err = nullableString(obj, path, "name"); err != nil {
		return models.Card{}, err
	}
	if card.Country, err = nullableString(obj, path, "country"); err != nil {
		return models.Card{}, err
	}
	if card.Customer, err = optRef(obj, path, "customer", decodeCustomer); err != nil {
		return models.Card{}, err
	}
	return card, nil
}

func AdaptCardDto(card models.Card) (CardDto, error) {
	if err := card.ExpMonth.Validate(); err != nil {
		return CardDto{}, err
	}
	if err := card.ExpYear.Validate(); err != nil {
		return CardDto{}, err
	}
	return CardDto{
		Id:          card.Id,
		Object:      "card",
		Brand:       card.Brand,
		Last4:       card.Last4,
		ExpMonth:    card.ExpMonth.Int64(),
		ExpYear:     card.ExpYear.Int64(),
		Fingerprint: card.Fingerprint,
		Funding:     card.Funding,
		Name:        card.Name,
		Country:     card.Country,
		Customer:    optRefId(card.Customer),
	}, nil
}

func EncodeCard(card models.Card) ([]byte, error) {
	dto, err := AdaptCardDto(card)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}

func DecodeCardList(raw []byte) (models.List[models.Card], error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.List[models.Card]{}, err
	}
	return decodeList(root, "", decodeCard)
}

func EncodeCardList(list models.List[models.Card]) ([]byte, error) {
	dto, err := adaptListDto(list, AdaptCardDto)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}
