package dto

import (
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type APIErrorDto struct {
	Type    string                  `json:"type"`
	Message string                  `json:"message"`
	Code    pure_utils.Null[string] `json:"code,omitzero"`
	Param   pure_utils.Null[string] `json:"param,omitzero"`
}

// APIErrorEnvelopeDto is the wire shape of a request-level failure: the error
// object nested under a top-level "error" key.
type APIErrorEnvelopeDto struct {
	Error APIErrorDto `json:"error"`
}

// DecodeAPIError decodes an {"error": {...}} body on purpose, where the other
// entity decoders reject one.
func DecodeAPIError(raw []byte) (models.APIError, error) {
	if !gjson.ValidBytes(raw) {
		return models.APIError{}, models.NewDecodeError(models.ErrInvalidJSON, "", "payload is not parseable")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return models.APIError{}, models.NewDecodeError(models.ErrTypeMismatch, "",
			"expected a json object, got %s", typeName(root))
	}
	body := root.Get("error")
	if !body.Exists() {
		return models.APIError{}, missingErr("", "error")
	}
	if !body.IsObject() {
		return models.APIError{}, typeErr("", "error", "object", body)
	}
	return decodeApiError(body, "error")
}

func decodeApiError(obj gjson.Result, path string) (models.APIError, error) {
	var apiErr models.APIError
	var err error
	if apiErr.Type, err = requireString(obj, path, "type"); err != nil {
		return models.APIError{}, err
	}
	if apiErr.Message, err = requireString(obj, path, "message"); err != nil {
		return models.APIError{}, err
	}
	if apiErr.Code, err = optString(obj, path, "code"); err != nil {
		return models.APIError{}, err
	}
	if apiErr.Param, err = optString(obj, path, "param"); err != nil {
		return models.APIError{}, err
	}
	return apiErr, nil
}

func AdaptAPIErrorDto(apiErr models.APIError) APIErrorDto {
	return APIErrorDto{
		Type:    apiErr.Type,
		Message: apiErr.Message,
		Code:    apiErr.Code,
		Param:   apiErr.Param,
	}
}

func EncodeAPIError(apiErr models.APIError) ([]byte, error) {
	return encode(APIErrorEnvelopeDto{Error: AdaptAPIErrorDto(apiErr)})
}
