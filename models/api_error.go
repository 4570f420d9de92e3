package models

import "github.com/payline/payline-go/pure_utils"

// APIError is the body the API sends in place of an entity when a request
// fails, under a top-level "error" key.
type APIError struct {
	Type    string
	Message string
	Code    pure_utils.Null[string]
	Param   pure_utils.Null[string]
}

func (e APIError) Error() string {
	if code := e.Code.Ptr(); code != nil {
		return e.Type + " (" + *code + "): " + e.Message
	}
	return e.Type + ": " + e.Message
}
