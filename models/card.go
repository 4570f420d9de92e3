package models

import (
	"github.com/guregu/null/v5"

	"github.com/payline/payline-go/pure_utils"
)

type Card struct {
	Id          string
	Brand       string
	Last4       string
	ExpMonth    PosInt
	ExpYear     PosInt
	Fingerprint string
	Funding     string
	Name        null.String
	Country     null.String

	// Customer is expandable: a bare id under normal requests, the embedded
	// customer when the caller asked for expansion. An embedded customer's own
	// card references come back shallow, so the graph stays finite.
	Customer pure_utils.Null[Ref[Customer]]
}
