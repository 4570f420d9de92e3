package models

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/payline/payline-go/pure_utils"
)

type Plan struct {
	Id                  string
	Created             time.Time
	LiveMode            bool
	Amount              NonNegInt
	Currency            string
	Interval            string
	IntervalCount       NonNegInt
	Name                string
	TrialPeriodDays     pure_utils.Null[PosInt]
	StatementDescriptor null.String
	Metadata            Metadata
}
