package dto

import (
	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

type PlanDto struct {
	Id                  string                 `json:"id"`
	Object              string                 `json:"object"`
	Created             int64                  `json:"created"`
	Livemode            bool                   `json:"livemode"`
	Amount              int64                  `json:"amount"`
	Currency            string                 `json:"currency"`
	Interval            string                 `json:"interval"`
	IntervalCount       int64                  `json:"interval_count"`
	Name                string                 `json:"name"`
	TrialPeriodDays     pure_utils.Null[int64] `json:"trial_period_days,omitzero"`
	StatementDescriptor null.String            `json:"statement_descriptor"`
	Metadata            MetadataDto            `json:"metadata"`
}

func DecodePlan(raw []byte) (models.Plan, error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.Plan{}, err
	}
	return decodePlan(root, "")
}

func decodePlan(obj gjson.Result, path string) (models.Plan, error) {
	if err := checkObjectTag(obj, path, "plan"); err != nil {
		return models.Plan{}, err
	}
	var plan models.Plan
	var err error
	if plan.Id, err = requireString(obj, path, "id"); err != nil {
		return models.Plan{}, err
	}
	if plan.Created, err = requireTime(obj, path, "created"); err != nil {
		return models.Plan{}, err
	}
	if plan.LiveMode, err = requireBool(obj, path, "livemode"); err != nil {
		return models.Plan{}, err
	}
	if plan.Amount, err = requireNonNegInt(obj, path, "amount"); err != nil {
		return models.Plan{}, err
	}
	if plan.Currency, err = requireString(obj, path, "currency"); err != nil {
		return models.Plan{}, err
	}
	if plan.Interval, err = requireString(obj, path, "interval"); err != nil {
		return models.Plan{}, err
	}
	if plan.IntervalCount, err = requireNonNegInt(obj, path, "interval_count"); err != nil {
		return models.Plan{}, err
	}
	if plan.Name, err = requireString(obj, path, "name"); err != nil {
		return models.Plan{}, err
	}
	if plan.TrialPeriodDays, err = optPosInt(obj, path, "trial_period_days"); err != nil {
		return models.Plan{}, err
	}
	if plan.StatementDescriptor, err = nullableString(obj, path, "statement_descriptor"); err != nil {
		return models.Plan{}, err
	}
	if plan.Metadata, err = decodeMetadata(obj, path); err != nil {
		return models.Plan{}, err
	}
	return plan, nil
}

func AdaptPlanDto(plan models.Plan) (PlanDto, error) {
	if err := plan.Amount.Validate(); err != nil {
		return PlanDto{}, err
	}
	if err := plan.IntervalCount.Validate(); err != nil {
		return PlanDto{}, err
	}
	metadata, err := adaptMetadataDto(plan.Metadata)
	if err != nil {
		return PlanDto{}, err
	}
	return PlanDto{
		Id:                  plan.Id,
		Object:              "plan",
		Created:             epoch(plan.Created),
		Livemode:            plan.LiveMode,
		Amount:              plan.Amount.Int64(),
		Currency:            plan.Currency,
		Interval:            plan.Interval,
		IntervalCount:       plan.IntervalCount.Int64(),
		Name:                plan.Name,
		TrialPeriodDays:     pure_utils.MapNull(plan.TrialPeriodDays, models.PosInt.Int64),
		StatementDescriptor: plan.StatementDescriptor,
		Metadata:            metadata,
	}, nil
}

func EncodePlan(plan models.Plan) ([]byte, error) {
	dto, err := AdaptPlanDto(plan)
	if err != nil {
		return nil, err
	}
	return encode(dto)
}

func DecodePlanList(raw []byte) (models.List[models.Plan], error) {
	root, err := parseObject(raw)
	if err != nil {
		return models.List[models.Plan]{}, err
	}
	return decodeList(root, "", decodePlan)
}
