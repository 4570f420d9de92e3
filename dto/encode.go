package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

// MetadataDto marshals metadata pairs as a json object, writing keys in pair
// order so a decoded payload re-encodes byte-for-byte.
type MetadataDto models.Metadata

func (m MetadataDto) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(pair.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func adaptMetadataDto(m models.Metadata) (MetadataDto, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return MetadataDto(m), nil
}

func epoch(t time.Time) int64 {
	return t.Unix()
}

func optEpoch(t pure_utils.Null[time.Time]) pure_utils.Null[int64] {
	return pure_utils.MapNull(t, epoch)
}

// Requests never carry embedded objects for expandable fields, so a reference
// always encodes to its bare id.
func refId[T any](r models.Ref[T]) string {
	return r.Id
}

func optRefId[T any](r pure_utils.Null[models.Ref[T]]) pure_utils.Null[string] {
	return pure_utils.MapNull(r, refId[T])
}

type ListDto[T any] struct {
	Object     string                  `json:"object"`
	Data       []T                     `json:"data"`
	HasMore    bool                    `json:"has_more"`
	Url        string                  `json:"url"`
	TotalCount pure_utils.Null[int64] `json:"total_count,omitzero"`
}

func adaptListDto[M, D any](l models.List[M], elem func(M) (D, error)) (ListDto[D], error) {
	data, err := pure_utils.MapErr(l.Data, elem)
	if err != nil {
		return ListDto[D]{}, err
	}
	if data == nil {
		data = []D{}
	}
	return ListDto[D]{
		Object:     "list",
		Data:       data,
		HasMore:    l.HasMore,
		Url:        l.Url,
		TotalCount: l.TotalCount,
	}, nil
}

func adaptOptListDto[M, D any](l *models.List[M], elem func(M) (D, error)) (*ListDto[D], error) {
	if l == nil {
		return nil, nil
	}
	dto, err := adaptListDto(*l, elem)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

func encode(dto any) ([]byte, error) {
	return json.Marshal(dto)
}
