package dto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

// objectDecoder decodes one entity out of an already-located json object.
// path is the dotted location of obj within the top-level payload, used only
// for error reporting.
type objectDecoder[T any] func(obj gjson.Result, path string) (T, error)

// parseObject checks that the payload is valid json, is an object, and is not
// an API error body. Every top-level decode goes through here, so a caller
// always learns the difference between "the entity was malformed" and "the
// API answered with an error instead of the entity".
func parseObject(raw []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, models.NewDecodeError(models.ErrInvalidJSON, "", "payload is not parseable")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return gjson.Result{}, models.NewDecodeError(models.ErrTypeMismatch, "", "expected a json object, got %s", typeName(root))
	}
	if errBody := root.Get("error"); errBody.Exists() && errBody.IsObject() {
		apiErr, err := decodeApiError(errBody, "error")
		if err != nil {
			return gjson.Result{}, err
		}
		return gjson.Result{}, models.DecodeError{
			Kind:     models.ErrAPIError,
			Path:     "error",
			Reason:   apiErr.Error(),
			APIError: &apiErr,
		}
	}
	return root, nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func typeName(v gjson.Result) string {
	switch {
	case v.IsObject():
		return "object"
	case v.IsArray():
		return "array"
	case v.Type == gjson.String:
		return "string"
	case v.Type == gjson.Number:
		return "number"
	case v.IsBool():
		return "boolean"
	case v.Type == gjson.Null:
		return "null"
	}
	return "unknown"
}

func missingErr(path, name string) error {
	return models.NewDecodeError(models.ErrMissingField, joinPath(path, name), "field is required")
}

func typeErr(path, name, want string, got gjson.Result) error {
	return models.NewDecodeError(models.ErrTypeMismatch, joinPath(path, name),
		"expected %s, got %s", want, typeName(got))
}

// checkObjectTag rejects payloads whose "object" discriminator names a
// different entity. The tag is not required: the check only fires when the
// server sent one.
func checkObjectTag(obj gjson.Result, path, want string) error {
	tag := obj.Get("object")
	if !tag.Exists() {
		return nil
	}
	if tag.Type != gjson.String {
		return typeErr(path, "object", "string", tag)
	}
	if tag.Str != want {
		return models.NewDecodeError(models.ErrTypeMismatch, joinPath(path, "object"),
			"expected object %q, got %q", want, tag.Str)
	}
	return nil
}

func requireString(obj gjson.Result, path, name string) (string, error) {
	v := obj.Get(name)
	if !v.Exists() {
		return "", missingErr(path, name)
	}
	if v.Type != gjson.String {
		return "", typeErr(path, name, "string", v)
	}
	return v.Str, nil
}

func requireInt(obj gjson.Result, path, name string) (int64, error) {
	v := obj.Get(name)
	if !v.Exists() {
		return 0, missingErr(path, name)
	}
	i, err := strconv.ParseInt(v.Raw, 10, 64)
	if err != nil {
		return 0, typeErr(path, name, "integer", v)
	}
	return i, nil
}

func requireBool(obj gjson.Result, path, name string) (bool, error) {
	v := obj.Get(name)
	if !v.Exists() {
		return false, missingErr(path, name)
	}
	if !v.IsBool() {
		return false, typeErr(path, name, "boolean", v)
	}
	return v.Bool(), nil
}

// boolOrDefault covers fields the API documents as defaulted: absent and null
// both substitute the default instead of failing.
func boolOrDefault(obj gjson.Result, path, name string, def bool) (bool, error) {
	v := obj.Get(name)
	if !v.Exists() || v.Type == gjson.Null {
		return def, nil
	}
	if !v.IsBool() {
		return false, typeErr(path, name, "boolean", v)
	}
	return v.Bool(), nil
}

// Timestamps travel as unix epoch seconds.
func requireTime(obj gjson.Result, path, name string) (time.Time, error) {
	i, err := requireInt(obj, path, name)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(i, 0).UTC(), nil
}

func requirePosInt(obj gjson.Result, path, name string) (models.PosInt, error) {
	i, err := requireInt(obj, path, name)
	if err != nil {
		return 0, err
	}
	p, err := models.PosIntFrom(i)
	if err != nil {
		return 0, models.NewDecodeError(models.ErrValidation, joinPath(path, name),
			"expected a positive integer, got %d", i)
	}
	return p, nil
}

func requireNonNegInt(obj gjson.Result, path, name string) (models.NonNegInt, error) {
	i, err := requireInt(obj, path, name)
	if err != nil {
		return 0, err
	}
	n, err := models.NonNegIntFrom(i)
	if err != nil {
		return 0, models.NewDecodeError(models.ErrValidation, joinPath(path, name),
			"expected a non-negative integer, got %d", i)
	}
	return n, nil
}

func nonNegIntOrZero(obj gjson.Result, path, name string) (models.NonNegInt, error) {
	v := obj.Get(name)
	if !v.Exists() || v.Type == gjson.Null {
		return 0, nil
	}
	return requireNonNegInt(obj, path, name)
}

func requireEnum[T any](obj gjson.Result, path, name string, from func(string) (T, error)) (T, error) {
	var zero T
	s, err := requireString(obj, path, name)
	if err != nil {
		return zero, err
	}
	t, err := from(s)
	if err != nil {
		return zero, models.NewDecodeError(models.ErrUnknownEnumTag, joinPath(path, name),
			"unexpected tag %q", s)
	}
	return t, nil
}

// optString distinguishes an absent field from an explicit null.
func optString(obj gjson.Result, path, name string) (pure_utils.Null[string], error) {
	v := obj.Get(name)
	if !v.Exists() {
		return pure_utils.Null[string]{}, nil
	}
	if v.Type == gjson.Null {
		return pure_utils.NullValue[string](), nil
	}
	if v.Type != gjson.String {
		return pure_utils.Null[string]{}, typeErr(path, name, "string", v)
	}
	return pure_utils.NullFrom(v.Str), nil
}

func optInt(obj gjson.Result, path, name string) (pure_utils.Null[int64], error) {
	v := obj.Get(name)
	if !v.Exists() {
		return pure_utils.Null[int64]{}, nil
	}
	if v.Type == gjson.Null {
		return pure_utils.NullValue[int64](), nil
	}
	i, err := strconv.ParseInt(v.Raw, 10, 64)
	if err != nil {
		return pure_utils.Null[int64]{}, typeErr(path, name, "integer", v)
	}
	return pure_utils.NullFrom(i), nil
}

func optPosInt(obj gjson.Result, path, name string) (pure_utils.Null[models.PosInt], error) {
	i, err := optInt(obj, path, name)
	if err != nil || !i.Set {
		return pure_utils.Null[models.PosInt]{}, err
	}
	if i.Ptr() == nil {
		return pure_utils.NullValue[models.PosInt](), nil
	}
	p, perr := models.PosIntFrom(i.Value())
	if perr != nil {
		return pure_utils.Null[models.PosInt]{}, models.NewDecodeError(models.ErrValidation,
			joinPath(path, name), "expected a positive integer, got %d", i.Value())
	}
	return pure_utils.NullFrom(p), nil
}

func optTime(obj gjson.Result, path, name string) (pure_utils.Null[time.Time], error) {
	i, err := optInt(obj, path, name)
	if err != nil || !i.Set {
		return pure_utils.Null[time.Time]{}, err
	}
	if i.Ptr() == nil {
		return pure_utils.NullValue[time.Time](), nil
	}
	return pure_utils.NullFrom(time.Unix(i.Value(), 0).UTC()), nil
}

// nullableString is for fields the API always sends, null when unset. The
// absent/null distinction carries no meaning for them, so both land on an
// invalid null.String.
func nullableString(obj gjson.Result, path, name string) (null.String, error) {
	v := obj.Get(name)
	if !v.Exists() || v.Type == gjson.Null {
		return null.String{}, nil
	}
	if v.Type != gjson.String {
		return null.String{}, typeErr(path, name, "string", v)
	}
	return null.StringFrom(v.Str), nil
}

func nullableInt(obj gjson.Result, path, name string) (null.Int, error) {
	v := obj.Get(name)
	if !v.Exists() || v.Type == gjson.Null {
		return null.Int{}, nil
	}
	i, err := strconv.ParseInt(v.Raw, 10, 64)
	if err != nil {
		return null.Int{}, typeErr(path, name, "integer", v)
	}
	return null.IntFrom(i), nil
}

// decodeRef decodes an expandable reference by shape: an embedded object when
// the field holds one, the shallow id form when it holds a string. The caller
// never declares which form to expect.
func decodeRef[T any](v gjson.Result, path string, elem objectDecoder[T]) (models.Ref[T], error) {
	switch {
	case v.IsObject():
		value, err := elem(v, path)
		if err != nil {
			return models.Ref[T]{}, err
		}
		return models.Ref[T]{Id: v.Get("id").Str, Expanded: &value}, nil
	case v.Type == gjson.String:
		return models.RefFromId[T](v.Str), nil
	}
	return models.Ref[T]{}, models.NewDecodeError(models.ErrTypeMismatch, path,
		"expected an id or an embedded object, got %s", typeName(v))
}

func optRef[T any](obj gjson.Result, path, name string, elem objectDecoder[T]) (pure_utils.Null[models.Ref[T]], error) {
	v := obj.Get(name)
	if !v.Exists() {
		return pure_utils.Null[models.Ref[T]]{}, nil
	}
	if v.Type == gjson.Null {
		return pure_utils.NullValue[models.Ref[T]](), nil
	}
	ref, err := decodeRef(v, joinPath(path, name), elem)
	if err != nil {
		return pure_utils.Null[models.Ref[T]]{}, err
	}
	return pure_utils.NullFrom(ref), nil
}

// decodeMetadata returns the ordered pairs of the metadata object, defaulting
// to empty when the field is absent or null.
func decodeMetadata(obj gjson.Result, path string) (models.Metadata, error) {
	v := obj.Get("metadata")
	md := models.Metadata{}
	if !v.Exists() || v.Type == gjson.Null {
		return md, nil
	}
	if !v.IsObject() {
		return nil, typeErr(path, "metadata", "object", v)
	}
	var pairErr error
	v.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			pairErr = typeErr(joinPath(path, "metadata"), key.Str, "string", value)
			return false
		}
		md = append(md, models.MetadataPair{Key: key.Str, Value: value.Str})
		return true
	})
	if pairErr != nil {
		return nil, pairErr
	}
	if err := md.Validate(); err != nil {
		return nil, models.DecodeError{
			Kind:   models.ErrValidation,
			Path:   joinPath(path, "metadata"),
			Reason: fmt.Sprintf("%v", err),
		}
	}
	return md, nil
}

func decodeList[T any](v gjson.Result, path string, elem objectDecoder[T]) (models.List[T], error) {
	if !v.IsObject() {
		return models.List[T]{}, models.NewDecodeError(models.ErrTypeMismatch, path,
			"expected a list object, got %s", typeName(v))
	}
	if err := checkObjectTag(v, path, "list"); err != nil {
		return models.List[T]{}, err
	}
	data := v.Get("data")
	if !data.Exists() {
		return models.List[T]{}, missingErr(path, "data")
	}
	if !data.IsArray() {
		return models.List[T]{}, typeErr(path, "data", "array", data)
	}
	elements := data.Array()
	items := make([]T, 0, len(elements))
	for i, e := range elements {
		elemPath := fmt.Sprintf("%s[%d]", joinPath(path, "data"), i)
		if !e.IsObject() {
			return models.List[T]{}, models.NewDecodeError(models.ErrTypeMismatch, elemPath,
				"expected an object, got %s", typeName(e))
		}
		item, err := elem(e, elemPath)
		if err != nil {
			return models.List[T]{}, err
		}
		items = append(items, item)
	}
	hasMore, err := requireBool(v, path, "has_more")
	if err != nil {
		return models.List[T]{}, err
	}
	url, err := requireString(v, path, "url")
	if err != nil {
		return models.List[T]{}, err
	}
	totalCount, err := optInt(v, path, "total_count")
	if err != nil {
		return models.List[T]{}, err
	}
	return models.List[T]{Data: items, HasMore: hasMore, Url: url, TotalCount: totalCount}, nil
}

func optList[T any](obj gjson.Result, path, name string, elem objectDecoder[T]) (*models.List[T], error) {
	v := obj.Get(name)
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	l, err := decodeList(v, joinPath(path, name), elem)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func requireObject[T any](obj gjson.Result, path, name string, elem objectDecoder[T]) (T, error) {
	var zero T
	v := obj.Get(name)
	if !v.Exists() {
		return zero, missingErr(path, name)
	}
	if !v.IsObject() {
		return zero, typeErr(path, name, "object", v)
	}
	return elem(v, joinPath(path, name))
}

func optObject[T any](obj gjson.Result, path, name string, elem objectDecoder[T]) (*T, error) {
	v := obj.Get(name)
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	if !v.IsObject() {
		return nil, typeErr(path, name, "object", v)
	}
	t, err := elem(v, joinPath(path, name))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func requireList[T any](obj gjson.Result, path, name string, elem objectDecoder[T]) (models.List[T], error) {
	v := obj.Get(name)
	if !v.Exists() {
		return models.List[T]{}, missingErr(path, name)
	}
	return decodeList(v, joinPath(path, name), elem)
}

func optEnum[T any](obj gjson.Result, path, name string, from func(string) (T, error)) (pure_utils.Null[T], error) {
	s, err := optString(obj, path, name)
	if err != nil || !s.Set {
		return pure_utils.Null[T]{}, err
	}
	if s.Ptr() == nil {
		return pure_utils.NullValue[T](), nil
	}
	t, terr := from(s.Value())
	if terr != nil {
		return pure_utils.Null[T]{}, models.NewDecodeError(models.ErrUnknownEnumTag,
			joinPath(path, name), "unexpected tag %q", s.Value())
	}
	return pure_utils.NullFrom(t), nil
}
