package trip

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Record is one raw day- or event-like JSON object.
type Record map[string]any

// Result is a decoded trip-planning payload of unknown shape.
type Result struct {
	raw Record
}

// NewResult wraps an already-decoded JSON object.
func NewResult(raw map[string]any) *Result {
	return &Result{raw: raw}
}

// Decode reads a JSON trip result from r.
func Decode(r io.Reader) (*Result, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode trip result: %w", err)
	}
	return &Result{raw: raw}, nil
}

// Root returns the top-level object as a Record, nil for a nil Result.
func (r *Result) Root() Record {
	if r == nil {
		return nil
	}
	return r.raw
}

// ArrayAt walks nested objects along path and returns the array found at the
// final key. ok is false when any step is missing or the value is not an
// array.
func (r *Result) ArrayAt(path ...string) ([]any, bool) {
	if r == nil || len(path) == 0 {
		return nil, false
	}
	cur := r.raw
	for _, key := range path[:len(path)-1] {
		next, ok := cur[key].(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	arr, ok := cur[path[len(path)-1]].([]any)
	return arr, ok
}

// RecordsAt returns the objects of the array at path, skipping entries that
// are not objects.
func (r *Result) RecordsAt(path ...string) ([]Record, bool) {
	arr, ok := r.ArrayAt(path...)
	if !ok {
		return nil, false
	}
	return toRecords(arr), true
}

// First returns the value of the first present, non-nil key.
func (rec Record) First(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := rec[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String returns the first non-empty string value among keys. Numeric values
// are stringified, so identifiers sent as numbers still resolve.
func (rec Record) String(keys ...string) string {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			return v.String()
		}
	}
	return ""
}

// Float returns the first numeric value among keys. Numeric strings count.
func (rec Record) Float(keys ...string) (float64, bool) {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case float64:
			return v, true
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return f, true
			}
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// Records returns the objects of the array under key; nil when the key is
// absent or not an array.
func (rec Record) Records(key string) []Record {
	arr, ok := rec[key].([]any)
	if !ok {
		return nil
	}
	return toRecords(arr)
}

func toRecords(arr []any) []Record {
	out := make([]Record, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}
