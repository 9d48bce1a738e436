package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

const MetadataKeyAvgResponseTime = "avg_response_time"

var ErrUnsupportedMetadataValue = errors.New("unsupported metadata value")

// Metadata is a JSON object restricted to string, float64, bool, nil, nested Metadata-compatible
// maps and slices. It is stored in a jsonb column and always serializes as an object or null.
type Metadata map[string]interface{}

// NewMetadata copies raw into a Metadata, converting every numeric kind to float64.
func NewMetadata(raw map[string]interface{}) (Metadata, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(Metadata, len(raw))
	for k, v := range raw {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("metadata key %q: %w", k, err)
		}
		out[k] = nv
	}
	return out, nil
}

func normalizeValue(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case nil, string, bool:
		return t, nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, ErrUnsupportedMetadataValue
		}
		return t, nil
	case float32:
		return normalizeValue(float64(t))
	case int:
		return float64(t), nil
	case int8:
		return float64(t), nil
	case int16:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint:
		return float64(t), nil
	case uint8:
		return float64(t), nil
	case uint16:
		return float64(t), nil
	case uint32:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, ErrUnsupportedMetadataValue
		}
		return f, nil
	case Metadata:
		return NewMetadata(t)
	case map[string]interface{}:
		m, err := NewMetadata(t)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}(m), nil
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			nv, err := normalizeValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case []string:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = item
		}
		return out, nil
	default:
		return nil, ErrUnsupportedMetadataValue
	}
}

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan never fails: anything that is not a JSON object becomes nil.
func (m *Metadata) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		*m = nil
		return nil
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		*m = nil
		return nil
	}
	*m = raw
	return nil
}

func (Metadata) GormDataType() string {
	return "jsonb"
}

// Float returns the numeric value stored under key.
func (m Metadata) Float(key string) (float64, bool) {
	f, ok := m[key].(float64)
	return f, ok
}
