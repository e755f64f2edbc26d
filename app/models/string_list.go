package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/davlatbek/go-catalog/app/errs"
)

// StringList is an ordered sequence of strings stored as a JSON text column.
// It backs the tag and feature fields of Product.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("malformed string list column: %w", err)
	}
	*l = values
	return nil
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	parsed, err := StringListFromJSON(data)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// StringListFromJSON decodes a submitted tag/feature value. It accepts a JSON
// array of strings, or a JSON string that itself encodes such an array (the
// shape a text input submits). Anything else fails with errs.ErrInvalidList.
func StringListFromJSON(data []byte) (StringList, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		return StringList(values), nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		if strings.TrimSpace(encoded) == "" {
			return nil, nil
		}
		if err := json.Unmarshal([]byte(encoded), &values); err == nil {
			return StringList(values), nil
		}
	}

	return nil, errs.ErrInvalidList
}

// ParseStringList collects submitted repeater inputs into a StringList,
// preserving order and dropping blank entries.
func ParseStringList(values []string) StringList {
	var list StringList
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		list = append(list, v)
	}
	return list
}
