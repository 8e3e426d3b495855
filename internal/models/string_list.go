package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a list of strings stored as JSON text. Reads tolerate every
// encoding found in the passeios and guias tables: JSON text, Postgres array
// literals, native arrays and plain comma separated strings. Non-string
// elements and blanks are dropped; array elements are kept as written.
type StringList []string

func (l *StringList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = StringList{}
	case []byte:
		*l = ParseStringList(string(v))
	case string:
		*l = ParseStringList(v)
	case []string:
		*l = cleanStrings(v)
	case []any:
		*l = filterStrings(v)
	default:
		return fmt.Errorf("string list: unsupported type %T", value)
	}
	return nil
}

func (l StringList) Value() (driver.Value, error) {
	b, err := json.Marshal(l.orEmpty())
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(l.orEmpty()))
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*l = StringList{}
	case string:
		*l = ParseStringList(v)
	case []any:
		*l = filterStrings(v)
	default:
		*l = StringList{}
	}
	return nil
}

func (l StringList) orEmpty() StringList {
	if l == nil {
		return StringList{}
	}
	return l
}

// ParseStringList decodes a textual list: a JSON array, a JSON string, a
// Postgres array literal, or as a last resort a comma separated string.
func ParseStringList(s string) StringList {
	s = strings.TrimSpace(s)
	if s == "" {
		return StringList{}
	}

	var raw any
	if err := json.Unmarshal([]byte(s), &raw); err == nil {
		switch v := raw.(type) {
		case []any:
			return filterStrings(v)
		case string:
			return ParseStringList(v)
		case nil:
			return StringList{}
		default:
			return StringList{s}
		}
	}

	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		s = s[1 : len(s)-1]
		parts := strings.Split(s, ",")
		for i, p := range parts {
			parts[i] = strings.Trim(strings.TrimSpace(p), `"`)
		}
		return cleanStrings(parts)
	}

	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return cleanStrings(parts)
}

func filterStrings(in []any) StringList {
	out := StringList{}
	for _, item := range in {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func cleanStrings(in []string) StringList {
	out := StringList{}
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
