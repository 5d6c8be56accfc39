package query

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

type Kind int

const (
	KindString Kind = iota
	KindText
	KindID
	KindNumber
	KindDate
)

// Field describes one writable column: how request values for it are
// coerced and what a create does when it is missing.
type Field struct {
	Name     string
	Kind     Kind
	MaxLen   int
	Required bool
	Default  any
}

func String(name string, maxLen int) Field {
	return Field{Name: name, Kind: KindString, MaxLen: maxLen}
}

func Text(name string) Field {
	return Field{Name: name, Kind: KindText}
}

func ID(name string) Field {
	return Field{Name: name, Kind: KindID}
}

func Number(name string) Field {
	return Field{Name: name, Kind: KindNumber}
}

func Date(name string) Field {
	return Field{Name: name, Kind: KindDate}
}

func (f Field) Require() Field {
	f.Required = true
	return f
}

func (f Field) WithDefault(v any) Field {
	f.Default = v
	return f
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseDate accepts a calendar date or a timestamp in one of the layouts
// clients commonly send.
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func (f Field) typeError() *ValidationError {
	switch f.Kind {
	case KindID:
		return invalid(f.Name, "%s must be a positive number", f.Name)
	case KindNumber:
		return invalid(f.Name, "%s must be a non-negative number", f.Name)
	case KindDate:
		return invalid(f.Name, "%s must be a valid date", f.Name)
	default:
		return invalid(f.Name, "%s must be a string", f.Name)
	}
}

// coerce converts a textual value into the parameter bound for f.
// Blank input yields nil.
func (f Field) coerce(s string) (any, error) {
	v := strings.TrimSpace(s)
	switch f.Kind {
	case KindString, KindText:
		if f.Kind == KindString && f.MaxLen > 0 && utf8.RuneCountInString(v) > f.MaxLen {
			return nil, invalid(f.Name, "%s must be %d characters or less", f.Name, f.MaxLen)
		}
		if v == "" {
			return nil, nil
		}
		return v, nil
	case KindID:
		if v == "" {
			return nil, nil
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, f.typeError()
		}
		return n, nil
	case KindNumber:
		if v == "" {
			return nil, nil
		}
		d, err := decimal.NewFromString(v)
		if err != nil || d.IsNegative() {
			return nil, f.typeError()
		}
		return d, nil
	case KindDate:
		if v == "" {
			return nil, nil
		}
		t, err := ParseDate(v)
		if err != nil {
			return nil, f.typeError()
		}
		return t, nil
	}
	return nil, f.typeError()
}

// decode coerces a raw JSON member. An explicit null yields nil.
func (f Field) decode(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, f.typeError()
	}
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return f.coerce(t)
	case json.Number:
		if f.Kind == KindDate {
			return nil, f.typeError()
		}
		return f.coerce(t.String())
	case bool:
		if f.Kind == KindString || f.Kind == KindText {
			return f.coerce(strconv.FormatBool(t))
		}
	}
	return nil, f.typeError()
}
