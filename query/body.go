package query

import (
	"encoding/json"
	"strings"
)

// Body is a decoded JSON object whose members keep their raw encoding, so an
// absent member and an explicit null stay distinguishable.
type Body map[string]json.RawMessage

// FormBody builds a Body from plain form values.
func FormBody(values map[string]string) Body {
	b := make(Body, len(values))
	for k, v := range values {
		raw, _ := json.Marshal(v)
		b[k] = raw
	}
	return b
}

func (b Body) Has(name string) bool {
	_, ok := b[name]
	return ok
}

// Text returns the trimmed string value of a member, or "" when it is absent,
// null or not a string.
func (b Body) Text(name string) string {
	raw, ok := b[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// Set stores v under name in its JSON encoding.
func (b Body) Set(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b[name] = raw
	return nil
}
