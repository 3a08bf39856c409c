package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Payload is an opaque string-keyed map used for provider-specific data
// (platform credentials, campaign targeting, processor responses). The domain
// layer never looks inside; each integration owns the shape of its own
// payload. Values decode to the JSON kinds only: string, float64, bool, nil,
// nested map or slice.
type Payload map[string]any

func (p Payload) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

func (p *Payload) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Payload{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return fmt.Errorf("payload: cannot scan %T", src)
}

// StringList persists as a JSON array (campaign keywords, message
// attachments, subscription features).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("string list: cannot scan %T", src)
}
