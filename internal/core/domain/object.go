package domain

import (
	"encoding/json"
	"strconv"
)

// Object is a decoded Graph API response body. The platform owns its shape,
// so it is passed back to tool callers unmodified.
type Object map[string]any

// ID returns the "id" field of the object. Graph returns ids as strings, but
// a numeric id is tolerated and formatted without exponent.
func (o Object) ID() string {
	switch v := o["id"].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
