package mcpadapter

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"meta-ads-mcp/internal/core/domain"
)

// args reads typed tool arguments. The first failure is kept in err and
// makes every later read a no-op, so a handler checks err once.
type args struct {
	values map[string]any
	err    error
}

func newArgs(values map[string]any) *args {
	if values == nil {
		values = map[string]any{}
	}
	return &args{values: values}
}

func (a *args) fail(format string, v ...any) {
	if a.err == nil {
		a.err = fmt.Errorf("%w: %s", domain.ErrInvalidArguments, fmt.Sprintf(format, v...))
	}
}

func (a *args) present(name string) bool {
	v, ok := a.values[name]
	return ok && v != nil
}

// requiredString returns a non-empty string argument.
func (a *args) requiredString(name string) string {
	if a.err != nil {
		return ""
	}
	s := a.optionalString(name)
	if a.err == nil && s == "" {
		a.fail("%s is required", name)
	}
	return s
}

// presentString returns a string argument that must be supplied but may be
// empty.
func (a *args) presentString(name string) string {
	if a.err != nil {
		return ""
	}
	if !a.present(name) {
		a.fail("%s is required", name)
		return ""
	}
	return a.optionalString(name)
}

func (a *args) optionalString(name string) string {
	if a.err != nil || !a.present(name) {
		return ""
	}
	s, ok := a.values[name].(string)
	if !ok {
		a.fail("%s must be a string", name)
	}
	return s
}

// requiredAmount returns a currency amount given either as a JSON number
// or as a decimal string.
func (a *args) requiredAmount(name string) decimal.Decimal {
	if a.err != nil {
		return decimal.Zero
	}
	if !a.present(name) {
		a.fail("%s is required", name)
		return decimal.Zero
	}
	return a.optionalAmount(name)
}

func (a *args) optionalAmount(name string) decimal.Decimal {
	if a.err != nil || !a.present(name) {
		return decimal.Zero
	}
	switch v := a.values[name].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			a.fail("%s must be a number", name)
		}
		return d
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			a.fail("%s must be a number", name)
		}
		return d
	default:
		a.fail("%s must be a number", name)
		return decimal.Zero
	}
}

func (a *args) stringSlice(name string) []string {
	if a.err != nil || !a.present(name) {
		return nil
	}
	switch v := a.values[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				a.fail("%s must be an array of strings", name)
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		a.fail("%s must be an array of strings", name)
		return nil
	}
}

func (a *args) object(name string) map[string]any {
	if a.err != nil || !a.present(name) {
		return nil
	}
	m, ok := a.values[name].(map[string]any)
	if !ok {
		a.fail("%s must be an object", name)
	}
	return m
}
