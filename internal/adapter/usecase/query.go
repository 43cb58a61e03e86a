package usecase

import (
	"errors"
	"net/url"
	"strings"
)

var errMissingID = errors.New("response has no id")

// tokenQuery builds the query of a Graph call: the access token and, when
// fields is not empty, the comma separated field selection.
func tokenQuery(token string, fields []string) url.Values {
	q := url.Values{"access_token": {token}}
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}
	return q
}
