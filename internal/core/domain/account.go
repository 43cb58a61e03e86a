package domain

import "strings"

// AccountPrefix is the literal prefix of ad account node ids.
const AccountPrefix = "act_"

// NormalizeAccountID prefixes a bare numeric ad account id with "act_".
// Ids that already carry the prefix are returned unchanged.
func NormalizeAccountID(id string) string {
	if strings.HasPrefix(id, AccountPrefix) {
		return id
	}
	return AccountPrefix + id
}
