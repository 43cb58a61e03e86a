package domain

import "strings"

// Fixed custom audience attributes for customer-file audiences.
const (
	AudienceSubtypeCustom      = "CUSTOM"
	CustomerFileSourceUserOnly = "USER_PROVIDED_ONLY"
	SchemaPhoneSHA256          = "PHONE_SHA256"

	// HashedPhoneHeader is the column label of exported hash files. A first
	// row carrying it is a header, not an identifier.
	HashedPhoneHeader = "mobile_number_hash"
)

// AudienceRequest is the input of the custom audience workflow.
type AudienceRequest struct {
	AccountID     string
	HashedContent string
	Name          string
	Description   string
}

// CustomAudience is the body of the custom audience creation call.
type CustomAudience struct {
	Name               string `json:"name"`
	Subtype            string `json:"subtype"`
	CustomerFileSource string `json:"customer_file_source"`
	Description        string `json:"description,omitempty"`
}

// NewCustomAudience returns a customer-file audience named name.
func NewCustomAudience(name, description string) CustomAudience {
	return CustomAudience{
		Name:               name,
		Subtype:            AudienceSubtypeCustom,
		CustomerFileSource: CustomerFileSourceUserOnly,
		Description:        description,
	}
}

// UserUpload is the body of the audience users upload call.
type UserUpload struct {
	Payload UploadPayload `json:"payload"`
}

// UploadPayload declares the schema of the uploaded rows and the rows
// themselves, one identifier per row.
type UploadPayload struct {
	Schema []string   `json:"schema"`
	Data   [][]string `json:"data"`
}

// NewPhoneUpload wraps hashed phone identifiers in a PHONE_SHA256 upload.
func NewPhoneUpload(hashes []string) UserUpload {
	data := make([][]string, 0, len(hashes))
	for _, h := range hashes {
		data = append(data, []string{h})
	}
	return UserUpload{
		Payload: UploadPayload{
			Schema: []string{SchemaPhoneSHA256},
			Data:   data,
		},
	}
}

// ParseHashedPhones extracts pre-hashed phone identifiers from CSV-like
// content. The identifier is the second comma separated field of every
// non-blank line that contains a comma. A leading header row is dropped.
// Hash format is not checked.
func ParseHashedPhones(content string) []string {
	lines := strings.FieldsFunc(content, isLineBreak)

	hashes := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, ",") {
			continue
		}
		fields := strings.Split(line, ",")
		hashes = append(hashes, strings.TrimSpace(fields[1]))
	}

	if len(hashes) > 0 && strings.EqualFold(hashes[0], HashedPhoneHeader) {
		hashes = hashes[1:]
	}
	return hashes
}

// isLineBreak reports whether r ends a line: CR, LF, VT, FF, the file,
// group and record separators, NEL, and the Unicode line and paragraph
// separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
