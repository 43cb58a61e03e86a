package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHashedPhones(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "header dropped",
			content: "phone,mobile_number_hash\n1,aaa\n2,bbb\n",
			want:    []string{"aaa", "bbb"},
		},
		{
			name:    "header case insensitive",
			content: "x,MOBILE_NUMBER_HASH\n1,aaa",
			want:    []string{"aaa"},
		},
		{
			name:    "blank and comma-less lines skipped",
			content: "\n   \nnot a row\n1, aaa \r\n2,bbb,extra\n",
			want:    []string{"aaa", "bbb"},
		},
		{
			name:    "header only",
			content: "phone,mobile_number_hash",
			want:    []string{},
		},
		{
			name:    "header later in file is kept",
			content: "1,aaa\n2,mobile_number_hash",
			want:    []string{"aaa", "mobile_number_hash"},
		},
		{
			name:    "empty second field",
			content: "1,\n",
			want:    []string{""},
		},
		{
			name:    "unicode and control line breaks",
			content: "1,aaa\v2,bbb\f3,ccc\x1c4,ddd\u00855,eee\u20286,fff\u20297,ggg",
			want:    []string{"aaa", "bbb", "ccc", "ddd", "eee", "fff", "ggg"},
		},
		{
			name:    "empty",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHashedPhones(tt.content))
		})
	}
}

func TestNewPhoneUpload(t *testing.T) {
	upload := NewPhoneUpload([]string{"a", "b"})
	assert.Equal(t, []string{"PHONE_SHA256"}, upload.Payload.Schema)
	assert.Equal(t, [][]string{{"a"}, {"b"}}, upload.Payload.Data)

	empty := NewPhoneUpload(nil)
	assert.NotNil(t, empty.Payload.Data)
	assert.Empty(t, empty.Payload.Data)
}

func TestNormalizeAccountID(t *testing.T) {
	assert.Equal(t, "act_123", NormalizeAccountID("123"))
	assert.Equal(t, "act_123", NormalizeAccountID("act_123"))
}
