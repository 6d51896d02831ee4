package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	var testCases = []struct {
		raw    string
		expect string
	}{
		{raw: `app`, expect: "app"},
		{raw: `my\'app`, expect: "my'app"},
		{raw: `a\"b`, expect: `a"b`},
		{raw: `tab\tnew\nline`, expect: "tab\tnew\nline"},
		{raw: `\x41pp`, expect: "App"},
		{raw: `café`, expect: "café"},
		{raw: `\u{1F600}`, expect: "\U0001F600"},
		{raw: `\uD83D\uDE00`, expect: "\U0001F600"},
		{raw: "long\\\nname", expect: "longname"},
		{raw: `back\\slash`, expect: `back\slash`},
		{raw: `\q`, expect: "q"},
		{raw: `\xZZ`, expect: "xZZ"},
		{raw: `trailing\`, expect: `trailing\`},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, unescape(testCase.raw), testCase.raw)
	}
}
