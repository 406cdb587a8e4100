package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamToText(t *testing.T) {
	stream := []byte(`BT
/F1 24 Tf
72 720 Td
(Attention Is All You Need) Tj
0 -28 Td
[(Ashish Vaswani, ) (Noam Shazeer)] TJ
0 -28 Td
(Abstract: We propose the Transformer.) '
1 0 0 1 72 600 cm
(this line has no operator)
ET`)

	got := streamToText(stream)

	assert.Equal(t,
		"Attention Is All You Need\nAshish Vaswani, Noam Shazeer\nAbstract: We propose the Transformer.",
		got)
}

func TestStreamToText_Empty(t *testing.T) {
	assert.Equal(t, "", streamToText(nil))
	assert.Equal(t, "", streamToText([]byte("q 1 0 0 1 0 0 cm Q")))
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"escaped parens", `\(quoted\)`, "(quoted)"},
		{"escaped backslash", `a\\b`, `a\b`},
		{"newline and tab", `a\nb\tc`, "a\nb\tc"},
		{"octal space", `a\040b`, "a b"},
		{"short octal", `\12`, "\n"},
		{"unknown escape passes through", `a\xb`, "axb"},
		{"trailing backslash", `a\`, `a\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeString([]byte(tt.in)))
		})
	}
}
