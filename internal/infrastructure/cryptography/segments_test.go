//go:build unit
// +build unit

package cryptography

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"Empty", "", []string{""}},
		{"SingleLine", "hello", []string{"hello"}},
		{"TwoLines", "a\nb", []string{"a", "\nb"}},
		{"TrailingNewline", "a\nb\n", []string{"a", "\nb", "\n"}},
		{"BlankLinesCarryForward", "a\n\n\nb", []string{"a", "\n\n\nb"}},
		{"LeadingBlankLines", "\n\na", []string{"\n\na"}},
		{"OnlyNewline", "\n", []string{"\n"}},
		{"OnlyNewlines", "\n\n\n", []string{"\n\n\n"}},
		{"CarriageReturnsStayInLine", "a\r\nb", []string{"a\r", "\nb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := SplitSegments(tt.text)
			assert.Equal(t, tt.expected, segments)
			assert.Equal(t, tt.text, strings.Join(segments, ""))
		})
	}
}

func TestSplitSegments_OnlyFirstSegmentLacksNewline(t *testing.T) {
	segments := SplitSegments("first\nsecond\n\nthird\n\n\nfourth")
	assert.Equal(t, []string{"first", "\nsecond", "\n\nthird", "\n\n\nfourth"}, segments)

	for _, s := range segments[1:] {
		assert.True(t, strings.HasPrefix(s, "\n"))
	}
}
