package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{name: "empty", src: "", want: nil},
		{name: "single no newline", src: "a", want: []string{"a"}},
		{name: "unix", src: "a\nb\n", want: []string{"a\n", "b\n"}},
		{name: "windows", src: "a\r\nb\r\n", want: []string{"a\r\n", "b\r\n"}},
		{name: "old mac", src: "a\rb", want: []string{"a\r", "b"}},
		{name: "mixed with blank", src: "a\n\r\nb", want: []string{"a\n", "\r\n", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.src))
		})
	}
}
