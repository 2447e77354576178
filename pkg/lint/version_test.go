package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVersion(t *testing.T) {
	v, ok := ExtractVersion("pycodestyle 2.11.1 (python 3.12)")
	assert.True(t, ok)
	assert.Equal(t, "2.11.1", v)

	_, ok = ExtractVersion("unknown")
	assert.False(t, ok)
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr error
	}{
		{Version, nil},
		{"1.4.6", nil},
		{"1.5.0", nil},
		{"1.10.0", nil},
		{"1.4.5", ErrVersionTooOld},
		{"0.9.9", ErrVersionTooOld},
		{"2.0", ErrInvalidVersion},
		{"", ErrInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := CheckVersion(tt.version)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVersionMatchesContract(t *testing.T) {
	assert.Regexp(t, `^\d+\.\d+\.\d+$`, Version)
}
