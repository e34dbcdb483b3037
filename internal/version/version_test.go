package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	tests := []struct {
		name            string
		version, commit string
		want            string
	}{
		{"release", "v1.2.0", "abcdef123456", "v1.2.0"},
		{"dev without commit", "dev", "unknown", "dev"},
		{"dev with commit", "dev", "abcdef123456", "dev+abcdef1"},
		{"dev with short commit", "dev", "abc", "dev+abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldVersion, oldCommit := Version, Commit
			t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })
			Version, Commit = tt.version, tt.commit

			assert.Equal(t, tt.want, Short())
		})
	}
}
