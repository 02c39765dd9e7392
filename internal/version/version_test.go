package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v, c string) {
	t.Helper()
	origVersion, origCommit := Version, Commit
	Version, Commit = v, c
	t.Cleanup(func() { Version, Commit = origVersion, origCommit })
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		expected string
	}{
		{"development without commit", "development", "unknown", "development"},
		{"release with commit", "1.0.0", "abc1234", "1.0.0+abc1234"},
		{"empty commit", "2.0.0", "", "2.0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, tt.version, tt.commit)
			assert.Equal(t, tt.expected, String())
		})
	}
}

func TestDetailed(t *testing.T) {
	withVersion(t, "1.0.0", "abc")
	got := Detailed()
	assert.True(t, strings.HasPrefix(got, "1.0.0+abc ("))
	assert.Contains(t, got, runtime.GOOS+"/"+runtime.GOARCH)
}
