//go:build unit

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{name: "bump minor", version: "0.5.0", expected: "0.6.0"},
		{name: "bump minor zeroes micro", version: "0.5.1", expected: "0.6.0"},
		{name: "post release dropped", version: "0.5.0.post1", expected: "0.6.0"},
		{name: "post release on micro dropped", version: "0.5.1.post1", expected: "0.6.0"},
		{name: "alpha returns base", version: "0.5.0a1", expected: "0.5.0"},
		{name: "alpha on micro returns base", version: "0.5.1a1", expected: "0.5.1"},
		{name: "beta returns base", version: "1.0.0b2", expected: "1.0.0"},
		{name: "release candidate returns base", version: "1.0.0rc3", expected: "1.0.0"},
		{name: "dev returns base", version: "0.5.0.dev1", expected: "0.5.0"},
		{name: "dev on micro returns base", version: "0.5.1.dev1", expected: "0.5.1"},
		{name: "epoch preserved", version: "1!0.5.0", expected: "1!0.6.0"},
		{name: "epoch preserved on prerelease", version: "1!0.5.0a1", expected: "1!0.5.0"},
		{name: "long release zeroed after minor", version: "2.3.4.5", expected: "2.4.0.0"},
		{name: "single component padded", version: "5", expected: "5.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := Next(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, next)
		})
	}
}

func TestNext_InvalidVersion(t *testing.T) {
	for _, v := range []string{"", "abc", "1.2.3-4", "1.2.3.dev", "v1.2.3", "1..2"} {
		_, err := Next(v)
		assert.ErrorIs(t, err, ErrInvalidVersion, "version %q", v)
	}
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{name: "plain version unchanged", version: "1.2.0", expected: "1.2.0"},
		{name: "dev stripped", version: "1.2.0.dev1", expected: "1.2.0"},
		{name: "alpha stripped", version: "1.2.0a3", expected: "1.2.0"},
		{name: "rc and dev stripped", version: "1.2.0rc1.dev2", expected: "1.2.0"},
		{name: "post kept", version: "1.2.0.post2", expected: "1.2.0.post2"},
		{name: "post kept while dev stripped", version: "1.2.0.post2.dev3", expected: "1.2.0.post2"},
		{name: "epoch kept", version: "1!1.2.0.dev1", expected: "1!1.2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Finalize(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse(t *testing.T) {
	v, err := Parse("1!2.3.4rc5.post6.dev7")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Epoch)
	assert.Equal(t, []int{2, 3, 4}, v.Release)
	assert.Equal(t, "rc", v.PreKind)
	assert.Equal(t, 5, v.PreNum)
	assert.Equal(t, 6, v.Post)
	assert.Equal(t, 7, v.Dev)
	assert.True(t, v.IsPrerelease())
	assert.Equal(t, "1!2.3.4", v.Base())
	assert.Equal(t, "1!2.3.4rc5.post6.dev7", v.String())
}

func TestParse_StringRoundTrip(t *testing.T) {
	for _, s := range []string{"0.1.0", "1.2.3a1", "2.0.0.post1", "0.5.0.dev1", "1!3.4", "1.2.3b2.dev4"} {
		v, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, v.String())
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("0.1.0.dev1"))
	assert.ErrorIs(t, Validate("0.1.0-dev1"), ErrInvalidVersion)
}
