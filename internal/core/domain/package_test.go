package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name        string
		ref         string
		wantName    string
		wantVersion string
	}{
		{name: "plain", ref: "zlib/1.2.13", wantName: "zlib", wantVersion: "1.2.13"},
		{name: "user channel", ref: "boost/1.83.0@dl/stable", wantName: "boost", wantVersion: "1.83.0"},
		{name: "revision", ref: "fmt/10.1.1#abcdef", wantName: "fmt", wantVersion: "10.1.1"},
		{name: "package id", ref: "fmt/10.1.1:1234", wantName: "fmt", wantVersion: "10.1.1"},
		{name: "version range", ref: "zlib/[>=1.2 <2]", wantName: "zlib", wantVersion: "[>=1.2 <2]"},
		{name: "surrounding space", ref: "  imgui/cci.20230105+1.89.2.docking  ", wantName: "imgui", wantVersion: "cci.20230105+1.89.2.docking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, version, err := domain.ParseReference(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantVersion, version)
		})
	}
}

func TestParseReference_Malformed(t *testing.T) {
	for _, ref := range []string{"", "zlib", "/1.0", "zlib/", "a/b/c", "my lib/1.0", "zlib/1.2 <2"} {
		t.Run(ref, func(t *testing.T) {
			_, _, err := domain.ParseReference(ref)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedRequirement))
		})
	}
}

func TestParseInstalledRefs(t *testing.T) {
	refs, err := domain.ParseInstalledRefs([]string{
		"zlib/1.2.13",
		"",
		"# transitive",
		"openssl/3.1.2#rev",
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.InstalledPackageRef{
		{Name: "zlib", Version: "1.2.13"},
		{Name: "openssl", Version: "3.1.2"},
	}, refs)
}

func TestParseInstalledRefs_Invalid(t *testing.T) {
	_, err := domain.ParseInstalledRefs([]string{"zlib/1.2.13", "garbage"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInstalledRef))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "garbage", zErr.Metadata()["line"])
}

func TestReference(t *testing.T) {
	assert.Equal(t, "zlib/1.2.13", domain.PackageRecord{Name: "zlib", Version: "1.2.13", RecipeFingerprint: "aaa"}.Reference())
	assert.Equal(t, "zlib/1.2.13", domain.InstalledPackageRef{Name: "zlib", Version: "1.2.13"}.Reference())
}
