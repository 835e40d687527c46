//nolint:testpackage // Testing internal parsing logic
package conan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockcheck/internal/core/domain"
)

func TestParseListOutput(t *testing.T) {
	out := []byte(`{
		"Local Cache": {
			"zlib/1.3": {"revisions": {"b3b7100b3d8e": {"timestamp": 1700000000.0}}},
			"cmake/3.27.7": {"revisions": {}},
			"boost/1.83.0@acme/stable": {"revisions": {}}
		}
	}`)

	refs, err := parseListOutput(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"boost/1.83.0@acme/stable", "cmake/3.27.7", "zlib/1.3"}, refs)
}

func TestParseListOutput_EmptyCache(t *testing.T) {
	refs, err := parseListOutput([]byte(`{"Local Cache": {}}`))
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestParseListOutput_Errors(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		wantMsg string
	}{
		{name: "invalid json", out: "ERROR: conan not configured", wantMsg: domain.ErrConanListParseFailed.Error()},
		{name: "missing cache", out: `{"conancenter": {}}`, wantMsg: "no local cache entry"},
		{name: "reported error", out: `{"Local Cache": {"error": "broken cache"}}`, wantMsg: "broken cache"},
		{name: "reported error object", out: `{"Local Cache": {"error": {"code": 5, "msg": "disk full"}}}`, wantMsg: "disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseListOutput([]byte(tt.out))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
