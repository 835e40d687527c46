package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockcheck/internal/app"
	"go.trai.ch/lockcheck/internal/core/domain"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	for _, env := range []string{
		"GITHUB_SERVER_URL", "GITHUB_REPOSITORY", "GITHUB_HEAD_REF",
		"GITHUB_BASE_REF", "CONAN_TXT", "CONAN_PROFILE",
	} {
		t.Setenv(env, "")
	}

	tests := []struct {
		name         string
		installed    string
		args         []string
		expectedExit int
	}{
		{
			name:         "version",
			args:         []string{"lockcheck", "version"},
			expectedExit: 0,
		},
		{
			name:         "lock complete",
			installed:    "zlib/1.3\nfmt/10.1.1\n",
			args:         []string{"lockcheck", "check-lock", "--installed", "installed.txt"},
			expectedExit: 0,
		},
		{
			name:         "lock drift",
			installed:    "zlib/1.2.13\n",
			args:         []string{"lockcheck", "check-lock", "--installed", "installed.txt"},
			expectedExit: 1,
		},
		{
			name:         "invalid config",
			args:         []string{"lockcheck", "-c", "broken.yaml", "check-lock", "--installed", "installed.txt"},
			expectedExit: 1,
		},
		{
			name:         "unknown command",
			args:         []string{"lockcheck", "frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeFile(t, tmpDir, domain.ConfigFileName, "version: \"1\"\nconanfile: conanfile.txt\n")
			writeFile(t, tmpDir, "broken.yaml", "version_policy: fuzzy\n")
			writeFile(t, tmpDir, "conanfile.txt", "[requires]\nzlib/1.3\nfmt/10.1.1\n")
			writeFile(t, tmpDir, "installed.txt", tt.installed)

			t.Chdir(tmpDir)
			os.Args = tt.args

			var out strings.Builder
			exitCode := run(func(a *app.App) {
				a.WithOutput(&out).WithInput(strings.NewReader("")).WithWorkDir(tmpDir)
			})
			assert.Equal(t, tt.expectedExit, exitCode, "output: %s", out.String())
		})
	}
}

func TestRun_WritesReport(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, domain.ConfigFileName, "version: \"1\"\n")
	writeFile(t, tmpDir, "conanfile.txt", "zlib/1.3\n")

	t.Chdir(tmpDir)
	t.Setenv("CONAN_TXT", "")
	os.Args = []string{"lockcheck", "check-lock", "--installed", "-"}

	exitCode := run(func(a *app.App) {
		a.WithOutput(io.Discard).WithInput(strings.NewReader("zlib/1.3\nopenssl/3.2.0\n")).WithWorkDir(tmpDir)
	})
	assert.Equal(t, 1, exitCode)

	data, err := os.ReadFile(filepath.Join(tmpDir, domain.DefaultReportPath()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind": "PackageMissingFromLock"`)
	assert.Contains(t, string(data), `"package": "openssl"`)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
