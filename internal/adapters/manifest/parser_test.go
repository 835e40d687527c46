package manifest_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockcheck/internal/adapters/manifest"
	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func fingerprintByName(ctrl *gomock.Controller) *mocks.MockRecipeFingerprinter {
	fp := mocks.NewMockRecipeFingerprinter(ctrl)
	fp.EXPECT().
		Fingerprint(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, name, version string) (string, error) {
			return "fp-" + name + "-" + version, nil
		}).
		AnyTimes()
	return fp
}

func TestParser_Parse_Requirements(t *testing.T) {
	dir := t.TempDir()
	conanfile := writeFile(t, dir, "conanfile.txt", `# pinned third party packages
[requires]
zlib/1.3
  fmt/10.1.1

boost/1.83.0#4a2b

[generators]
CMakeDeps

[options]
boost/*:shared=True
`)

	ctrl := gomock.NewController(t)
	parser := manifest.NewParser(fingerprintByName(ctrl))

	m, err := parser.Parse(context.Background(), domain.ManifestSource{
		Root:         dir,
		Requirements: conanfile,
		RecipesDir:   filepath.Join(dir, "recipes"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"zlib", "fmt", "boost"}, m.Names())

	boost, ok := m.Get("boost")
	require.True(t, ok)
	assert.Equal(t, "1.83.0", boost.Version)
	assert.Equal(t, "fp-boost-1.83.0", boost.RecipeFingerprint)
}

func TestParser_Parse_WithoutSections(t *testing.T) {
	dir := t.TempDir()
	conanfile := writeFile(t, dir, "conanfile.txt", "zlib/1.3\n# comment\nfmt/10.1.1\n")

	parser := manifest.NewParser(nil)

	m, err := parser.Parse(context.Background(), domain.ManifestSource{Requirements: conanfile}, domain.KeepAll)
	require.NoError(t, err)

	assert.Equal(t, []string{"zlib", "fmt"}, m.Names())
	zlib, _ := m.Get("zlib")
	assert.Empty(t, zlib.RecipeFingerprint, "no recipes dir means no fingerprint")
}

func TestParser_Parse_ProfileToolRequires(t *testing.T) {
	dir := t.TempDir()
	conanfile := writeFile(t, dir, "conanfile.txt", "[requires]\nzlib/1.3\n")
	profile := writeFile(t, dir, "profile", `include(default)

[settings]
os=Linux

[tool_requires]
cmake/3.27.7
*: ninja/1.11.1, internal-codegen/2.0
zlib/*: cmake/3.27.7

[build_requires]
meson/1.2.3
`)

	filter, err := domain.NewExcludeFilter([]string{"internal-*"})
	require.NoError(t, err)

	parser := manifest.NewParser(nil)
	m, err := parser.Parse(context.Background(), domain.ManifestSource{
		Requirements: conanfile,
		Profile:      profile,
	}, filter)
	require.NoError(t, err)

	assert.Equal(t, []string{"zlib", "cmake", "ninja", "meson"}, m.Names())
}

func TestParser_Parse_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		conanfile string
		profile   string
		wantErr   error
		wantMeta  map[string]any
	}{
		{
			name:      "malformed requirement",
			conanfile: "[requires]\nzlib/1.3\nnot-a-reference\n",
			wantErr:   domain.ErrMalformedRequirement,
			wantMeta:  map[string]any{"line": 3},
		},
		{
			name:      "duplicate requirement",
			conanfile: "[requires]\nzlib/1.3\nzlib/1.2.13\n",
			wantErr:   domain.ErrDuplicatePackage,
			wantMeta:  map[string]any{"line": 3},
		},
		{
			name:      "conflicting tool version",
			conanfile: "[requires]\ncmake/3.27.7\n",
			profile:   "[tool_requires]\ncmake/3.28.0\n",
			wantErr:   domain.ErrDuplicatePackage,
			wantMeta:  map[string]any{"package": "cmake"},
		},
		{
			name:      "malformed tool requirement",
			conanfile: "zlib/1.3\n",
			profile:   "[tool_requires]\n*: cmake\n",
			wantErr:   domain.ErrMalformedRequirement,
			wantMeta:  map[string]any{"line": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := domain.ManifestSource{
				Requirements: writeFile(t, dir, "conanfile.txt", tt.conanfile),
			}
			if tt.profile != "" {
				src.Profile = writeFile(t, dir, "profile", tt.profile)
			}

			_, err := manifest.NewParser(nil).Parse(context.Background(), src, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			meta := zErr.Metadata()
			for k, v := range tt.wantMeta {
				assert.Equal(t, v, meta[k], "metadata %q", k)
			}
		})
	}
}

func TestParser_Parse_MissingFile(t *testing.T) {
	dir := t.TempDir()
	conanfile := writeFile(t, dir, "conanfile.txt", "zlib/1.3\n")

	parser := manifest.NewParser(nil)

	_, err := parser.Parse(context.Background(), domain.ManifestSource{
		Requirements: filepath.Join(dir, "missing.txt"),
	}, nil)
	require.ErrorIs(t, err, domain.ErrManifestUnreadable)

	_, err = parser.Parse(context.Background(), domain.ManifestSource{
		Requirements: conanfile,
		Profile:      filepath.Join(dir, "missing-profile"),
	}, nil)
	require.ErrorIs(t, err, domain.ErrManifestUnreadable)
}

func TestParser_Parse_FingerprintError(t *testing.T) {
	dir := t.TempDir()
	conanfile := writeFile(t, dir, "conanfile.txt", "zlib/1.3\nghost/1.0\n")

	ctrl := gomock.NewController(t)
	fp := mocks.NewMockRecipeFingerprinter(ctrl)
	fp.EXPECT().Fingerprint(gomock.Any(), "recipes", "zlib", "1.3").Return("abc", nil).AnyTimes()
	fp.EXPECT().Fingerprint(gomock.Any(), "recipes", "ghost", "1.0").
		Return("", zerr.Wrap(domain.ErrRecipeNotFound, "missing recipe")).
		AnyTimes()

	_, err := manifest.NewParser(fp).Parse(context.Background(), domain.ManifestSource{
		Requirements: conanfile,
		RecipesDir:   "recipes",
	}, nil)
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestParser_Parse_LongLines(t *testing.T) {
	dir := t.TempDir()
	conanfile := writeFile(t, dir, "conanfile.txt",
		"[requires]\nzlib/1.3\n# "+strings.Repeat("x", 70000)+"\nfmt/10.1.0\nboost/1.83.0\n")

	m, err := manifest.NewParser(nil).Parse(context.Background(), domain.ManifestSource{
		Requirements: conanfile,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"zlib", "fmt", "boost"}, m.Names())
}

func TestParser_Parse_SkipsOtherSections(t *testing.T) {
	dir := t.TempDir()
	conanfile := writeFile(t, dir, "conanfile.txt", `[requires]
zlib/1.3

[tool_requires]
cmake/3.27.7

[build_requires]
ninja/1.11.1
`)

	m, err := manifest.NewParser(nil).Parse(context.Background(), domain.ManifestSource{
		Requirements: conanfile,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"zlib"}, m.Names())
}

func TestParser_Parse_Deterministic(t *testing.T) {
	dir := t.TempDir()

	var b strings.Builder
	b.WriteString("[requires]\n")
	for i := range 64 {
		fmt.Fprintf(&b, "pkg%02d/1.%d.0\n", i, i)
	}
	conanfile := writeFile(t, dir, "conanfile.txt", b.String())
	profile := writeFile(t, dir, "profile", "[tool_requires]\ncmake/3.27.7, ninja/1.11.1\n")

	ctrl := gomock.NewController(t)
	parser := manifest.NewParser(fingerprintByName(ctrl))
	src := domain.ManifestSource{
		Requirements: conanfile,
		Profile:      profile,
		RecipesDir:   filepath.Join(dir, "recipes"),
	}

	first, err := parser.Parse(context.Background(), src, nil)
	require.NoError(t, err)
	second, err := parser.Parse(context.Background(), src, nil)
	require.NoError(t, err)

	assert.Equal(t, 66, first.Len())
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Names(), second.Names())

	pkg, ok := second.Get("pkg42")
	require.True(t, ok)
	assert.Equal(t, "fp-pkg42-1.42.0", pkg.RecipeFingerprint)
}
