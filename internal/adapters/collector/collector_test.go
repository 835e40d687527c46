package collector_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockcheck/internal/adapters/collector"
	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func testConfig(root string) *domain.Config {
	return &domain.Config{
		Root:       root,
		Repository: "acme/conan-recipes",
		Conanfile:  "conanfile.txt",
		Profile:    "profiles/linux",
		RecipesDir: "recipes",
	}
}

func TestCollector_Collect_WorkingTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	vcs := mocks.NewMockSourceControl(ctrl)
	parser := mocks.NewMockManifestParser(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	cfg := testConfig(root)
	want, err := domain.NewManifestFromRecords(domain.PackageRecord{Name: "zlib", Version: "1.3"})
	require.NoError(t, err)

	parser.EXPECT().
		Parse(gomock.Any(), cfg.ManifestSource(root), gomock.Any()).
		Return(want, nil)

	got, err := collector.New(vcs, parser, logger).Collect(context.Background(), cfg, domain.WorkingTreeRef)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestCollector_Collect_ClonesRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	vcs := mocks.NewMockSourceControl(ctrl)
	parser := mocks.NewMockManifestParser(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	cfg := testConfig(t.TempDir())
	var workspace string

	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	vcs.EXPECT().
		Clone(gomock.Any(), "https://github.com/acme/conan-recipes.git", "master", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, dest string) error {
			workspace = dest
			return nil
		})
	parser.EXPECT().
		Parse(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, src domain.ManifestSource, _ domain.RequirementFilter) (*domain.PackageManifest, error) {
			assert.Equal(t, cfg.ManifestSource(workspace), src)
			return domain.NewManifest(), nil
		})

	m, err := collector.New(vcs, parser, logger).Collect(context.Background(), cfg, "master")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	_, statErr := os.Stat(workspace)
	assert.True(t, os.IsNotExist(statErr), "workspace should be removed")
}

func TestCollector_Collect_MissingRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig(t.TempDir())
	cfg.Repository = ""

	c := collector.New(mocks.NewMockSourceControl(ctrl), mocks.NewMockManifestParser(ctrl), mocks.NewMockLogger(ctrl))

	_, err := c.Collect(context.Background(), cfg, "feature/zlib")
	assert.True(t, errors.Is(err, domain.ErrMissingRepository))
}

func TestCollector_Collect_Errors(t *testing.T) {
	t.Run("clone failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vcs := mocks.NewMockSourceControl(ctrl)
		logger := mocks.NewMockLogger(ctrl)
		logger.EXPECT().Info(gomock.Any()).AnyTimes()

		cloneErr := zerr.Wrap(errors.New("exit status 128"), domain.ErrCloneFailed.Error())
		vcs.EXPECT().Clone(gomock.Any(), gomock.Any(), "master", gomock.Any()).Return(cloneErr)

		c := collector.New(vcs, mocks.NewMockManifestParser(ctrl), logger)
		_, err := c.Collect(context.Background(), testConfig(t.TempDir()), "master")
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrCloneFailed.Error())
	})

	t.Run("parse failure carries ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vcs := mocks.NewMockSourceControl(ctrl)
		parser := mocks.NewMockManifestParser(ctrl)
		logger := mocks.NewMockLogger(ctrl)
		logger.EXPECT().Info(gomock.Any()).AnyTimes()

		vcs.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		parser.EXPECT().Parse(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, zerr.Wrap(domain.ErrDuplicatePackage, "invalid manifest"))

		c := collector.New(vcs, parser, logger)
		_, err := c.Collect(context.Background(), testConfig(t.TempDir()), "feature/zlib")
		require.ErrorIs(t, err, domain.ErrDuplicatePackage)

		var zErr *zerr.Error
		require.True(t, errors.As(err, &zErr))
		assert.Equal(t, "feature/zlib", zErr.Metadata()["ref"])
	})

	t.Run("invalid exclude pattern", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cfg := testConfig(t.TempDir())
		cfg.Exclude = []string{"["}

		c := collector.New(mocks.NewMockSourceControl(ctrl), mocks.NewMockManifestParser(ctrl), mocks.NewMockLogger(ctrl))
		_, err := c.Collect(context.Background(), cfg, domain.WorkingTreeRef)
		assert.ErrorIs(t, err, domain.ErrInvalidFilterPattern)
	})
}
