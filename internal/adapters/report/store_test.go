package report_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockcheck/internal/adapters/report"
	"go.trai.ch/lockcheck/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.LockcheckDirName, domain.ReportFileName)
	store := report.NewStore()

	want := domain.Report{
		Check:     domain.CheckLockCompleteness,
		Base:      "master",
		Head:      ".",
		CheckedAt: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
		Violations: []domain.Violation{
			domain.NewPackageVersionMismatch("zlib", "1.3", "1.2.13"),
			domain.NewPackageMissingFromLock("openssl", "3.2.0"),
		},
		Unused: []string{"fmt"},
	}

	require.NoError(t, store.Put(path, want))

	got, err := store.Get(path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestStore_Get_Missing(t *testing.T) {
	got, err := report.NewStore().Get(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Get_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), domain.FilePerm))

	_, err := report.NewStore().Get(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrReportReadFailed.Error())
}

func TestStore_Put_EmptyViolations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, report.NewStore().Put(path, domain.Report{Check: domain.CheckRecipeBump}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"check": "recipe-bump", "violations": []}`, string(data))
}

func TestStore_Put_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, domain.FilePerm))

	err := report.NewStore().Put(filepath.Join(blocker, "report.json"), domain.Report{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrReportWriteFailed.Error())
}
