package domain

import "path/filepath"

const (
	// LockcheckDirName is the name of the internal workspace directory.
	LockcheckDirName = ".lockcheck"

	// ReportFileName is the name of the persisted check report.
	ReportFileName = "report.json"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "lockcheck.yaml"

	// RecipeConfigFileName maps versions to recipe folders inside recipes/<name>/.
	RecipeConfigFileName = "config.yml"

	// DefaultRecipeFolder is the folder used when a recipe has no config.yml.
	DefaultRecipeFolder = "all"

	// DefaultServerURL is the git server used when none is configured.
	DefaultServerURL = "https://github.com"

	// DefaultBaseRef is the ref branches are compared against.
	DefaultBaseRef = "master"

	// DefaultConanfile is the default requirements file.
	DefaultConanfile = "conanfile.txt"

	// DefaultRecipesDir is the default recipes tree.
	DefaultRecipesDir = "recipes"

	// WorkingTreeRef selects the current checkout instead of a cloned ref.
	WorkingTreeRef = "."

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultReportPath returns the default report location relative to the root.
// It joins .lockcheck and report.json.
func DefaultReportPath() string {
	return filepath.Join(LockcheckDirName, ReportFileName)
}
