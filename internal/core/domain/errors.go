package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedRequirement is returned when a requirement line is not a valid name/version reference.
	ErrMalformedRequirement = zerr.New("malformed requirement")

	// ErrDuplicatePackage is returned when a manifest names the same package twice.
	ErrDuplicatePackage = zerr.New("duplicate package in manifest")

	// ErrManifestUnreadable is returned when a requirements or profile file cannot be read.
	ErrManifestUnreadable = zerr.New("failed to read manifest")

	// ErrRecipeNotFound is returned when no recipe folder exists for a requirement.
	ErrRecipeNotFound = zerr.New("recipe not found")

	// ErrRecipeIndexParseFailed is returned when a recipe's config.yml cannot be parsed.
	ErrRecipeIndexParseFailed = zerr.New("failed to parse recipe config.yml")

	// ErrFingerprintFailed is returned when hashing a recipe folder fails.
	ErrFingerprintFailed = zerr.New("failed to fingerprint recipe")

	// ErrInvalidInstalledRef is returned when an installed package line is not name/version.
	ErrInvalidInstalledRef = zerr.New("invalid installed package reference")

	// ErrRecipeBumpViolations is returned when recipes changed without a version bump.
	ErrRecipeBumpViolations = zerr.New("recipes changed without a version bump")

	// ErrLockDriftDetected is returned when installed packages drift from the lock file.
	ErrLockDriftDetected = zerr.New("lock file needs updating")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidVersionPolicy is returned when the config names an unknown version policy.
	ErrInvalidVersionPolicy = zerr.New("invalid version policy, expected 'exact' or 'semver'")

	// ErrInvalidFilterPattern is returned when a filter glob cannot be compiled.
	ErrInvalidFilterPattern = zerr.New("invalid filter pattern")

	// ErrMissingRef is returned when a ref needed for collection is empty.
	ErrMissingRef = zerr.New("missing git ref")

	// ErrMissingRepository is returned when a ref must be cloned but no repository is configured.
	ErrMissingRepository = zerr.New("missing repository, set repository.name or GITHUB_REPOSITORY")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCloneFailed is returned when a ref cannot be checked out.
	ErrCloneFailed = zerr.New("failed to clone ref")

	// ErrWorkspaceCreateFailed is returned when a temporary checkout directory cannot be created.
	ErrWorkspaceCreateFailed = zerr.New("failed to create checkout directory")

	// ErrConanListParseFailed is returned when the Conan cache listing cannot be parsed.
	ErrConanListParseFailed = zerr.New("failed to parse conan list output")

	// ErrExportFailed is returned when a recipe cannot be exported to the Conan cache.
	ErrExportFailed = zerr.New("failed to export recipe")

	// ErrInstallFailed is returned when installing the manifest fails.
	ErrInstallFailed = zerr.New("failed to install requirements")

	// ErrListInstalledFailed is returned when the installed packages cannot be enumerated.
	ErrListInstalledFailed = zerr.New("failed to list installed packages")

	// ErrReportReadFailed is returned when a stored report cannot be read.
	ErrReportReadFailed = zerr.New("failed to read report")

	// ErrReportWriteFailed is returned when a report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write report")
)
