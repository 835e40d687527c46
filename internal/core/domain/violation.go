package domain

import "fmt"

// ViolationKind identifies the consistency rule a violation breaks.
type ViolationKind string

const (
	// RecipeChangedWithoutVersionBump means a recipe's content changed but its version did not.
	RecipeChangedWithoutVersionBump ViolationKind = "RecipeChangedWithoutVersionBump"
	// PackageMissingFromLock means a package was installed that the lock file does not pin.
	PackageMissingFromLock ViolationKind = "PackageMissingFromLock"
	// PackageVersionMismatch means a package was installed at a version other than the pinned one.
	PackageVersionMismatch ViolationKind = "PackageVersionMismatch"
)

// ViolationDetail carries the kind-specific payload of a violation.
// Only the fields relevant to the kind are set.
type ViolationDetail struct {
	OldVersion       string `json:"old_version,omitzero"`
	OldFingerprint   string `json:"old_fingerprint,omitzero"`
	NewFingerprint   string `json:"new_fingerprint,omitzero"`
	LockedVersion    string `json:"locked_version,omitzero"`
	InstalledVersion string `json:"installed_version,omitzero"`
}

// Violation is a detected inconsistency. It is data, not an error.
type Violation struct {
	Kind        ViolationKind   `json:"kind"`
	PackageName string          `json:"package"`
	Detail      ViolationDetail `json:"detail"`
}

// NewRecipeChangedWithoutVersionBump builds a recipe bump violation.
func NewRecipeChangedWithoutVersionBump(master, branch PackageRecord) Violation {
	return Violation{
		Kind:        RecipeChangedWithoutVersionBump,
		PackageName: branch.Name,
		Detail: ViolationDetail{
			OldVersion:     master.Version,
			OldFingerprint: master.RecipeFingerprint,
			NewFingerprint: branch.RecipeFingerprint,
		},
	}
}

// NewPackageMissingFromLock builds a missing lock entry violation.
func NewPackageMissingFromLock(name, installedVersion string) Violation {
	return Violation{
		Kind:        PackageMissingFromLock,
		PackageName: name,
		Detail:      ViolationDetail{InstalledVersion: installedVersion},
	}
}

// NewPackageVersionMismatch builds a lock version mismatch violation.
func NewPackageVersionMismatch(name, lockedVersion, installedVersion string) Violation {
	return Violation{
		Kind:        PackageVersionMismatch,
		PackageName: name,
		Detail: ViolationDetail{
			LockedVersion:    lockedVersion,
			InstalledVersion: installedVersion,
		},
	}
}

// String renders the violation as a single human-readable line.
func (v Violation) String() string {
	switch v.Kind {
	case RecipeChangedWithoutVersionBump:
		return fmt.Sprintf(
			"%s: recipe changed without a version bump (version %s, fingerprint %s -> %s)",
			v.PackageName, v.Detail.OldVersion, v.Detail.OldFingerprint, v.Detail.NewFingerprint,
		)
	case PackageMissingFromLock:
		return fmt.Sprintf(
			"%s: installed %s/%s is missing from the lock file",
			v.PackageName, v.PackageName, v.Detail.InstalledVersion,
		)
	case PackageVersionMismatch:
		return fmt.Sprintf(
			"%s: lock file pins %s but %s was installed",
			v.PackageName, v.Detail.LockedVersion, v.Detail.InstalledVersion,
		)
	default:
		return fmt.Sprintf("%s: %s", v.PackageName, v.Kind)
	}
}

// HasKind reports whether any violation is of the given kind.
func HasKind(violations []Violation, kind ViolationKind) bool {
	for _, v := range violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}
