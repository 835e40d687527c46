// Package checker implements the recipe bump and lock completeness checks.
//
// The checks are pure functions over manifests and installed package lists.
// They never fail: every detected inconsistency is returned as a domain.Violation
// and the caller decides whether to abort.
package checker

import "go.trai.ch/lockcheck/internal/core/domain"

// Checker runs consistency checks under a version comparison policy.
// A Checker holds no mutable state and is safe for concurrent use.
type Checker struct {
	sameVersion VersionComparer
}

// New creates a Checker comparing versions under policy.
// Unknown policies fall back to exact comparison.
func New(policy domain.VersionPolicy) *Checker {
	return &Checker{sameVersion: ComparerFor(policy)}
}

// ClassifyRecipeChanges classifies every branch package against master, in branch order.
func (c *Checker) ClassifyRecipeChanges(master, branch *domain.PackageManifest) []domain.RecipeChange {
	changes := make([]domain.RecipeChange, 0, branch.Len())
	for b := range branch.All() {
		m, ok := master.Get(b.Name)
		change := domain.RecipeChange{Master: m, Branch: b}
		switch {
		case !ok:
			change.Status = domain.RecipeAdded
		case m.RecipeFingerprint == b.RecipeFingerprint:
			change.Status = domain.RecipeUnchanged
		case c.sameVersion(m.Version, b.Version):
			change.Status = domain.RecipeChangedWithoutBump
		default:
			change.Status = domain.RecipeBumped
		}
		changes = append(changes, change)
	}
	return changes
}

// CheckRecipeBump reports branch packages whose recipe changed while the version did not.
// Violations follow branch order. Packages missing from master are never violations.
func (c *Checker) CheckRecipeBump(master, branch *domain.PackageManifest) []domain.Violation {
	var violations []domain.Violation
	for _, change := range c.ClassifyRecipeChanges(master, branch) {
		if change.Status == domain.RecipeChangedWithoutBump {
			violations = append(violations, domain.NewRecipeChangedWithoutVersionBump(change.Master, change.Branch))
		}
	}
	return violations
}

// CheckLockCompleteness reports installed packages the manifest does not pin, or pins
// at another version. Violations follow installed order. Each installed ref is checked
// on its own, so two installed versions of one package yield a mismatch for at least one.
func (c *Checker) CheckLockCompleteness(
	installed []domain.InstalledPackageRef,
	manifest *domain.PackageManifest,
) []domain.Violation {
	var violations []domain.Violation
	for _, ref := range installed {
		locked, ok := manifest.Get(ref.Name)
		switch {
		case !ok:
			violations = append(violations, domain.NewPackageMissingFromLock(ref.Name, ref.Version))
		case !c.sameVersion(locked.Version, ref.Version):
			violations = append(violations, domain.NewPackageVersionMismatch(ref.Name, locked.Version, ref.Version))
		}
	}
	return violations
}

// UnusedLocks returns the manifest packages that were never installed, in manifest order.
// The result is informational and never turned into a violation.
func (c *Checker) UnusedLocks(installed []domain.InstalledPackageRef, manifest *domain.PackageManifest) []string {
	seen := make(map[string]struct{}, len(installed))
	for _, ref := range installed {
		seen[ref.Name] = struct{}{}
	}

	var unused []string
	for r := range manifest.All() {
		if _, ok := seen[r.Name]; !ok {
			unused = append(unused, r.Name)
		}
	}
	return unused
}

var exact = New(domain.VersionPolicyExact)

// CheckRecipeBump runs Checker.CheckRecipeBump with exact version comparison.
func CheckRecipeBump(master, branch *domain.PackageManifest) []domain.Violation {
	return exact.CheckRecipeBump(master, branch)
}

// CheckLockCompleteness runs Checker.CheckLockCompleteness with exact version comparison.
func CheckLockCompleteness(installed []domain.InstalledPackageRef, manifest *domain.PackageManifest) []domain.Violation {
	return exact.CheckLockCompleteness(installed, manifest)
}
