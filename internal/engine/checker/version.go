package checker

import (
	"go.trai.ch/lockcheck/internal/core/domain"
	"golang.org/x/mod/semver"
)

// VersionComparer reports whether two version tokens name the same version.
type VersionComparer func(a, b string) bool

// ComparerFor returns the comparer implementing policy.
func ComparerFor(policy domain.VersionPolicy) VersionComparer {
	if policy == domain.VersionPolicySemver {
		return SemverEqual
	}
	return ExactEqual
}

// ExactEqual compares versions as opaque strings.
func ExactEqual(a, b string) bool {
	return a == b
}

// SemverEqual treats semver-equivalent versions as equal ("1.2" and "1.2.0", "1.2.0+build.1").
// Tokens that are not valid semver, such as "cci.20230105", are compared exactly.
func SemverEqual(a, b string) bool {
	if a == b {
		return true
	}
	va, vb := "v"+a, "v"+b
	if !semver.IsValid(va) || !semver.IsValid(vb) {
		return false
	}
	return semver.Compare(va, vb) == 0
}
