// Package domain contains the core domain models for recipe and lock consistency checks.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// PackageRecord is one pinned requirement of a manifest.
// It is built once when a manifest is parsed and never mutated afterwards.
type PackageRecord struct {
	// Name is the package identifier (e.g., "zlib"). Unique within a manifest.
	Name string `json:"name"`

	// Version is an opaque version token (e.g., "1.2.13", "cci.20230105").
	Version string `json:"version"`

	// RecipeFingerprint is a content hash of the recipe source for this package.
	// It is used only to detect recipe changes, never for identity.
	RecipeFingerprint string `json:"recipe_fingerprint,omitzero"`
}

// Reference returns the record as a "name/version" reference.
func (r PackageRecord) Reference() string {
	return r.Name + "/" + r.Version
}

// InstalledPackageRef is a package that a build actually materialized.
type InstalledPackageRef struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Reference returns the ref as a "name/version" reference.
func (r InstalledPackageRef) Reference() string {
	return r.Name + "/" + r.Version
}

// ParseReference splits a Conan reference into name and version.
//
// Accepted forms are "name/version", "name/version@user/channel" and any of
// those followed by "#revision" or ":package_id"; everything after the version is dropped.
// A bracketed version range ("zlib/[>=1.2 <2]") is kept verbatim as the version token.
func ParseReference(ref string) (name, version string, err error) {
	ref = strings.TrimSpace(ref)
	if i := strings.IndexAny(ref, "#:"); i >= 0 {
		ref = ref[:i]
	}
	if i := strings.IndexByte(ref, '@'); i >= 0 {
		ref = ref[:i]
	}

	name, version, ok := strings.Cut(ref, "/")
	badVersion := strings.Contains(version, "/") || (!isVersionRange(version) && strings.ContainsAny(version, " \t"))
	if !ok || name == "" || version == "" || badVersion || strings.ContainsAny(name, " \t") {
		return "", "", zerr.With(zerr.Wrap(ErrMalformedRequirement, "invalid reference"), "reference", ref)
	}
	return name, version, nil
}

func isVersionRange(version string) bool {
	return len(version) > 2 && version[0] == '[' && version[len(version)-1] == ']'
}

// ParseInstalledRef parses one line reported by a package lister.
func ParseInstalledRef(line string) (InstalledPackageRef, error) {
	name, version, err := ParseReference(line)
	if err != nil {
		return InstalledPackageRef{}, zerr.With(zerr.Wrap(ErrInvalidInstalledRef, err.Error()), "line", line)
	}
	return InstalledPackageRef{Name: name, Version: version}, nil
}

// ParseInstalledRefs parses every line, skipping blanks and '#' comments.
func ParseInstalledRefs(lines []string) ([]InstalledPackageRef, error) {
	refs := make([]InstalledPackageRef, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ref, err := ParseInstalledRef(line)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
