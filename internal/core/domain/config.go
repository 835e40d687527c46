package domain

import (
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// VersionPolicy selects how two version tokens are compared.
type VersionPolicy string

const (
	// VersionPolicyExact compares versions by exact string equality.
	VersionPolicyExact VersionPolicy = "exact"
	// VersionPolicySemver treats semver-equivalent versions as equal ("1.2" == "1.2.0").
	// Tokens that are not semver fall back to exact equality.
	VersionPolicySemver VersionPolicy = "semver"
)

// ParseVersionPolicy validates a policy name. The empty string selects VersionPolicyExact.
func ParseVersionPolicy(s string) (VersionPolicy, error) {
	switch VersionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", VersionPolicyExact:
		return VersionPolicyExact, nil
	case VersionPolicySemver:
		return VersionPolicySemver, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidVersionPolicy, "invalid config"), "version_policy", s)
	}
}

// Config is the resolved, immutable configuration of one run.
type Config struct {
	// Root is the directory the relative paths below are resolved against.
	Root string

	// ServerURL is the git server (e.g., "https://github.com").
	ServerURL string
	// Repository is the "owner/name" of the recipe repository.
	Repository string

	// BaseRef is the ref the branch is compared against (usually master).
	BaseRef string
	// HeadRef is the branch under test.
	HeadRef string

	Conanfile  string
	Profile    string
	RecipesDir string

	VersionPolicy VersionPolicy
	ReportUnused  bool
	ReportPath    string

	// Exclude holds glob patterns of tool requirements that only exist on the
	// internal artifact server and are dropped from the profile before parsing.
	Exclude []string
}

// CloneURL returns the URL the refs are cloned from, or "" if no repository is set.
func (c *Config) CloneURL() string {
	if c.Repository == "" {
		return ""
	}
	server := strings.TrimSuffix(c.ServerURL, "/")
	if server == "" {
		server = DefaultServerURL
	}
	return server + "/" + strings.Trim(c.Repository, "/") + ".git"
}

// ManifestSource returns the manifest file locations inside a checkout rooted at root.
// Absolute paths under c.Root are moved into the checkout; absolute paths outside it are kept.
func (c *Config) ManifestSource(root string) ManifestSource {
	return ManifestSource{
		Root:         root,
		Requirements: c.reroot(root, c.Conanfile),
		Profile:      c.reroot(root, c.Profile),
		RecipesDir:   c.reroot(root, c.RecipesDir),
	}
}

func (c *Config) reroot(root, p string) string {
	if filepath.IsAbs(p) && c.Root != "" {
		rel, err := filepath.Rel(c.Root, p)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return p
		}
		p = rel
	}
	return resolvePath(root, p)
}

// ReportFile returns the absolute report path, or "" if reports are disabled.
func (c *Config) ReportFile() string {
	if c.ReportPath == "" {
		return ""
	}
	return resolvePath(c.Root, c.ReportPath)
}

// Filter compiles the exclude patterns into a RequirementFilter.
func (c *Config) Filter() (RequirementFilter, error) {
	return NewExcludeFilter(c.Exclude)
}

func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// ManifestSource locates the files a manifest is parsed from.
type ManifestSource struct {
	// Root is the checkout the files belong to.
	Root string
	// Requirements is the conanfile.txt path.
	Requirements string
	// Profile is the build profile path. Optional.
	Profile string
	// RecipesDir is the recipes tree used to fingerprint each requirement.
	RecipesDir string
}

// RequirementFilter decides whether a profile tool requirement is kept.
type RequirementFilter func(name, version string) bool

// KeepAll is a RequirementFilter that keeps every requirement.
func KeepAll(string, string) bool { return true }

// NewExcludeFilter returns a filter dropping requirements whose name or
// "name/version" reference matches any of the glob patterns.
func NewExcludeFilter(patterns []string) (RequirementFilter, error) {
	if len(patterns) == 0 {
		return KeepAll, nil
	}
	for _, p := range patterns {
		if _, err := path.Match(p, ""); err != nil {
			return nil, zerr.With(zerr.Wrap(ErrInvalidFilterPattern, err.Error()), "pattern", p)
		}
	}
	compiled := append([]string(nil), patterns...)
	return func(name, version string) bool {
		ref := name + "/" + version
		for _, p := range compiled {
			if ok, _ := path.Match(p, name); ok {
				return false
			}
			if ok, _ := path.Match(p, ref); ok {
				return false
			}
		}
		return true
	}, nil
}
