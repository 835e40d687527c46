// Package manifest parses conanfile.txt requirement files and build profiles into package manifests.
package manifest

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"runtime"
	"strconv"
	"strings"

	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ManifestParser = (*Parser)(nil)

// requirementSection is the only conanfile.txt section holding pinned references.
const requirementSection = "requires"

// profileSections are the profile sections holding tool references.
var profileSections = map[string]bool{
	"tool_requires":  true,
	"build_requires": true,
}

// entry is a parsed reference together with its source position.
type entry struct {
	name    string
	version string
	file    string
	line    int
}

// Parser implements ports.ManifestParser.
type Parser struct {
	recipes ports.RecipeFingerprinter
}

// NewParser creates a new Parser fingerprinting requirements through recipes.
func NewParser(recipes ports.RecipeFingerprinter) *Parser {
	return &Parser{recipes: recipes}
}

// Parse reads the requirements file and the profile of src.
// When src.RecipesDir is empty the records carry no fingerprint.
func (p *Parser) Parse(
	ctx context.Context,
	src domain.ManifestSource,
	filter domain.RequirementFilter,
) (*domain.PackageManifest, error) {
	if filter == nil {
		filter = domain.KeepAll
	}

	entries, err := parseRequirements(src.Requirements)
	if err != nil {
		return nil, err
	}

	if src.Profile != "" {
		tools, err := parseProfile(src.Profile, filter)
		if err != nil {
			return nil, err
		}
		entries, err = mergeTools(entries, tools)
		if err != nil {
			return nil, err
		}
	}

	fingerprints, err := p.fingerprint(ctx, src.RecipesDir, entries)
	if err != nil {
		return nil, err
	}

	m := domain.NewManifest()
	for i, e := range entries {
		record := domain.PackageRecord{Name: e.name, Version: e.version, RecipeFingerprint: fingerprints[i]}
		if err := m.Add(record); err != nil {
			err = zerr.With(err, "file", e.file)
			return nil, zerr.With(err, "line", e.line)
		}
	}
	return m, nil
}

func (p *Parser) fingerprint(ctx context.Context, recipesDir string, entries []entry) ([]string, error) {
	fingerprints := make([]string, len(entries))
	if recipesDir == "" {
		return fingerprints, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, e := range entries {
		g.Go(func() error {
			fp, err := p.recipes.Fingerprint(ctx, recipesDir, e.name, e.version)
			if err != nil {
				return zerr.With(err, "file", e.file)
			}
			fingerprints[i] = fp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fingerprints, nil
}

func parseRequirements(path string) ([]entry, error) {
	data, err := readManifestFile(path)
	if err != nil {
		return nil, err
	}

	lines, err := splitLines(path, data)
	if err != nil {
		return nil, err
	}
	sectioned := hasSections(lines)

	var (
		entries []entry
		section string
	)
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, ok := sectionName(line); ok {
			section = name
			continue
		}
		if sectioned && section != requirementSection {
			continue
		}

		e, err := parseEntry(line, path, i+1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseProfile(path string, filter domain.RequirementFilter) ([]entry, error) {
	data, err := readManifestFile(path)
	if err != nil {
		return nil, err
	}

	lines, err := splitLines(path, data)
	if err != nil {
		return nil, err
	}

	var (
		entries []entry
		section string
	)
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, ok := sectionName(line); ok {
			section = name
			continue
		}
		if !profileSections[section] {
			continue
		}

		// "pattern: ref1, ref2" applies the tools to matching packages only.
		if _, refs, ok := strings.Cut(line, ":"); ok {
			line = refs
		}
		for ref := range strings.SplitSeq(line, ",") {
			ref = strings.TrimSpace(ref)
			if ref == "" {
				continue
			}
			e, err := parseEntry(ref, path, i+1)
			if err != nil {
				return nil, err
			}
			if filter(e.name, e.version) {
				entries = append(entries, e)
			}
		}
	}
	return entries, nil
}

// mergeTools appends profile tools to the requirements. A tool pinned at the same
// version more than once is kept once. A conflicting version is a duplicate.
func mergeTools(entries, tools []entry) ([]entry, error) {
	seen := make(map[string]entry, len(entries)+len(tools))
	for _, e := range entries {
		seen[e.name] = e
	}

	for _, t := range tools {
		first, ok := seen[t.name]
		if !ok {
			seen[t.name] = t
			entries = append(entries, t)
			continue
		}
		if first.version == t.version {
			continue
		}
		err := zerr.With(zerr.Wrap(domain.ErrDuplicatePackage, "invalid manifest"), "package", t.name)
		err = zerr.With(err, "first", first.file+":"+strconv.Itoa(first.line))
		return nil, zerr.With(err, "second", t.file+":"+strconv.Itoa(t.line))
	}
	return entries, nil
}

func parseEntry(ref, file string, line int) (entry, error) {
	name, version, err := domain.ParseReference(ref)
	if err != nil {
		err = zerr.With(err, "file", file)
		return entry{}, zerr.With(err, "line", line)
	}
	return entry{name: name, version: version, file: file, line: line}, nil
}

func readManifestFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the run configuration
	if err != nil {
		readErr := zerr.With(zerr.Wrap(domain.ErrManifestUnreadable, "cannot open manifest file"), "file", path)
		return nil, zerr.With(readErr, "reason", err.Error())
	}
	return data, nil
}

// splitLines splits data into lines. A single line may span the whole file.
func splitLines(path string, data []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(data)+1)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		readErr := zerr.With(zerr.Wrap(domain.ErrManifestUnreadable, "cannot read manifest file"), "file", path)
		return nil, zerr.With(readErr, "reason", err.Error())
	}
	return lines, nil
}

func hasSections(lines []string) bool {
	for _, l := range lines {
		if _, ok := sectionName(strings.TrimSpace(l)); ok {
			return true
		}
	}
	return false
}

func sectionName(line string) (string, bool) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(line[1 : len(line)-1]), true
}
