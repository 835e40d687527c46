package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// PackageManifest maps package names to their pinned records.
//
// The manifest remembers the order in which packages were added so that
// iteration follows the source file rather than map hash order.
type PackageManifest struct {
	packages map[string]PackageRecord
	order    []string
}

// NewManifest creates an empty manifest.
func NewManifest() *PackageManifest {
	return &PackageManifest{
		packages: make(map[string]PackageRecord),
	}
}

// NewManifestFromRecords builds a manifest from records in the given order.
// It fails on the first duplicate name.
func NewManifestFromRecords(records ...PackageRecord) (*PackageManifest, error) {
	m := NewManifest()
	for _, r := range records {
		if err := m.Add(r); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add stores a record under its name.
// It returns ErrDuplicatePackage if the name is already present.
func (m *PackageManifest) Add(r PackageRecord) error {
	if existing, exists := m.packages[r.Name]; exists {
		err := zerr.With(zerr.Wrap(ErrDuplicatePackage, "invalid manifest"), "package", r.Name)
		err = zerr.With(err, "first_version", existing.Version)
		return zerr.With(err, "second_version", r.Version)
	}
	m.packages[r.Name] = r
	m.order = append(m.order, r.Name)
	return nil
}

// Get returns the record stored under name.
func (m *PackageManifest) Get(name string) (PackageRecord, bool) {
	if m == nil {
		return PackageRecord{}, false
	}
	r, ok := m.packages[name]
	return r, ok
}

// Len returns the number of packages in the manifest.
func (m *PackageManifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// All yields the records in insertion order.
func (m *PackageManifest) All() iter.Seq[PackageRecord] {
	return func(yield func(PackageRecord) bool) {
		if m == nil {
			return
		}
		for _, name := range m.order {
			if !yield(m.packages[name]) {
				return
			}
		}
	}
}

// Names returns the package names in insertion order.
func (m *PackageManifest) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Equal reports whether both manifests hold the same records, ignoring order.
func (m *PackageManifest) Equal(other *PackageManifest) bool {
	if m.Len() != other.Len() {
		return false
	}
	for r := range m.All() {
		o, ok := other.Get(r.Name)
		if !ok || o != r {
			return false
		}
	}
	return true
}
