package config

// SchemaVersion is the only lockcheck.yaml version understood by the loader.
const SchemaVersion = "1"

// Lockfile represents the structure of the lockcheck.yaml configuration file.
// ReportPath is a pointer so that an explicit "" disables the report.
type Lockfile struct {
	Version       string        `yaml:"version"`
	Repository    RepositoryDTO `yaml:"repository"`
	BaseRef       string        `yaml:"base_ref"`
	HeadRef       string        `yaml:"head_ref"`
	Conanfile     string        `yaml:"conanfile"`
	Profile       string        `yaml:"profile"`
	RecipesDir    string        `yaml:"recipes_dir"`
	VersionPolicy string        `yaml:"version_policy"`
	ReportUnused  bool          `yaml:"report_unused"`
	ReportPath    *string       `yaml:"report_path"`
	Filter        FilterDTO     `yaml:"filter"`
}

// RepositoryDTO locates the recipe repository.
type RepositoryDTO struct {
	ServerURL string `yaml:"server_url"`
	Name      string `yaml:"name"`
}

// FilterDTO holds the profile requirement filter rules.
type FilterDTO struct {
	Exclude []string `yaml:"exclude"`
}
