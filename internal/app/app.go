// Package app implements the application layer for lockcheck.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/lockcheck/internal/engine/checker"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// StdinPath selects standard input as the installed package list.
const StdinPath = "-"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	collector    ports.DependencyCollector
	recipes      ports.RecipeFingerprinter
	lister       ports.PackageLister
	exporter     ports.RecipeExporter
	installer    ports.PackageInstaller
	store        ports.ReportStore
	telemetry    ports.Telemetry
	logger       ports.Logger

	out     io.Writer
	stdin   io.Reader
	workDir string
	now     func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	collector ports.DependencyCollector,
	recipes ports.RecipeFingerprinter,
	lister ports.PackageLister,
	exporter ports.RecipeExporter,
	installer ports.PackageInstaller,
	store ports.ReportStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		collector:    collector,
		recipes:      recipes,
		lister:       lister,
		exporter:     exporter,
		installer:    installer,
		store:        store,
		telemetry:    telemetry,
		logger:       logger,
		out:          os.Stdout,
		stdin:        os.Stdin,
		now:          time.Now,
	}
}

// WithOutput sets the writer violations are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithInput sets the reader used when the installed list is read from stdin.
func (a *App) WithInput(r io.Reader) *App {
	a.stdin = r
	return a
}

// WithWorkDir sets the directory the configuration is searched from.
// It defaults to the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithClock sets the clock used to timestamp reports.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// EnableJSONLogs switches the logger to JSON output if it supports it.
func (a *App) EnableJSONLogs() {
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(true)
	}
}

// RecipeCheckOptions configures CheckRecipes.
type RecipeCheckOptions struct {
	ConfigPath string
	// Base overrides the configured base ref.
	Base string
	// Head overrides the configured head ref. Empty means the working tree.
	Head string
}

// CheckRecipes compares the manifests of the base and head refs and reports
// every recipe that changed without a version bump.
func (a *App) CheckRecipes(ctx context.Context, opts RecipeCheckOptions) error {
	defer a.closeTelemetry()

	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	base := firstNonEmpty(opts.Base, cfg.BaseRef)
	head := firstNonEmpty(opts.Head, cfg.HeadRef, domain.WorkingTreeRef)

	master, branch, err := a.collectPair(ctx, cfg, base, head)
	if err != nil {
		return err
	}

	return a.checkRecipes(ctx, cfg, base, head, master, branch)
}

// LockCheckOptions configures CheckLock.
type LockCheckOptions struct {
	ConfigPath string
	// InstalledFile holds "name/version" lines. Empty queries the package cache,
	// StdinPath reads standard input.
	InstalledFile string
}

// CheckLock compares the installed packages against the working tree manifest.
func (a *App) CheckLock(ctx context.Context, opts LockCheckOptions) error {
	defer a.closeTelemetry()

	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	manifest, err := a.collectLocked(ctx, cfg)
	if err != nil {
		return err
	}

	return a.checkLock(ctx, cfg, manifest, opts.InstalledFile)
}

// PipelineOptions configures Pipeline.
type PipelineOptions struct {
	ConfigPath string
}

// Pipeline runs the whole CI flow: the recipe bump check between the base ref
// and the working tree, then the export, install and lock completeness check.
func (a *App) Pipeline(ctx context.Context, opts PipelineOptions) error {
	defer a.closeTelemetry()

	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	head := firstNonEmpty(cfg.HeadRef, domain.WorkingTreeRef)
	master, branch, err := a.collectPair(ctx, cfg, cfg.BaseRef, domain.WorkingTreeRef)
	if err != nil {
		return err
	}

	if err := a.checkRecipes(ctx, cfg, cfg.BaseRef, head, master, branch); err != nil {
		return err
	}

	src := cfg.ManifestSource(cfg.Root)

	err = a.stage(ctx, domain.StageExport, func(ctx context.Context) error {
		for r := range branch.All() {
			folder, err := a.recipes.Locate(src.RecipesDir, r.Name, r.Version)
			if err != nil {
				return err
			}
			if err := a.exporter.Export(ctx, folder, r.Version); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = a.stage(ctx, domain.StageInstall, func(ctx context.Context) error {
		return a.installer.Install(ctx, src)
	})
	if err != nil {
		return err
	}

	return a.checkLock(ctx, cfg, branch, "")
}

func (a *App) checkRecipes(
	ctx context.Context,
	cfg *domain.Config,
	base, head string,
	master, branch *domain.PackageManifest,
) error {
	c := checker.New(cfg.VersionPolicy)

	var violations []domain.Violation
	_ = a.stage(ctx, domain.StageCheckRecipes, func(context.Context) error {
		a.logRecipeNotes(c.ClassifyRecipeChanges(master, branch))
		violations = c.CheckRecipeBump(master, branch)
		return nil
	})

	report := domain.Report{
		Check:      domain.CheckRecipeBump,
		Base:       base,
		Head:       head,
		Violations: violations,
	}
	return a.finish(cfg, report, domain.ErrRecipeBumpViolations)
}

func (a *App) checkLock(
	ctx context.Context,
	cfg *domain.Config,
	manifest *domain.PackageManifest,
	installedFile string,
) error {
	lines, err := a.readInstalled(ctx, installedFile)
	if err != nil {
		return err
	}

	installed, err := domain.ParseInstalledRefs(lines)
	if err != nil {
		return err
	}

	c := checker.New(cfg.VersionPolicy)

	report := domain.Report{
		Check: domain.CheckLockCompleteness,
		Head:  firstNonEmpty(cfg.HeadRef, domain.WorkingTreeRef),
	}
	_ = a.stage(ctx, domain.StageCheckLock, func(context.Context) error {
		report.Violations = c.CheckLockCompleteness(installed, manifest)
		if cfg.ReportUnused {
			report.Unused = c.UnusedLocks(installed, manifest)
		}
		return nil
	})

	for _, name := range report.Unused {
		r, _ := manifest.Get(name)
		a.logger.Warn(fmt.Sprintf("%s: locked but never installed", r.Reference()))
	}

	return a.finish(cfg, report, domain.ErrLockDriftDetected)
}

// finish prints the violations, persists the report and turns a failed report into failure.
func (a *App) finish(cfg *domain.Config, report domain.Report, failure error) error {
	report.CheckedAt = a.now().UTC()

	for _, v := range report.Violations {
		_, _ = fmt.Fprintln(a.out, v.String())
	}

	var storeErr error
	if path := cfg.ReportFile(); path != "" {
		storeErr = a.store.Put(path, report)
	}

	if !report.Failed() {
		return storeErr
	}
	if storeErr != nil {
		a.logger.Error(storeErr)
	}

	err := zerr.With(zerr.Wrap(failure, string(report.Check)), "violations", len(report.Violations))
	a.logger.Warn(fmt.Sprintf("%s check failed with %d violation(s)", report.Check, len(report.Violations)))
	return err
}

func (a *App) logRecipeNotes(changes []domain.RecipeChange) {
	for _, ch := range changes {
		switch ch.Status {
		case domain.RecipeAdded:
			a.logger.Info(fmt.Sprintf("%s: package added", ch.Branch.Reference()))
		case domain.RecipeBumped:
			a.logger.Info(fmt.Sprintf("%s: recipe changed, version %s -> %s",
				ch.Branch.Name, ch.Master.Version, ch.Branch.Version))
		case domain.RecipeUnchanged:
			if ch.Master.Version != ch.Branch.Version {
				a.logger.Info(fmt.Sprintf("%s: version %s -> %s without recipe change",
					ch.Branch.Name, ch.Master.Version, ch.Branch.Version))
			}
		case domain.RecipeChangedWithoutBump:
		}
	}
}

func (a *App) loadConfig(path string) (*domain.Config, error) {
	cwd := a.workDir
	if cwd == "" {
		var err error
		cwd, err = os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
	}

	cfg, err := a.configLoader.Load(cwd, path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// collectPair collects the base and head manifests concurrently.
func (a *App) collectPair(
	ctx context.Context,
	cfg *domain.Config,
	base, head string,
) (master, branch *domain.PackageManifest, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.stage(gctx, domain.StageCollectBase, func(ctx context.Context) error {
			var err error
			master, err = a.collector.Collect(ctx, cfg, base)
			return err
		})
	})
	g.Go(func() error {
		return a.stage(gctx, domain.StageCollectHead, func(ctx context.Context) error {
			var err error
			branch, err = a.collector.Collect(ctx, cfg, head)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return master, branch, nil
}

// collectLocked parses the working tree manifest without fingerprinting recipes.
func (a *App) collectLocked(ctx context.Context, cfg *domain.Config) (*domain.PackageManifest, error) {
	lockCfg := *cfg
	lockCfg.RecipesDir = ""

	var manifest *domain.PackageManifest
	err := a.stage(ctx, domain.StageCollectHead, func(ctx context.Context) error {
		var err error
		manifest, err = a.collector.Collect(ctx, &lockCfg, domain.WorkingTreeRef)
		return err
	})
	return manifest, err
}

func (a *App) readInstalled(ctx context.Context, path string) ([]string, error) {
	var (
		data []byte
		err  error
	)
	switch path {
	case "":
		var refs []string
		err = a.stage(ctx, domain.StageListCache, func(ctx context.Context) error {
			refs, err = a.lister.ListInstalled(ctx)
			return err
		})
		return refs, err
	case StdinPath:
		data, err = io.ReadAll(a.stdin)
	default:
		data, err = os.ReadFile(path) //nolint:gosec // Path is provided by user
	}
	if err != nil {
		readErr := zerr.With(zerr.Wrap(domain.ErrManifestUnreadable, "cannot read installed list"), "file", path)
		return nil, zerr.With(readErr, "reason", err.Error())
	}
	return strings.Split(string(data), "\n"), nil
}

func (a *App) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := a.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}

func (a *App) closeTelemetry() {
	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn("failed to close telemetry: " + err.Error())
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
