package commands

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/syclconfigure/internal/build"
	"git.home.luguber.info/inful/syclconfigure/internal/config"
	"git.home.luguber.info/inful/syclconfigure/internal/configure"
	cerrors "git.home.luguber.info/inful/syclconfigure/internal/errors"
	"git.home.luguber.info/inful/syclconfigure/internal/git"
	"git.home.luguber.info/inful/syclconfigure/internal/logfields"
	"git.home.luguber.info/inful/syclconfigure/internal/metrics"
	"git.home.luguber.info/inful/syclconfigure/internal/workspace"
)

// Run resolves the options and performs one configure run.
func (c *CLI) Run(ctx context.Context, g *Global) error {
	g = g.withDefaults()

	var preset *config.Preset
	if c.Config != "" {
		p, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		preset = p
	}

	opts := config.Merge(preset, c.flagOptions())

	base := g.BaseDir
	if c.BuilderDir != "" {
		base = c.BuilderDir
	}
	mgr := workspace.NewManager(base).WithSourceDetector(g.DetectSource)
	layout, err := mgr.Resolve(opts.SourceDir, opts.BuildDir)
	if err != nil {
		return cerrors.InternalError("failed to resolve directories", err)
	}
	opts.SourceDir, opts.BuildDir = layout.SourceDir, layout.BuildDir

	// Rejected options must not leave a fresh build directory behind.
	if err := configure.Validate(opts); err != nil {
		return cerrors.InvalidOptions(err)
	}

	if !c.DryRun {
		if err := mgr.Create(layout); err != nil {
			return cerrors.BuildDirError(layout.BuildDir, err)
		}
	}

	c.logContext(g.Logger, layout.SourceDir)

	var prom *metrics.PrometheusRecorder
	svc := build.NewService(g.Runner).WithOutput(g.Stdout).WithLogger(g.Logger)
	if c.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		svc.WithRecorder(prom)
	}

	res, runErr := svc.Run(ctx, build.Request{
		Options: opts,
		Binary:  config.CMakeBinary(c.CMake, preset),
		DryRun:  c.DryRun,
	})

	if prom != nil {
		if err := prom.WriteTextfile(c.MetricsFile); err != nil {
			g.Logger.Warn("Failed to write metrics file", logfields.Path(c.MetricsFile), logfields.Error(err))
		}
	}
	if res != nil {
		g.Logger.Debug("Run finished", logfields.RunID(res.RunID), logfields.Status(string(res.Status)))
	}
	return runErr
}

// flagOptions maps command-line values onto Options. Unset strings stay
// empty so presets and defaults can fill them.
func (c *CLI) flagOptions() configure.Options {
	return configure.Options{
		SourceDir:        c.SrcDir,
		BuildDir:         c.ObjDir,
		BuildType:        c.BuildType,
		Generator:        c.CMakeGen,
		CUDA:             c.CUDA,
		ROCm:             c.ROCm,
		ROCmPlatform:     configure.ROCmPlatform(c.ROCmPlatform),
		ARM:              c.ARM,
		DisableESIMDCPU:  c.DisableESIMDCPU,
		NoAssertions:     c.NoAssertions,
		NoWerror:         c.NoWerror,
		Docs:             c.Docs,
		SharedLibs:       c.SharedLibs,
		UseLLD:           c.UseLLD,
		ExternalProjects: c.LLVMExternalProjects,
		CMakeOptions:     append([]string(nil), c.CMakeOpt...),
		L0Headers:        c.L0Headers,
		L0Loader:         c.L0Loader,
		UseLibcxx:        c.UseLibcxx,
		LibcxxInclude:    c.LibcxxInclude,
		LibcxxLibrary:    c.LibcxxLibrary,
	}
}

// logContext records CI metadata and the checked-out revision. Both are
// informational; a missing repository is not an error.
func (c *CLI) logContext(log *slog.Logger, srcDir string) {
	attrs := []any{}
	if c.BuildNumber != "" {
		attrs = append(attrs, logfields.BuildNumber(c.BuildNumber))
	}
	if c.Branch != "" {
		attrs = append(attrs, logfields.Branch(c.Branch))
	}
	if c.BaseBranch != "" {
		attrs = append(attrs, logfields.BaseBranch(c.BaseBranch))
	}
	if c.PRNumber != "" {
		attrs = append(attrs, logfields.PRNumber(c.PRNumber))
	}
	if len(attrs) > 0 {
		log.Info("CI context", attrs...)
	}

	head, err := git.ReadRepoHead(srcDir)
	if err != nil {
		log.Debug("Source revision unavailable", logfields.SourceDir(srcDir), logfields.Error(err))
		return
	}
	log.Info("Source revision",
		logfields.Revision(head.ShortCommit()),
		logfields.Branch(head.Branch))
}
