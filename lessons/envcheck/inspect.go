// Package envcheck reports on the running program and its dependencies: which Go
// runtime it is, where the binary lives and which modules are compiled in. It also
// reads requirement lists and conda style environment files and writes lockfiles.
package envcheck

import (
	"context"
	"fmt"
	"go/build"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"golang.org/x/mod/module"

	"github.com/robbyt/go-pyprimer/internal/helpers"
)

const (
	StatusBuiltin      = "built-in"
	StatusNotInstalled = "NOT INSTALLED"
)

// DefaultPackages is the checklist the lesson walks through, in Go terms: numeric
// and plotting libraries that a plain build lacks, the libraries this module uses,
// and standard library packages.
var DefaultPackages = []string{
	"gonum.org/v1/gonum",
	"gonum.org/v1/plot",
	"gopkg.in/yaml.v3",
	"go.starlark.net",
	"encoding/json",
	"encoding/csv",
	"os",
}

// PackageStatus is the result for one requested name.
type PackageStatus struct {
	Name      string
	Version   string
	Installed bool
}

// Report describes the running program.
type Report struct {
	GoVersion  string
	Executable string
	Platform   string
	MainModule string
	Packages   []PackageStatus
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Go location: %s\n", r.Executable)
	fmt.Fprintf(&b, "Go version: %s\n", r.GoVersion)
	fmt.Fprintf(&b, "Platform: %s\n", r.Platform)
	if r.MainModule != "" {
		fmt.Fprintf(&b, "Module: %s\n", r.MainModule)
	}
	b.WriteString("\nPackage check:\n")
	for _, p := range r.Packages {
		fmt.Fprintf(&b, "  %s: %s\n", p.Name, p.Version)
	}
	return b.String()
}

// Inspector resolves package names against the modules compiled into the binary.
type Inspector struct {
	buildInfo  func() (*debug.BuildInfo, bool)
	executable func() (string, error)
	stdlib     func(string) bool

	logHandler slog.Handler
	logger     *slog.Logger
}

func NewInspector(opts ...Option) (*Inspector, error) {
	i := &Inspector{}
	i.applyDefaults()

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("invalid inspector option: %w", err)
		}
	}

	i.logHandler, i.logger = helpers.SetupLogger(i.logHandler, "envcheck", "Inspector")
	return i, nil
}

// Inspect reports on the runtime and on each name. It never fails: anything that
// cannot be determined is reported as unknown or not installed.
func (i *Inspector) Inspect(ctx context.Context, names []string) Report {
	logger := i.logger.WithGroup("Inspect")

	r := Report{
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	exe, err := i.executable()
	if err != nil {
		logger.WarnContext(ctx, "cannot locate executable", "error", err)
		exe = "unknown"
	}
	r.Executable = exe

	info, ok := i.buildInfo()
	if !ok {
		logger.WarnContext(ctx, "build info not available")
		info = &debug.BuildInfo{}
	}
	r.MainModule = info.Main.Path
	if info.GoVersion != "" {
		r.GoVersion = info.GoVersion
	}

	for _, name := range names {
		status := resolve(info, i.stdlib, name)
		logger.DebugContext(ctx, "package resolved", "name", name, "version", status.Version)
		r.Packages = append(r.Packages, status)
	}
	return r
}

func resolve(info *debug.BuildInfo, stdlib func(string) bool, name string) PackageStatus {
	ps := PackageStatus{Name: name, Version: StatusNotInstalled}
	if module.CheckImportPath(name) != nil {
		return ps
	}

	if m := &info.Main; m.Path != "" && containsPackage(m.Path, name) {
		ps.Version, ps.Installed = versionOf(m), true
		return ps
	}
	for _, dep := range info.Deps {
		if containsPackage(dep.Path, name) {
			ps.Version, ps.Installed = versionOf(dep), true
			return ps
		}
	}

	if stdlib(name) {
		ps.Version, ps.Installed = StatusBuiltin, true
	}
	return ps
}

func versionOf(m *debug.Module) string {
	if m.Replace != nil && m.Replace.Version != "" {
		return m.Replace.Version
	}
	if m.Version == "" {
		return "(devel)"
	}
	return m.Version
}

func containsPackage(modPath, pkg string) bool {
	return pkg == modPath || strings.HasPrefix(pkg, modPath+"/")
}

// isStdlib looks pkg up in GOROOT when a Go installation is present. Without one it
// falls back to the go command's rule that standard library paths have no dot in
// their first element.
func isStdlib(pkg string) bool {
	if root := build.Default.GOROOT; root != "" {
		if fi, err := os.Stat(filepath.Join(root, "src")); err == nil && fi.IsDir() {
			p, err := build.Default.Import(pkg, "", build.FindOnly)
			return err == nil && p.Goroot
		}
	}
	first, _, _ := strings.Cut(pkg, "/")
	return !strings.Contains(first, ".")
}
