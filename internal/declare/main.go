// Package declareinternal drives code generation: it loads packages, expands
// the DSL invocations of each package and frames the generated files.
package declareinternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/declare/internal/ctxlog"
	"github.com/sublee/declare/internal/declare/parse"
	"github.com/sublee/declare/pkg/declareerrors"
)

var Version string

// Main is the main entry point for declare. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages and carries the logger. wd is the
// path of the working directory. env is the environment variables to use when
// running the tool. tags is the build tags to use when loading packages. tests
// indicates whether to include test files. outFile is the name of the output
// file to generate in each package. And patterns are the package patterns to
// process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	log := ctxlog.FromContext(ctx)

	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded packages", "count", len(pkgs), "patterns", patterns)

	outs := make(map[string][]byte)
	var errs error

	for _, pkg := range pkgs {
		d, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := d.Build(); err != nil {
			log.Debug("failed to build package", "pkg", pkg.PkgPath)
			errs = errors.Join(errs, err)
			continue
		}

		outDir := filepath.Dir(pkg.GoFiles[0])
		out := filepath.Join(outDir, outFile)

		code := d.Generate(out)
		if len(code) == 0 {
			log.Debug("skipped package without declare files", "pkg", pkg.PkgPath)
			continue
		}

		if rel, err := filepath.Rel(wd, out); err == nil {
			out = rel
		}
		outs[out] = code
		log.Debug("generated", "pkg", pkg.PkgPath, "out", out, "schemas", d.Registry().Len())
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// Listing describes a registered schema.
type Listing struct {
	Package  string   `json:"package" yaml:"package"`
	Name     string   `json:"name" yaml:"name"`
	Type     string   `json:"type" yaml:"type"`
	Fields   []string `json:"fields" yaml:"fields"`
	Default  string   `json:"default" yaml:"default"`
	Strategy string   `json:"strategy" yaml:"strategy"`
	Position string   `json:"position" yaml:"position"`
}

// List loads packages like [Main] and lists the registered schemas without
// expanding invocations.
func List(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]Listing, error) {
	log := ctxlog.FromContext(ctx)

	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	var list []Listing
	var errs error
	for _, pkg := range pkgs {
		d, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := d.BuildSchemas(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		for s := range d.Registry().All() {
			pos := pkg.Fset.Position(s.Pos())
			if rel, err := filepath.Rel(wd, pos.Filename); err == nil {
				pos.Filename = rel
			}

			list = append(list, Listing{
				Package:  pkg.PkgPath,
				Name:     s.Name,
				Type:     s.Type.String(),
				Fields:   s.FieldNames(),
				Default:  s.Default.String(),
				Strategy: s.Strategy(),
				Position: pos.String(),
			})
		}
		log.Debug("listed", "pkg", pkg.PkgPath, "schemas", d.Registry().Len())
	}
	if errs != nil {
		return nil, reorderErrors(errs)
	}

	return list, nil
}

// load loads packages.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + parse.BuildTag},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if isUnusedInDeclareFile(pkg, err) {
				continue
			}

			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// isUnusedInDeclareFile reports whether err is an unused variable or import
// error in a declare-tagged file. Identifiers referred only by DSL blocks look
// unused to the type checker, but the generated code uses them.
func isUnusedInDeclareFile(pkg *packages.Package, err packages.Error) bool {
	if err.Kind != packages.TypeError {
		return false
	}
	if !strings.Contains(err.Msg, "declared and not used") && !strings.Contains(err.Msg, "imported and not used") {
		return false
	}

	path, _, _ := strings.Cut(err.Pos, ":")
	p, perr := parse.New(pkg)
	if perr != nil {
		return false
	}
	for _, file := range p.DeclareGoFiles() {
		if pkg.Fset.File(file.Pos()).Name() == path {
			return true
		}
	}
	return false
}

// reorderErrors flattens joined errors and sorts them by message so that
// diagnostics of a file are listed by position.
func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	list := declareerrors.Flatten(errs)
	slices.SortStableFunc(list, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return errors.Join(list...)
}
