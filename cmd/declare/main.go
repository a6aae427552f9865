// Command declare expands declare DSL invocations and writes declare_gen.go
// for each package:
//
//	declare [flags] [packages]
//	declare list [flags] [packages]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sublee/declare/internal/ctxlog"
	declareinternal "github.com/sublee/declare/internal/declare"
)

var Version = "dev"

var (
	flagTags    string
	flagTests   bool
	flagOut     string
	flagColor   string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "declare [flags] [packages]",
	Short:         "Expand declare DSL invocations into Go code",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupColor(flagColor); err != nil {
			return err
		}

		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd.Context(), args)
	},
}

func init() {
	declareinternal.Version = Version

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagTags, "tags", "b", "", "comma-separated build tags")
	flags.BoolVarP(&flagTests, "tests", "t", false, "include tests")
	flags.StringVarP(&flagColor, "color", "c", "auto", "colorize (auto|always|never)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "declare_gen.go", "output file name")

	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, colorize(err.Error()))
		os.Exit(1)
	}
}

// generate writes the generated file of each package.
func generate(ctx context.Context, patterns []string) error {
	log := ctxlog.FromContext(ctx)

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	outs, err := declareinternal.Main(ctx, wd, os.Environ(), flagTags, flagTests, flagOut, patterns)
	if err != nil {
		return err
	}

	for out, code := range outs {
		if !filepath.IsAbs(out) {
			out = filepath.Join(wd, out)
		}
		if err := os.WriteFile(out, code, 0o644); err != nil {
			return err
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		log.Info("generated", "file", out)
	}
	return nil
}
