package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	declareinternal "github.com/sublee/declare/internal/declare"
)

var flagFormat string

var listCmd = &cobra.Command{
	Use:   "list [packages]",
	Short: "List declared struct types and their DSL names",
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}

		list, err := declareinternal.List(cmd.Context(), wd, os.Environ(), flagTags, flagTests, args)
		if err != nil {
			return err
		}
		return printList(cmd.OutOrStdout(), flagFormat, list)
	},
}

func init() {
	listCmd.Flags().StringVar(&flagFormat, "format", "text", "output format (text|json|yaml)")
}

func printList(w io.Writer, format string, list []declareinternal.Listing) error {
	switch format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tTYPE\tFIELDS\tDEFAULT\tSTRATEGY\tPOSITION")
		for _, l := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", l.Name, l.Type, strings.Join(l.Fields, ","), l.Default, l.Strategy, l.Position)
		}
		return tw.Flush()

	case "json":
		if list == nil {
			list = []declareinternal.Listing{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("invalid --format value: %s", format)
}
