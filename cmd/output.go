package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/bobibot/bobibot/internal/config"
	"github.com/bobibot/bobibot/internal/schema"
)

// printBanner writes the startup header to stdout.
func printBanner(cfg *config.Config) {
	color.New(color.FgCyan, color.Bold).Printf("%s v%s\n", cfg.Name, version)
	fmt.Printf("   Model:    %s\n", cfg.Model)
	fmt.Printf("   Endpoint: %s\n", orUnset(cfg.APIEndpoint))
	fmt.Println()
}

// writeTools writes one aligned row per tool.
func writeTools(w io.Writer, ts []schema.Tool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	for _, t := range ts {
		fmt.Fprintf(tw, "%s\t%s\n", t.Name(), t.Description())
	}
	return tw.Flush()
}

// writeYAML writes v as YAML.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
