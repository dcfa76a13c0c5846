package cmd

import (
	"fmt"
	"sort"

	"github.com/rivet-ui/rivet/cmd/rivet/internal/config"
	"github.com/rivet-ui/rivet/pkg/binding"
)

func init() {
	RegisterCommand(&Command{
		Name:  "conventions",
		Short: "Print effective binding conventions",
		Long: `Print the effective binding conventions.

Loads convention overrides from the project's rivet.yaml (if present),
applies them to the registered defaults, and prints the result. Override
names that match no registered widget type are reported as warnings.`,
		Usage: "rivet conventions",
		Run:   runConventions,
	})
}

func runConventions(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := binding.LoadOptional(root)
	if err != nil {
		return err
	}
	for _, name := range cfg.ApplyOverrides() {
		fmt.Printf("Warning: override %q matches no registered widget type\n", name)
	}

	registered := binding.RegisteredConventions()
	names := make([]string, 0, len(registered))
	for name := range registered {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		convention := registered[name]
		fmt.Printf("%-12s property=%s", name, orNone(convention.Property))
		if convention.Trigger != "" {
			fmt.Printf(" trigger=%s", convention.Trigger)
		}
		if convention.Observe != "" {
			fmt.Printf(" observe=%s", convention.Observe)
		}
		fmt.Println()
	}
	return nil
}

func orNone(value string) string {
	if value == "" {
		return "(none)"
	}
	return value
}
