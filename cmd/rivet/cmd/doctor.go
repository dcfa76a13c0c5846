package cmd

import (
	"fmt"

	"github.com/rivet-ui/rivet/cmd/rivet/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "doctor",
		Short: "Check project configuration",
		Long: `Check the rivet project configuration.

Resolves the enclosing Go module, reads the optional rivet.yaml, and
reports the effective project settings.`,
		Usage: "rivet doctor",
		Run:   runDoctor,
	})
}

func runDoctor(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s\n", cfg.AppName)
	fmt.Printf("Module:  %s\n", cfg.ModulePath)
	fmt.Printf("Root:    %s\n", cfg.Root)
	if cfg.HasConfig {
		fmt.Println("Config:  rivet.yaml")
	} else {
		fmt.Println("Config:  none (defaults)")
	}
	return nil
}
