package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const starterProfile = `name: me
person:
  chronological_age: 40
  height_cm: 175
  weight_kg: 75
  resting_hr: 65
  activity_level: Moderately Active
  conditions: []
financial:
  annual_income: 75000
  liquid_assets: 20000
  illiquid_assets: 130000
  liabilities: 0
  housing_status: Rent
`

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter profile YAML to fill in",
		RunE: func(_ *cobra.Command, _ []string) error {
			p := filepath.Clean(path)

			if !force {
				if _, err := os.Stat(p); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", p)
				}
			}

			if err := os.WriteFile(p, []byte(starterProfile), 0o644); err != nil {
				return err
			}

			fmt.Printf("Wrote %s — edit it, then run `agelens assess -p %s`\n", p, p)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "profile.yaml", "Where to write the starter profile")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return c
}
