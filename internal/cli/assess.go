package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nvidales/agelens/internal/domain"
	"github.com/nvidales/agelens/internal/infra/yamlprofile"
	"github.com/nvidales/agelens/internal/usecase"
	"github.com/nvidales/agelens/internal/usecase/interpret"
)

func assessCmd() *cobra.Command {
	var profile string
	var format string

	c := &cobra.Command{
		Use:   "assess",
		Short: "Score a profile YAML file without the interactive form",
		RunE: func(_ *cobra.Command, _ []string) error {
			uc := usecase.NewAssessProfile(yamlprofile.NewLoader())

			a, err := uc.Execute(profile)
			if err != nil {
				return err
			}

			return printAssessment(os.Stdout, a, format)
		},
	}

	c.Flags().StringVarP(&profile, "profile", "p", "", "Profile YAML path (required)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("profile")
	return c
}

func printAssessment(w io.Writer, a domain.Assessment, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	case "pretty", "":
		printPrettyAssessment(w, a)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyAssessment(w io.Writer, a domain.Assessment) {
	bio := interpret.BioTrend(a.BioDelta)
	fin := interpret.FinTrend(a.FinDelta)

	fmt.Fprintf(w, "Net worth:       %s\n", formatCurrency(a.NetWorth))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Biological age:  %.1f  %s %+.1f vs chronological (%.0f)\n",
		a.BiologicalAge, bio.Glyph, a.BioDelta, a.ChronologicalAge)
	fmt.Fprintf(w, "Financial age:   %.1f  %s %+.1f vs biological\n",
		a.FinancialAge, fin.Glyph, a.FinDelta)
	fmt.Fprintf(w, "Fin/Bio ratio:   %.2f\n", a.Ratio)
	fmt.Fprintln(w)
	fmt.Fprintln(w, a.Narrative)
}

func formatCurrency(v float64) string {
	if v < 0 {
		return "-$" + humanize.CommafWithDigits(-v, 0)
	}
	return "$" + humanize.CommafWithDigits(v, 0)
}
