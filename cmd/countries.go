/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"advisorseed/internal/domain/dataset"
	"advisorseed/internal/errs"
)

// countriesCmd prints the static country profile table. It needs no
// database, so it skips the app bootstrap.
var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Show the supported country profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if _, err := fmt.Fprintf(out, "%-5s %-7s %-9s %-22s %-22s %s\n",
			"code", "members", "pres.age", "income range", "balance range", "personas"); err != nil {
			return errs.Wrap(err, "write countries header")
		}
		for _, country := range dataset.Countries() {
			if _, err := fmt.Fprintf(out, "%-5s %-7d %-9d %-22s %-22s %s\n",
				country.Code,
				country.MemberCount,
				country.PreservationAge,
				fmt.Sprintf("%d-%d", country.IncomeMin, country.IncomeMax),
				fmt.Sprintf("%d-%d", country.BalanceMin, country.BalanceMax),
				strings.Join(country.Personas, ", "),
			); err != nil {
				return errs.Wrap(err, "write country row")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countriesCmd)
}
