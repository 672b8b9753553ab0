/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"advisorseed/internal/bootstrap"
	"advisorseed/internal/bootstrap/logging"
	"advisorseed/internal/errs"
	datasetuse "advisorseed/internal/usecase/dataset"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate demo datasets and load them into the database",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *datasetuse.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		input, err := resolveGenerateInput(cmd)
		if err != nil {
			return err
		}

		if err := app.InitSchema(ctx); err != nil {
			return errs.Wrap(err, "initialize schema")
		}

		ds, err := svc.GenerateDataset(ctx, input)
		if err != nil {
			return errs.Wrap(err, "generate dataset")
		}

		if err := svc.LoadDataset(ctx, ds); err != nil {
			logging.Error(ctx, "dataset load failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "load dataset")
		}

		counts, err := svc.Summary(ctx)
		if err != nil {
			return errs.Wrap(err, "summarize dataset")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(),
			"loaded seed=%d member_profiles=%d citation_registry=%d governance=%d dsn=%s\n",
			ds.Seed, counts.Members, counts.Citations, counts.Governance, app.Config.Database.DSN); err != nil {
			return errs.Wrap(err, "write load output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(loadCmd)
	addGenerationFlags(loadCmd)
}
