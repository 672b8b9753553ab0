/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"advisorseed/internal/bootstrap"
	"advisorseed/internal/bootstrap/logging"
	"advisorseed/internal/domain/dataset"
	"advisorseed/internal/errs"
	datasetuse "advisorseed/internal/usecase/dataset"
)

const sqlExportFileName = "seed_data.sql"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate demo datasets and export them",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *datasetuse.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		format, _ := cmd.Flags().GetString("format")
		outDir, _ := cmd.Flags().GetString("out")
		preview, _ := cmd.Flags().GetBool("preview")

		mode, err := parseExportFormat(format)
		if err != nil {
			return err
		}
		if strings.TrimSpace(outDir) == "" {
			outDir = app.Config.Export.Dir
		}

		input, err := resolveGenerateInput(cmd)
		if err != nil {
			return err
		}

		ds, err := svc.GenerateDataset(ctx, input)
		if err != nil {
			logging.Error(ctx, "dataset generation failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "generate dataset")
		}

		if preview {
			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"preview: seed=%d members=%d citations=%d governance=%d (nothing written)\n",
				ds.Seed, len(ds.Members), len(ds.Citations), len(ds.Governance))
			if err != nil {
				return errs.Wrap(err, "write preview output")
			}
			return nil
		}

		if mode == formatCSV || mode == formatBoth {
			if err := svc.ExportCSV(ctx, ds, outDir); err != nil {
				return errs.Wrap(err, "export csv")
			}
		}
		if mode == formatSQL || mode == formatBoth {
			if err := svc.ExportSQL(ctx, ds, filepath.Join(outDir, sqlExportFileName)); err != nil {
				return errs.Wrap(err, "export sql")
			}
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(),
			"generated seed=%d members=%d citations=%d governance=%d out=%s format=%s\n",
			ds.Seed, len(ds.Members), len(ds.Citations), len(ds.Governance), outDir, mode); err != nil {
			return errs.Wrap(err, "write generate output")
		}
		return nil
	}),
}

type exportFormat string

const (
	formatCSV  exportFormat = "csv"
	formatSQL  exportFormat = "sql"
	formatBoth exportFormat = "both"
)

func parseExportFormat(raw string) (exportFormat, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return formatCSV, nil
	}
	switch exportFormat(normalized) {
	case formatCSV, formatSQL, formatBoth:
		return exportFormat(normalized), nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected: csv, sql or both)", raw)
	}
}

// resolveGenerateInput merges flags with an optional run profile. A
// governance count of 0 falls back to the default; the domain API is
// where an explicit zero-count run is expressed.
func resolveGenerateInput(cmd *cobra.Command) (datasetuse.GenerateInput, error) {
	seed, _ := cmd.Flags().GetInt64("seed")
	govCount, _ := cmd.Flags().GetInt("governance-count")
	profilePath, _ := cmd.Flags().GetString("profile")

	input := datasetuse.GenerateInput{Seed: seed}
	if cmd.Flags().Changed("governance-count") {
		input.GovernanceCount = govCount
	}

	if strings.TrimSpace(profilePath) != "" {
		profile, err := dataset.LoadRunProfile(profilePath)
		if err != nil {
			return datasetuse.GenerateInput{}, errs.Wrapf(err, "load run profile %q", profilePath)
		}
		input = input.ApplyProfile(profile)
	}

	if input.GovernanceCount == 0 && !cmd.Flags().Changed("governance-count") {
		input.GovernanceCount = datasetuse.DefaultGovernanceCount
	}
	if input.GovernanceCount < 0 {
		return datasetuse.GenerateInput{}, fmt.Errorf("invalid --governance-count %d", input.GovernanceCount)
	}
	return input, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addGenerationFlags(generateCmd)
	generateCmd.Flags().String("format", "csv", "Export format: csv|sql|both")
	generateCmd.Flags().String("out", "", "Export directory (default: export.dir from config)")
	generateCmd.Flags().Bool("preview", false, "Generate but skip the write step")
}

func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("seed", 0, "Random seed (0 derives one from the current time)")
	cmd.Flags().Int("governance-count", datasetuse.DefaultGovernanceCount, "Governance log entries to generate")
	cmd.Flags().String("profile", "", "TOML run profile overriding counts and seed")
}
