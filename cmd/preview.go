/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"advisorseed/internal/bootstrap"
	"advisorseed/internal/bootstrap/logging"
	"advisorseed/internal/errs"
	datasetuse "advisorseed/internal/usecase/dataset"
	"advisorseed/internal/usecase/previewconsole"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate datasets and browse them interactively",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *datasetuse.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		input, err := resolveGenerateInput(cmd)
		if err != nil {
			return err
		}

		ds, err := svc.GenerateDataset(ctx, input)
		if err != nil {
			return errs.Wrap(err, "generate dataset")
		}

		program := tea.NewProgram(
			previewconsole.NewModel(ds),
			tea.WithContext(ctx),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		if _, err := program.Run(); err != nil {
			logging.Error(ctx, "preview console failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "run preview console")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addGenerationFlags(previewCmd)
}
