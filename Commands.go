package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vanish000/Spreadsheet/spreadsheet"
)

func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "spreadsheet",
		Short:         "Spreadsheet workbooks over HTTP and in the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Configuration file")

	rootCmd.AddCommand(
		newServeCommand(&configPath),
		newEvalCommand(),
		newConvertCommand(),
		newShellCommand(),
	)

	return rootCmd
}

func newServeCommand(configPath *string) *cobra.Command {
	var listen string
	var databasePath string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			if listen != "" {
				config.Server.Listen = listen
			}
			if databasePath != "" {
				config.Storage.DatabasePath = databasePath
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return RunApp(ctx, config)
		},
	}

	serveCmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVar(&databasePath, "database", "", "bbolt database file (overrides config and "+DatabaseFilepathEnv+")")

	return serveCmd
}

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <formula>",
		Short: "Evaluate a two-operand formula such as =1+2",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := spreadsheet.DefaultEvaluator().Evaluate(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), spreadsheet.NumberValue(result).String())
			return nil
		},
	}
}

func newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert between .json, .xlsx and .csv (csv holds the first worksheet)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			workbook := spreadsheet.NewWorkbook()

			if err := LoadFile(workbook, args[0]); err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			if err := SaveFile(workbook, args[1]); err != nil {
				return fmt.Errorf("write %s: %w", args[1], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d worksheets)\n", args[0], args[1], workbook.WorksheetCount())
			return nil
		},
	}
}

func newShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell [file]",
		Short: "Edit a workbook interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workbook := spreadsheet.NewWorkbook()

			if len(args) == 1 {
				if err := LoadFile(workbook, args[0]); err != nil {
					return err
				}
			}

			NewShell(workbook, cmd.OutOrStdout()).Run()
			return nil
		},
	}
}
