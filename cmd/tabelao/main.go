package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/grupobu/tabelao/pkg/config"
	"github.com/grupobu/tabelao/pkg/service"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "tabelao",
	Short: "Generate the BU dashboard from the master spreadsheet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [spreadsheet]",
	Short: "Read the BU spreadsheet and write the HTML dashboard or JSON chunks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := log.InfoLevel
		if debug {
			level = log.DebugLevel
		}
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tabelao",
			Level:           level,
		})

		// .env values feed the TABELAO_* environment overrides
		_ = gotenv.Load()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.SourcePath = args[0]
		}

		if debug {
			pp.Fprintln(os.Stderr, cfg)
		}

		processor := service.NewProcessor(cfg, logger)
		if err := processor.Run(); err != nil {
			logger.Fatal("run failed", "error", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Verbose logging plus a resolved-config dump")

	generateCmd.Flags().String("source", "", "Source spreadsheet (.xlsx or .xls)")
	generateCmd.Flags().StringP("out", "o", "", "Output directory")
	generateCmd.Flags().String("mode", "", "Output mode: html or json")
	generateCmd.Flags().Int("chunk-size", 0, "Maximum rows per JSON chunk file")
	generateCmd.Flags().Int("max-rows", 0, "Row cap per BU (0 = all rows)")
	generateCmd.Flags().Int("default-year", 0, `Year applied to compact dates like "7-jan" that carry none`)

	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
