// Package main provides the CLI entry point for addrbook-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/addrbook-go/internal/logger"
	"github.com/ukaji3/addrbook-go/pkg/addrbook"
	"github.com/ukaji3/addrbook-go/pkg/addrbook/output"
	"github.com/ukaji3/addrbook-go/pkg/addrbook/report"
)

var (
	outputPath      string
	schemaPath      string
	jsonPath        string
	pretty          bool
	lowercaseEmails bool
	logLevel        string
	logJSON         bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "addrbook [input.html]",
		Short: "Convert an exported address book into a contact workbook",
		Long: `addrbook-go reads the contact table of an exported address-book page,
groups its cells into contacts and writes them, sorted by last name, to an
Excel workbook. Entries the exporting tool placed in the wrong column are
listed so they can be added by hand.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path (default: input path with .xlsx)")
	rootCmd.Flags().StringVar(&schemaPath, "schema", "", "YAML schema describing the table and column layout")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "Also write the extracted records and warnings as JSON to this path")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&lowercaseEmails, "lowercase-emails", false, "Trim and lowercase email addresses")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.Flags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	log, err := logger.New(logger.Options{
		Level: logLevel,
		JSON:  logJSON,
		Out:   cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := addrbook.DefaultOptions()
	opts.LowercaseEmails = lowercaseEmails
	opts.Logger = log
	if schemaPath != "" {
		schema, err := addrbook.LoadSchema(schemaPath)
		if err != nil {
			return err
		}
		opts.Schema = schema
	}

	notifier := report.Multi{
		&report.TextNotifier{Out: cmd.OutOrStdout()},
		&report.LogNotifier{Logger: log},
	}

	result, err := addrbook.Convert(args[0], outputPath, opts, notifier)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if jsonPath != "" {
		jsonData, err := output.ToJSON(result, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Debug("json written", zap.String("path", jsonPath))
	}

	return nil
}
