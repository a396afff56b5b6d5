package main

import (
	"github.com/aretw0/typeguard/internal/cli"
	"github.com/aretw0/typeguard/internal/metrics"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check --schema <file> [document ...]",
	Short: "Validate YAML/JSON documents against a field schema",
	Long: `Validates each document against the schema. Use "-" (or no arguments)
to read from stdin. Documents that are top-level arrays are validated element
by element, and YAML streams are validated document by document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath, _ := cmd.Flags().GetString("schema")
		lenient, _ := cmd.Flags().GetBool("lenient")
		metricsFile, _ := cmd.Flags().GetString("metrics-file")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		recorder := metrics.NewRecorder()
		_, checkErr := cli.Check(ctx, cli.CheckOptions{
			SchemaPath: schemaPath,
			Documents:  args,
			Lenient:    lenient,
			Color:      colorEnabled(cmd),
			Stdin:      cmd.InOrStdin(),
			Out:        cmd.OutOrStdout(),
			Logger:     logger,
			Metrics:    recorder,
		})

		if metricsFile != "" {
			if err := recorder.WriteFile(metricsFile); err != nil {
				logger.Error("metrics not written", "file", metricsFile, "error", err)
			}
		}

		if sig := ctx.Signal(); sig != nil {
			logger.Info("check interrupted", "signal", sig)
		}

		return checkErr
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("schema", "s", "", "Path to the YAML/JSON field schema")
	checkCmd.Flags().Bool("lenient", false, "Compile unsupported field specs as never-valid fields")
	checkCmd.Flags().String("metrics-file", "", "Write Prometheus text-format counters to this file")
	_ = checkCmd.MarkFlagRequired("schema")
}
