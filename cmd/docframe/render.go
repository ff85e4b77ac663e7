package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/docframe/internal/presentation/tui"
	"github.com/aretw0/docframe/pkg/connection"
	"github.com/aretw0/docframe/pkg/observability"
	"github.com/aretw0/docframe/pkg/output"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:               "render <example>",
	Short:             "Render an example document on the engine",
	Long:              `Builds the named example, sends it to the configured engine and writes the rendered file.`,
	Args:              exampleArg,
	ValidArgsFunction: completeExamples,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		formatName := state.cfg.Format
		if cmd.Flags().Changed("format") {
			formatName, _ = cmd.Flags().GetString("format")
		}
		format, err := output.Parse(formatName)
		if err != nil {
			return err
		}
		params, err := parseParams(cmd)
		if err != nil {
			return err
		}

		doc, err := state.docs.Build(name)
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			outPath = state.cfg.Output
		}
		if outPath == "" {
			outPath = name + format.Extension()
		}

		reg := prometheus.NewRegistry()
		client := connection.New(state.cfg.URL,
			connection.WithToken(state.cfg.Token),
			connection.WithLogger(state.logger),
			connection.WithMetrics(observability.NewMetrics(reg)),
		)
		if show, _ := cmd.Flags().GetBool("metrics"); show {
			defer writeMetrics(cmd.ErrOrStderr(), reg)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), state.cfg.Timeout)
		defer cancel()

		status := tui.NewStatus(cmd.OutOrStdout())
		res, err := client.Convert(ctx, doc, format, params)
		if err != nil {
			status.Failure("%s: %v", name, err)
			return fmt.Errorf("render %s: %w", name, err)
		}

		if outPath == "-" {
			_, err = cmd.OutOrStdout().Write(res.Data)
			return err
		}
		if err := os.WriteFile(outPath, res.Data, 0o644); err != nil {
			return err
		}
		status.Success("wrote %s (%d bytes, %s)", outPath, len(res.Data), res.ContentType)
		return nil
	},
}

// parseParams reads repeated --param key=value flags. Values that look like
// integers are sent as numbers.
func parseParams(cmd *cobra.Command) (output.Params, error) {
	raw, _ := cmd.Flags().GetStringToString("param")
	if len(raw) == 0 {
		return nil, nil
	}
	params := output.Params{}
	for k, v := range raw {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && fmt.Sprint(n) == strings.TrimSpace(v) {
			params[k] = n
			continue
		}
		params[k] = v
	}
	return params, nil
}

// writeMetrics prints everything g collected in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		state.logger.Warn("Gathering metrics failed", "error", err)
		return
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			state.logger.Warn("Writing metrics failed", "error", err)
			return
		}
	}
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("format", "f", "pdf", "Output format: pdf, png, jpeg, html, ps or text")
	renderCmd.Flags().StringP("out", "o", "", "Output file, - for stdout (default <example><ext>)")
	renderCmd.Flags().Bool("metrics", false, "Print client metrics in Prometheus text format to stderr")
	renderCmd.Flags().StringToString("param", nil, "Output parameter, e.g. --param dpi=300")
}
