package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tsingjyujing/moodscope/analyzer"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// writeReport prints a report in the requested format.
func writeReport(w io.Writer, report *analyzer.Report, format string) error {
	switch format {
	case FormatText:
		return analyzer.Render(w, report)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// readInput joins the arguments, or reads all of stdin when there are none.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func NewAnalyzeCommand() *cobra.Command {
	var format string
	var noColor bool

	analyzeCommand := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze the mood of a text, read from the arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != FormatText && format != FormatJSON && format != FormatYAML {
				return fmt.Errorf("unknown output format: %s", format)
			}
			if noColor {
				color.NoColor = true
			}
			input, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			a, err := buildAnalyzer(readConfig())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			report, err := a.Analyze(cmd.Context(), input)
			if errors.Is(err, analyzer.ErrEmptyInput) {
				if format == FormatText {
					if renderErr := analyzer.RenderEmptyInput(out); renderErr != nil {
						return renderErr
					}
				}
				return err
			}
			if err != nil {
				return err
			}
			return writeReport(out, report, format)
		},
	}
	analyzeCommand.Flags().StringVarP(&format, "format", "f", FormatText, "output format, text, json or yaml")
	analyzeCommand.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return analyzeCommand
}
