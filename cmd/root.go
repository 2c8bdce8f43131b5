package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"simaudit/internal/output"
	"simaudit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "simaudit",
	Short: "Inspect and audit iOS simulator UI accessibility",
	Long: "A CLI tool that lets AI agents inspect a running iOS simulator app and audit it\n" +
		"for accessibility compliance (touch targets, contrast, layout, labels) via an\n" +
		"in-app introspection bridge.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json, text")
	rootCmd.PersistentFlags().String("bridge-url", "", "Introspection bridge URL (default $SIMAUDIT_BRIDGE_URL, then "+defaultBridgeHint+")")
	rootCmd.PersistentFlags().String("udid", "", "Simulator UDID (default $SIMAUDIT_UDID, then the booted device)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		case "text":
			output.OutputFormat = output.FormatText
		default:
			return fmt.Errorf("unsupported format: %s (use yaml, json, or text)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
