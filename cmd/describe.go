package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"simaudit/internal/model"
	"simaudit/internal/output"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Dump the raw view-hierarchy snapshot",
	Long: `Fetch the current view-hierarchy snapshot from the instrumented app and
print it. The tree is a passthrough from the introspection bridge; use
--depth and --type to trim it before output.

Examples:
  simaudit describe
  simaudit describe --depth 3
  simaudit describe --type Button,StaticText --format json`,
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Int("depth", 0, "Max tree depth (0 = unlimited)")
	describeCmd.Flags().String("type", "", "Comma-separated element types to include")
	describeCmd.Flags().Bool("pretty", false, "Pretty-print JSON")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	depth, _ := cmd.Flags().GetInt("depth")
	typeFilter, _ := cmd.Flags().GetString("type")

	bridge := bridgeFromFlags(cmd)
	nodes, err := bridge.Snapshot(cmd.Context())
	if err != nil {
		return err
	}

	if typeFilter != "" {
		nodes = model.FilterByType(nodes, strings.Split(typeFilter, ","))
	}
	nodes = model.PruneDepth(nodes, depth)

	return output.Print(nodes)
}
