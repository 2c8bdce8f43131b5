package cmd

import (
	"github.com/spf13/cobra"

	"simaudit/internal/audit"
	"simaudit/internal/output"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run accessibility compliance audits against the instrumented app",
	Long: `Run one audit category, or all of them, against the app connected to the
introspection bridge.

Single-category audits fail when their telemetry is unavailable. The full
audit never fails: categories whose telemetry could not be fetched are
marked unavailable in the report and excluded from the issue total.

Examples:
  simaudit audit full
  simaudit audit touch-targets --format text
  simaudit audit contrast --format json`,
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditTouchTargetsCmd)
	auditCmd.AddCommand(auditContrastCmd)
	auditCmd.AddCommand(auditLayoutCmd)
	auditCmd.AddCommand(auditAccessibilityCmd)
	auditCmd.AddCommand(auditFullCmd)
	for _, c := range auditCmd.Commands() {
		c.Flags().Bool("pretty", false, "Pretty-print JSON")
	}
}

var auditTouchTargetsCmd = &cobra.Command{
	Use:   "touch-targets",
	Short: "Check interactive elements against the 44×44pt HIG minimum",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := audit.AuditTouchTargets(cmd.Context(), bridgeFromFlags(cmd))
		if err != nil {
			return err
		}
		if !output.Structured() {
			output.PrintText(audit.RenderTouchTargets(result))
			return nil
		}
		return output.Print(result)
	},
}

var auditContrastCmd = &cobra.Command{
	Use:   "contrast",
	Short: "Check sampled text colors against WCAG AA/AAA contrast tiers",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := audit.AuditContrast(cmd.Context(), bridgeFromFlags(cmd))
		if err != nil {
			return err
		}
		if !output.Structured() {
			output.PrintText(audit.RenderContrast(result))
			return nil
		}
		return output.Print(result)
	},
}

var auditLayoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Report Auto Layout problems the app is currently exhibiting",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := audit.AuditLayout(cmd.Context(), bridgeFromFlags(cmd))
		if err != nil {
			return err
		}
		if !output.Structured() {
			output.PrintText(audit.RenderLayout(result))
			return nil
		}
		return output.Print(result)
	},
}

var auditAccessibilityCmd = &cobra.Command{
	Use:   "accessibility",
	Short: "Find unlabeled and undersized interactive elements",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := audit.AuditAccessibility(cmd.Context(), bridgeFromFlags(cmd))
		if err != nil {
			return err
		}
		if !output.Structured() {
			output.PrintText(audit.RenderAccessibility(result))
			return nil
		}
		return output.Print(result)
	},
}

var auditFullCmd = &cobra.Command{
	Use:   "full",
	Short: "Run every audit category and merge the results into one report",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := audit.RunFullAudit(cmd.Context(), bridgeFromFlags(cmd))
		if !output.Structured() {
			output.PrintText(audit.RenderReport(report))
			return nil
		}
		return output.Print(report)
	},
}
