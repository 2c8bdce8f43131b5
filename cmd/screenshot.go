package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"simaudit/internal/annotate"
	"simaudit/internal/audit"
	"simaudit/internal/simulator"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture the simulator screen",
	Long: `Capture a PNG screenshot of the booted simulator via simctl.

With --annotate-failures, the touch-target audit runs first and every
failing control is boxed and labeled on the image. --display-scale converts
device points to screenshot pixels (2 or 3 on current devices).

Examples:
  simaudit screenshot -o screen.png
  simaudit screenshot --annotate-failures --display-scale 3 -o failures.png`,
	RunE: runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	screenshotCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	screenshotCmd.Flags().Bool("annotate-failures", false, "Draw boxes around failing touch targets")
	screenshotCmd.Flags().Float64("display-scale", 3, "Device pixel scale for annotation")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	annotateFailures, _ := cmd.Flags().GetBool("annotate-failures")
	displayScale, _ := cmd.Flags().GetFloat64("display-scale")

	device, err := simulator.BootedDevice(cmd.Context(), udidFromFlags(cmd))
	if err != nil {
		return err
	}
	data, err := simulator.Screenshot(cmd.Context(), device.UDID)
	if err != nil {
		return err
	}

	if annotateFailures {
		result, err := audit.AuditTouchTargets(cmd.Context(), bridgeFromFlags(cmd))
		if err != nil {
			return fmt.Errorf("annotate: %w", err)
		}
		data, err = annotate.FailingTouchTargets(data, result.Findings, displayScale)
		if err != nil {
			return err
		}
	}

	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	return nil
}
