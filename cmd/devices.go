package cmd

import (
	"github.com/spf13/cobra"

	"simaudit/internal/output"
	"simaudit/internal/simulator"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List simulators known to simctl",
	Long:  "List iOS simulators via `xcrun simctl list devices`. Read-only: booting and shutting down devices is not this tool's job.",
	RunE:  runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
	devicesCmd.Flags().Bool("booted", false, "Only show booted simulators")
	devicesCmd.Flags().Bool("pretty", false, "Pretty-print JSON")
}

func runDevices(cmd *cobra.Command, args []string) error {
	bootedOnly, _ := cmd.Flags().GetBool("booted")

	devices, err := simulator.ListDevices(cmd.Context())
	if err != nil {
		return err
	}

	if bootedOnly {
		filtered := devices[:0]
		for _, d := range devices {
			if d.State == "Booted" {
				filtered = append(filtered, d)
			}
		}
		devices = filtered
	}

	return output.Print(devices)
}
