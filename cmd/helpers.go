package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"simaudit/internal/telemetry"
)

const defaultBridgeHint = telemetry.DefaultBaseURL

// bridgeURLFromFlags resolves the introspection bridge endpoint:
// --bridge-url flag, then $SIMAUDIT_BRIDGE_URL. Empty means the default.
func bridgeURLFromFlags(cmd *cobra.Command) string {
	url, _ := cmd.Flags().GetString("bridge-url")
	if url == "" {
		url = os.Getenv("SIMAUDIT_BRIDGE_URL")
	}
	return url
}

func bridgeFromFlags(cmd *cobra.Command) *telemetry.Bridge {
	return telemetry.NewBridge(bridgeURLFromFlags(cmd))
}

// udidFromFlags resolves the target simulator UDID: --udid flag, then
// $SIMAUDIT_UDID. Empty means "the booted device".
func udidFromFlags(cmd *cobra.Command) string {
	udid, _ := cmd.Flags().GetString("udid")
	if udid == "" {
		udid = os.Getenv("SIMAUDIT_UDID")
	}
	return udid
}

// Parameter extraction helpers for MCP tool argument maps.

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that JSON may parse as int/float
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

func floatParam(params map[string]interface{}, key string, defaultVal float64) float64 {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return defaultVal
}
