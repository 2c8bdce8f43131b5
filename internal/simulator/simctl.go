// Package simulator wraps the `xcrun simctl` plumbing this tool needs:
// device discovery and screen capture. Lifecycle management (boot,
// shutdown, install) is deliberately out of scope.
package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// Device is one simulator known to simctl.
type Device struct {
	UDID        string `yaml:"udid"              json:"udid"`
	Name        string `yaml:"name"              json:"name"`
	State       string `yaml:"state"             json:"state"`
	Runtime     string `yaml:"runtime,omitempty" json:"runtime,omitempty"`
	IsAvailable bool   `yaml:"isAvailable"       json:"isAvailable"`
}

// simctlDeviceList mirrors `xcrun simctl list devices --json`.
type simctlDeviceList struct {
	Devices map[string][]Device `json:"devices"`
}

// ListDevices returns all simulators known to simctl, runtime keys sorted
// for deterministic output.
func ListDevices(ctx context.Context) ([]Device, error) {
	out, err := exec.CommandContext(ctx, "xcrun", "simctl", "list", "devices", "--json").Output()
	if err != nil {
		return nil, fmt.Errorf("simctl list: %w", err)
	}
	return parseDeviceList(out)
}

func parseDeviceList(data []byte) ([]Device, error) {
	var list simctlDeviceList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("simctl list output: %w", err)
	}

	runtimes := make([]string, 0, len(list.Devices))
	for runtime := range list.Devices {
		runtimes = append(runtimes, runtime)
	}
	sort.Strings(runtimes)

	var devices []Device
	for _, runtime := range runtimes {
		for _, d := range list.Devices[runtime] {
			d.Runtime = runtimeName(runtime)
			devices = append(devices, d)
		}
	}
	return devices, nil
}

// runtimeName shortens "com.apple.CoreSimulator.SimRuntime.iOS-17-2" to
// "iOS-17-2". Unknown formats pass through unchanged.
func runtimeName(identifier string) string {
	const prefix = "com.apple.CoreSimulator.SimRuntime."
	return strings.TrimPrefix(identifier, prefix)
}

// BootedDevice resolves the device to target: the one matching udid when
// given, otherwise the single booted simulator. Zero or multiple booted
// devices without an explicit udid is an error the caller surfaces as-is.
func BootedDevice(ctx context.Context, udid string) (Device, error) {
	devices, err := ListDevices(ctx)
	if err != nil {
		return Device{}, err
	}
	return resolveTarget(devices, udid)
}

func resolveTarget(devices []Device, udid string) (Device, error) {
	if udid != "" {
		for _, d := range devices {
			if d.UDID == udid {
				if d.State != "Booted" {
					return Device{}, fmt.Errorf("simulator %s (%s) is not booted", d.Name, udid)
				}
				return d, nil
			}
		}
		return Device{}, fmt.Errorf("no simulator with udid %s", udid)
	}

	var booted []Device
	for _, d := range devices {
		if d.State == "Booted" {
			booted = append(booted, d)
		}
	}
	switch len(booted) {
	case 0:
		return Device{}, fmt.Errorf("no booted simulator found")
	case 1:
		return booted[0], nil
	default:
		names := make([]string, len(booted))
		for i, d := range booted {
			names[i] = fmt.Sprintf("%s (%s)", d.Name, d.UDID)
		}
		return Device{}, fmt.Errorf("multiple booted simulators, pass --udid: %s", strings.Join(names, ", "))
	}
}

// Screenshot captures the device's screen as PNG bytes via
// `simctl io screenshot`. An empty udid targets the booted device.
func Screenshot(ctx context.Context, udid string) ([]byte, error) {
	target := udid
	if target == "" {
		target = "booted"
	}

	cmd := exec.CommandContext(ctx, "xcrun", "simctl", "io", target, "screenshot", "--type=png", "-")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("simctl screenshot: %s: %w", msg, err)
		}
		return nil, fmt.Errorf("simctl screenshot: %w", err)
	}
	return stdout.Bytes(), nil
}
