package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/timeanchor/timeanchor/internal/config"
	"github.com/timeanchor/timeanchor/internal/launchd"
)

// ServiceCmd manages the login service that keeps the dev server running
// (macOS launchd).
type ServiceCmd struct {
	Install   ServiceInstallCmd   `cmd:"" help:"Install the macOS launchd service running the dev server."`
	Uninstall ServiceUninstallCmd `cmd:"" help:"Remove the launchd service."`
	Status    ServiceStatusCmd    `cmd:"" help:"Show whether the service is installed and loaded."`
}

// ServiceInstallCmd installs the launchd agent, optionally updating the port.
type ServiceInstallCmd struct {
	Port int `help:"Port for the dev server. Defaults to the configured port." short:"p"`
}

func (cmd *ServiceInstallCmd) Run(globals *Globals) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cmd.Port != 0 {
		if cmd.Port < 1 || cmd.Port > 65535 {
			return newCLIError(ExitInvalidInput, "invalid_port",
				fmt.Sprintf("Invalid --port value %d: must be between 1 and 65535", cmd.Port))
		}
		cfg.Port = cmd.Port
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	}

	// Resolve binary path.
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("resolve symlinks: %w", err)
	}

	if err := launchd.Install(execPath); err != nil {
		return newCLIError(ExitRuntimeError, "install_failed",
			fmt.Sprintf("Failed to install service: %s", err))
	}

	msg := fmt.Sprintf("Service installed. Dev server will run on :%d at login.", cfg.Port)
	if globals.JSON {
		printSuccessJSON(msg)
	} else {
		fmt.Fprintln(os.Stdout, msg)
		fmt.Fprintf(os.Stdout, "Logs: %s\n", launchd.LogPath())
	}
	return nil
}

// ServiceUninstallCmd removes the launchd agent.
type ServiceUninstallCmd struct{}

func (cmd *ServiceUninstallCmd) Run(globals *Globals) error {
	if err := launchd.Uninstall(); err != nil {
		return fmt.Errorf("uninstall service: %w", err)
	}
	msg := "Service removed."
	if globals.JSON {
		printSuccessJSON(msg)
	} else {
		printSuccessHuman(msg)
	}
	return nil
}

// ServiceStatusCmd shows the current service status.
type ServiceStatusCmd struct{}

func (cmd *ServiceStatusCmd) Run(globals *Globals) error { //nolint:unparam // error required by Kong cmd interface
	installed := launchd.IsInstalled()

	if !installed {
		if globals.JSON {
			resp := map[string]string{"status": "not_configured"}
			b, _ := json.Marshal(resp)
			fmt.Fprintln(os.Stdout, string(b))
		} else {
			fmt.Fprintln(os.Stdout, "Not configured. Run `timeanchor service install` to set up.")
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	loaded := launchd.IsLoaded()

	if globals.JSON {
		resp := map[string]any{
			"status":    "installed",
			"loaded":    loaded,
			"port":      cfg.Port,
			"time_zone": cfg.TimeZone,
			"log_path":  launchd.LogPath(),
		}
		b, _ := json.Marshal(resp)
		fmt.Fprintln(os.Stdout, string(b))
	} else {
		fmt.Fprintln(os.Stdout, "Status: Installed")
		if loaded {
			fmt.Fprintln(os.Stdout, "Loaded: yes")
		} else {
			fmt.Fprintln(os.Stdout, "Loaded: no (will start at next login)")
		}
		fmt.Fprintf(os.Stdout, "Port: %d\n", cfg.Port)
		fmt.Fprintf(os.Stdout, "Time zone: %s\n", cfg.TimeZone)
		fmt.Fprintf(os.Stdout, "Logs: %s\n", launchd.LogPath())
	}
	return nil
}
