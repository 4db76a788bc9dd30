package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/timeanchor/timeanchor/internal/config"
	"github.com/timeanchor/timeanchor/internal/resolve"
)

// InitCmd configures the default time zone and port, interactively or via
// flags.
type InitCmd struct {
	Zone string `help:"IANA time zone to use as the default (skips interactive prompt)." short:"z"`
	Port int    `help:"Dev server port (skips interactive prompt)." short:"p"`
}

func (cmd *InitCmd) Run(globals *Globals) error {
	// Non-interactive: at least one flag given.
	if cmd.Zone != "" || cmd.Port != 0 {
		return cmd.storeFromFlags(globals)
	}

	// Check if already configured.
	if config.Exists() {
		return cmd.handleExisting(globals)
	}

	return cmd.interactive(globals, config.Default())
}

func (cmd *InitCmd) storeFromFlags(globals *Globals) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cmd.Zone != "" {
		if err := validateZone(cmd.Zone); err != nil {
			return newCLIError(ExitInvalidInput, "invalid_zone", err.Error())
		}
		cfg.TimeZone = strings.TrimSpace(cmd.Zone)
	}
	if cmd.Port != 0 {
		if err := validatePort(strconv.Itoa(cmd.Port)); err != nil {
			return newCLIError(ExitInvalidInput, "invalid_port", err.Error())
		}
		cfg.Port = cmd.Port
	}

	return cmd.store(globals, cfg)
}

func (cmd *InitCmd) handleExisting(globals *Globals) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var choice string
	err = runField(
		huh.NewSelect[string]().
			Title(fmt.Sprintf("Already configured (zone %s, port %d).", cfg.TimeZone, cfg.Port)).
			Options(
				huh.NewOption("Keep current settings", "keep"),
				huh.NewOption("Reconfigure", "reconfigure"),
				huh.NewOption("Exit", "exit"),
			).
			Value(&choice),
	)
	if err != nil {
		return err
	}

	switch choice {
	case "keep":
		msg := "Keeping current settings."
		if globals.JSON {
			printSuccessJSON(msg)
		} else {
			printSuccessHuman(msg)
		}
		return nil
	case "reconfigure":
		return cmd.interactive(globals, cfg)
	default:
		return nil
	}
}

func (cmd *InitCmd) interactive(globals *Globals, cfg config.Config) error {
	fmt.Println()
	fmt.Println("  Welcome to timeanchor!")
	fmt.Println("  Pick the time zone phrases should resolve in when the caller names none.")
	fmt.Println()

	zone := cfg.TimeZone
	err := runField(
		huh.NewInput().
			Title("Default IANA time zone:").
			Placeholder(resolve.DefaultZone).
			Validate(validateZone).
			Value(&zone),
	)
	if err != nil {
		return err
	}
	if strings.TrimSpace(zone) == "" {
		zone = resolve.DefaultZone
	}

	port := strconv.Itoa(cfg.Port)
	err = runField(
		huh.NewInput().
			Title("Dev server port:").
			Placeholder("8080").
			Validate(validatePort).
			Value(&port),
	)
	if err != nil {
		return err
	}

	cfg.TimeZone = strings.TrimSpace(zone)
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(port))

	return cmd.store(globals, cfg)
}

func (cmd *InitCmd) store(globals *Globals, cfg config.Config) error {
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	msg := fmt.Sprintf("Configured: zone %s, port %d.", cfg.TimeZone, cfg.Port)
	if globals.JSON {
		printSuccessJSON(msg)
	} else {
		fmt.Println("\n" + msg)
		fmt.Println("\nTry it: timeanchor interpret \"tomorrow at 2pm\"")
	}
	return nil
}

// runField wraps a single huh field in a form that supports
// Ctrl+C and Ctrl+D for quitting, with bottom margin styling.
func runField(field huh.Field) error {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"))

	t := huh.ThemeBase()
	t.Focused.Base = t.Focused.Base.MarginBottom(1)
	t.Blurred.Base = t.Blurred.Base.MarginBottom(1)

	return huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithKeyMap(km).
		WithTheme(t).
		Run()
}

func validateZone(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil // empty falls back to the default
	}
	if !resolve.ValidZone(s) {
		return fmt.Errorf("unknown time zone %q (use an IANA name like America/Chicago)", s)
	}
	return nil
}

func validatePort(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("port cannot be empty")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}
