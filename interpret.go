package main

import (
	"fmt"
	"os"

	"github.com/timeanchor/timeanchor/internal/config"
	"github.com/timeanchor/timeanchor/internal/resolve"
)

// InterpretCmd is the best-effort path: one combined phrase, everything else
// optional. Missing zone falls back to the configured default, missing
// reference falls back to the wall clock, and a phrase that cannot be
// understood degrades to the reference instant with an explanatory message
// instead of an error.
type InterpretCmd struct {
	Text string `arg:"" help:"Combined phrase (e.g. \"tomorrow at 2pm\")."`
	Zone string `help:"IANA time zone. Defaults to the configured zone." short:"z"`
	Now  string `help:"Reference instant, ISO-8601. Defaults to the current time." short:"n"`
}

func (cmd *InterpretCmd) Run(globals *Globals) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	resolver := resolve.New()
	resolver.FallbackZone = cfg.TimeZone

	res, err := resolver.Interpret(cmd.Text, cmd.Zone, cmd.Now)
	if err != nil {
		return fromResolveError(err)
	}

	if globals.JSON {
		payload := map[string]any{
			"convertedDate": res.Converted,
			"timeZone":      res.TimeZone,
			"text":          cmd.Text,
		}
		if res.Note != "" {
			payload["message"] = res.Note
		}
		printPayloadJSON(payload)
		return nil
	}

	fmt.Fprintln(os.Stdout, res.Converted)
	if res.Note != "" {
		fmt.Fprintln(os.Stderr, res.Note)
	}
	return nil
}
