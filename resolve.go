package main

import (
	"fmt"
	"os"

	"github.com/timeanchor/timeanchor/internal/resolve"
)

// ResolveCmd is the strict resolution path: every input is mandatory,
// including the reference instant. Server wall-clock time is never consulted
// — the output is a pure function of the flags, so the same invocation gives
// the same answer on any host in any zone.
type ResolveCmd struct {
	Date string `help:"Natural-language date phrase (e.g. \"next week monday\")." short:"d" required:""`
	Time string `help:"Time phrase (e.g. \"2pm\", \"14:30\")." short:"t" required:""`
	Zone string `help:"IANA time zone (e.g. America/Chicago)." short:"z" required:""`
	Now  string `help:"Reference instant, ISO-8601 (e.g. 2024-01-15T10:00:00-06:00)." short:"n" required:""`
}

func (cmd *ResolveCmd) Run(globals *Globals) error {
	resolver := resolve.New()

	res, err := resolver.Resolve(resolve.Request{
		DatePhrase: cmd.Date,
		TimePhrase: cmd.Time,
		TimeZone:   cmd.Zone,
		Now:        cmd.Now,
	})
	if err != nil {
		return fromResolveError(err)
	}

	if globals.JSON {
		printPayloadJSON(map[string]any{
			"convertedDate":     res.Converted,
			"timeZone":          res.TimeZone,
			"humanDate":         cmd.Date,
			"humanTime":         cmd.Time,
			"clientCurrentTime": cmd.Now,
		})
	} else {
		fmt.Fprintln(os.Stdout, res.Converted)
	}
	return nil
}
