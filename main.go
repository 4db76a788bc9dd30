package main

import (
	"errors"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
)

// Globals holds flags shared across all commands.
type Globals struct {
	JSON bool `help:"Output JSON for LLM/script consumption." short:"j"`
}

// CLI is the root command structure for timeanchor.
type CLI struct {
	Globals

	Resolve   ResolveCmd   `cmd:"" help:"Resolve a date phrase plus a time phrase to an absolute timestamp (strict)."`
	Interpret InterpretCmd `cmd:"" help:"Resolve a single combined phrase, best-effort."`
	Serve     ServeCmd     `cmd:"" help:"Run the HTTP dev server."`
	Play      PlayCmd      `cmd:"" help:"Interactive playground: type phrases, watch them resolve."`
	Init      InitCmd      `cmd:"" help:"Configure the default time zone and port (interactive setup)."`
	Guide     GuideCmd     `cmd:"" help:"Print the integration guide — designed for LLM agents that feed phrases in."`
	Skill     SkillCmd     `cmd:"" help:"Print the agent skill instructions."`
	Service   ServiceCmd   `cmd:"" help:"Manage the login service that keeps the dev server running (macOS)."`
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("timeanchor"),
		kong.Description("Pin natural-language date and time phrases to absolute, offset-qualified timestamps."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		// Ctrl+C / Ctrl+D — exit silently.
		if isUserAbort(err) {
			os.Exit(0)
		}

		var cliErr *CLIError
		if ok := asCLIError(err, &cliErr); ok {
			if cli.JSON {
				printErrorJSON(cliErr.Message, cliErr.Code)
			} else {
				printErrorHuman(cliErr.Message)
			}
			os.Exit(cliErr.ExitCode)
		}
		if cli.JSON {
			printErrorJSON(err.Error(), "runtime_error")
		} else {
			printErrorHuman(err.Error())
		}
		os.Exit(1)
	}
}

// isUserAbort returns true for errors caused by the user
// quitting an interactive prompt (Ctrl+C, Ctrl+D).
func isUserAbort(err error) bool {
	if errors.Is(err, huh.ErrUserAborted) {
		return true
	}
	// huh wraps bubbletea errors as "huh: <err>"
	if strings.Contains(err.Error(), "user aborted") {
		return true
	}
	return false
}
