package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/snip20history/internal/history"
	"github.com/gabapcia/snip20history/internal/keyring"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the snip20history CLI application.
//
// It registers all available commands, including:
//
//   - `fetch`: Fetches, filters, prints and exports the history of a token.
//   - `account set`: Registers the account whose history is fetched.
//   - `key add`, `key remove`, `key pending`: Manage viewing keys.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - chainID: The chain every command operates on.
//   - ks: The keyring service used by account and key commands.
//   - hs: The history service used by the fetch command.
//   - n: The notifier the history service reports to, also used for export results.
func Run(ctx context.Context, chainID string, ks keyring.Service, hs history.Service, n history.Notifier) error {
	return newApp(chainID, ks, hs, n, os.Stdout).Run(ctx, os.Args)
}

// newApp builds the command tree. Tables and listings are written to stdout.
func newApp(chainID string, ks keyring.Service, hs history.Service, n history.Notifier, stdout io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "snip20history",
		Description:           "Command-line interface for fetching and exporting the transaction history of SNIP-20 tokens.",
		Usage:                 "snip20history [command] [flags]",
		Writer:                stdout,
		Commands: []*cli.Command{
			fetchCommand(hs, n, stdout),
			accountCommand(chainID, ks),
			keyCommand(chainID, ks, stdout),
		},
	}
}
