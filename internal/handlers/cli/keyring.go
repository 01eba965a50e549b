package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/gabapcia/snip20history/internal/keyring"

	"github.com/urfave/cli/v3"
)

// accountCommand returns the `account` command group.
//
// Usage example:
//
//	snip20history account set --address secret1...
func accountCommand(chainID string, ks keyring.Service) *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Manage the account whose history is fetched",
		Commands: []*cli.Command{
			{
				Name:        "set",
				Description: "Register the account used on the configured chain, replacing any previous one.",
				Usage:       "Sets the active account. Must provide the address.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "address",
						Usage:    "Account address",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ks.RegisterAccount(ctx, chainID, c.String("address"))
				},
			},
		},
	}
}

// newContractFlag returns the required --contract flag.
func newContractFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "contract",
		Usage:    "SNIP-20 contract address",
		Required: true,
	}
}

// keyCommand returns the `key` command group.
//
// Usage example:
//
//	snip20history key add --contract secret1... --key api_key_...
//	snip20history key pending
func keyCommand(chainID string, ks keyring.Service, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "key",
		Usage: "Manage viewing keys",
		Commands: []*cli.Command{
			{
				Name:        "add",
				Description: "Store the viewing key of a token. The token leaves the pending list.",
				Usage:       "Adds a viewing key. Must provide both contract and key.",
				Flags: []cli.Flag{
					newContractFlag(),
					&cli.StringFlag{
						Name:     "key",
						Usage:    "Viewing key",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ks.AddViewingKey(ctx, chainID, c.String("contract"), c.String("key"))
				},
			},
			{
				Name:        "remove",
				Description: "Delete the viewing key of a token.",
				Usage:       "Removes a viewing key. Must provide the contract.",
				Flags:       []cli.Flag{newContractFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ks.RemoveViewingKey(ctx, chainID, c.String("contract"))
				},
			},
			{
				Name:        "pending",
				Description: "List the tokens suggested during a fetch that still have no viewing key.",
				Usage:       "Lists tokens waiting for a viewing key.",
				Action: func(ctx context.Context, c *cli.Command) error {
					contracts, err := ks.PendingTokens(ctx, chainID)
					if err != nil {
						return err
					}

					for _, contract := range contracts {
						fmt.Fprintln(stdout, contract)
					}

					return nil
				},
			},
		},
	}
}
