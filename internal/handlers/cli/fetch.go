package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/gabapcia/snip20history/internal/export"
	"github.com/gabapcia/snip20history/internal/history"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// parseMinAmount reads the --min-amount flag. An empty value disables the predicate.
func parseMinAmount(v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --min-amount %q: %w", v, err)
	}

	return amount, nil
}

// exportTarget is a file the filtered rows are written to.
type exportTarget struct {
	path   string
	format export.Format
}

// exportTargets collects the requested exports. --csv and --xlsx write to the
// default file names; every --output path gets the format of its extension.
func exportTargets(c *cli.Command) ([]exportTarget, error) {
	targets := make([]exportTarget, 0)
	if c.Bool("csv") {
		targets = append(targets, exportTarget{path: export.DefaultCSVPath, format: export.FormatCSV})
	}

	if c.Bool("xlsx") {
		targets = append(targets, exportTarget{path: export.DefaultXLSXPath, format: export.FormatXLSX})
	}

	for _, path := range c.StringSlice("output") {
		format, err := export.FormatFromPath(path)
		if err != nil {
			return nil, fmt.Errorf("invalid --output: %w", err)
		}

		targets = append(targets, exportTarget{path: path, format: format})
	}

	return targets, nil
}

// fetchCommand returns a CLI command that fetches the history of a token,
// prints the transactions passing the filter and optionally exports them.
//
// Usage example:
//
//	snip20history fetch --contract secret1k0jntykt7e4g3y88ltc60czgjuqdy4c9e8fzek --min-amount 1.5 --csv
//	snip20history fetch --contract secret1k0jntykt7e4g3y88ltc60czgjuqdy4c9e8fzek --output reports/sscrt.xlsx
func fetchCommand(hs history.Service, n history.Notifier, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "fetch",
		Description: "Fetch the complete transaction history of a SNIP-20 token for the registered account.",
		Usage:       "Fetches, filters and exports a token history. Must provide the contract address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "contract",
				Usage:    "SNIP-20 contract address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "sender",
				Usage: "Only keep transactions sent by this address",
			},
			&cli.StringFlag{
				Name:  "receiver",
				Usage: "Only keep transactions received by this address",
			},
			&cli.StringFlag{
				Name:  "min-amount",
				Usage: "Only keep transactions of at least this amount, in token units (e.g. 1.5)",
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Export the filtered transactions to " + export.DefaultCSVPath,
			},
			&cli.BoolFlag{
				Name:  "xlsx",
				Usage: "Export the filtered transactions to " + export.DefaultXLSXPath,
			},
			&cli.StringSliceFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Export the filtered transactions to this file, as CSV or XLSX by extension (repeatable)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			minAmount, err := parseMinAmount(c.String("min-amount"))
			if err != nil {
				return err
			}

			targets, err := exportTargets(c)
			if err != nil {
				return err
			}

			view := history.NewView(hs)
			view.SetFilter(history.Filter{
				Sender:    c.String("sender"),
				Receiver:  c.String("receiver"),
				MinAmount: minAmount,
			})

			if err := view.Refresh(ctx, c.String("contract")); err != nil {
				return err
			}

			rows := export.Rows(view.Visible(), view.Decimals())
			if err := writeTable(stdout, rows, view.History().Token.Symbol); err != nil {
				return err
			}

			for _, e := range targets {
				if err := export.WriteFile(e.path, e.format, rows); err != nil {
					n.Notify(ctx, history.Notification{Level: history.LevelError, Message: err.Error()})
					return err
				}

				n.Notify(ctx, history.Notification{
					Level:   history.LevelSuccess,
					Message: fmt.Sprintf("Exported %d transaction(s) to %s", len(rows), e.path),
				})
			}

			return nil
		},
	}
}
