package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sproutwallet/sproutd/internal/core/application"
	"github.com/sproutwallet/sproutd/internal/core/domain"
)

var coins = cli.Command{
	Name:  "coins",
	Usage: "list the wallet's coins",
	Subcommands: []*cli.Command{
		{
			Name:   "list",
			Usage:  "list coins ordered by lifecycle state",
			Action: listCoinsAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "axis",
					Usage: "sort axis, either 'confirmation' or 'spend'",
					Value: "confirmation",
				},
				&cli.BoolFlag{
					Name:  "desc",
					Usage: "sort in descending order",
					Value: true,
				},
				&cli.BoolFlag{
					Name:  "unspent",
					Usage: "only include unspent coins",
				},
				&cli.IntFlag{Name: "page", Value: 1},
				&cli.IntFlag{Name: "page-size", Value: 10},
			},
		},
	},
}

func listCoinsAction(ctx *cli.Context) error {
	var axis domain.SortAxis
	switch ctx.String("axis") {
	case "confirmation":
		axis = domain.SortAxisConfirmation
	case "spend":
		axis = domain.SortAxisSpend
	default:
		return fmt.Errorf("axis must be either 'confirmation' or 'spend'")
	}

	listing, err := getCoinService().ListCoins(context.Background(), application.ListCoinsRequest{
		Axis:        axis,
		Descending:  ctx.Bool("desc"),
		UnspentOnly: ctx.Bool("unspent"),
		Page:        domain.NewPage(ctx.Int("page"), ctx.Int("page-size")),
	})
	if err != nil {
		return err
	}

	printRespJSON(listing)
	return nil
}
