package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/sproutwallet/sproutd/internal/core/domain"
)

var offer = cli.Command{
	Name:  "offer",
	Usage: "compose, inspect and publish trade offers",
	Subcommands: []*cli.Command{
		{
			Name:   "make",
			Usage:  "create a new offer from the given assets",
			Action: makeOfferAction,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "offer-xch", Usage: "native amount to offer"},
				&cli.StringSliceFlag{Name: "offer-cat", Usage: "CAT to offer as <asset_id>:<amount>"},
				&cli.StringSliceFlag{Name: "offer-nft", Usage: "launcher id of an NFT to offer"},
				&cli.StringFlag{Name: "request-xch", Usage: "native amount to request"},
				&cli.StringSliceFlag{Name: "request-cat", Usage: "CAT to request as <asset_id>:<amount>"},
				&cli.StringSliceFlag{Name: "request-nft", Usage: "launcher id of an NFT to request"},
				&cli.StringFlag{Name: "fee", Usage: "network fee as a decimal amount"},
				&cli.StringFlag{Name: "expire-days", Value: "0"},
				&cli.StringFlag{Name: "expire-hours", Value: "0"},
				&cli.StringFlag{Name: "expire-minutes", Value: "0"},
				&cli.BoolFlag{Name: "expires", Usage: "make the offer expire"},
				&cli.BoolFlag{Name: "upload", Usage: "upload the created offer to the eligible marketplaces"},
			},
		},
		{
			Name:      "view",
			Usage:     "parse an offer and show its summary and marketplace eligibility",
			ArgsUsage: "<offer>",
			Action:    viewOfferAction,
		},
		{
			Name:      "import",
			Usage:     "import an offer into the wallet",
			ArgsUsage: "<offer>",
			Action:    importOfferAction,
		},
		{
			Name:      "take",
			Usage:     "accept an offer",
			ArgsUsage: "<offer>",
			Action:    takeOfferAction,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "fee", Usage: "network fee as a decimal amount"},
			},
		},
		{
			Name:      "status",
			Usage:     "check whether an offer is listed on the marketplaces",
			ArgsUsage: "<offer>",
			Action:    offerStatusAction,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "dexie-id", Usage: "Dexie id of the offer"},
			},
		},
	},
}

func parseBundle(xch string, cats, nfts []string) (domain.AssetBundle, error) {
	catAmounts := make([]domain.CatAmount, 0, len(cats))
	for _, cat := range cats {
		parts := strings.SplitN(cat, ":", 2)
		if len(parts) != 2 {
			return domain.AssetBundle{}, fmt.Errorf(
				"invalid CAT %q, expected <asset_id>:<amount>", cat,
			)
		}
		catAmounts = append(catAmounts, domain.CatAmount{
			AssetId: parts[0],
			Amount:  parts[1],
		})
	}

	return domain.AssetBundle{Native: xch, Cats: catAmounts, Nfts: nfts}, nil
}

func makeOfferAction(ctx *cli.Context) error {
	svc := getOfferService()

	offered, err := parseBundle(
		ctx.String("offer-xch"),
		ctx.StringSlice("offer-cat"),
		ctx.StringSlice("offer-nft"),
	)
	if err != nil {
		return err
	}
	requested, err := parseBundle(
		ctx.String("request-xch"),
		ctx.StringSlice("request-cat"),
		ctx.StringSlice("request-nft"),
	)
	if err != nil {
		return err
	}

	svc.UpdateOffered(offered)
	svc.UpdateRequested(requested)
	svc.SetFee(ctx.String("fee"))
	if ctx.Bool("expires") {
		svc.SetExpiration(&domain.OfferExpiration{
			Days:    ctx.String("expire-days"),
			Hours:   ctx.String("expire-hours"),
			Minutes: ctx.String("expire-minutes"),
		})
	}

	result, err := svc.MakeOffer(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(result)

	if !ctx.Bool("upload") {
		return nil
	}

	if result.DexieEligible {
		link, err := svc.UploadToDexie(context.Background(), result.OfferText)
		if err != nil {
			fmt.Println(err)
		} else {
			fmt.Println("dexie:", link)
		}
	}
	if result.MintGardenEligible {
		link, err := svc.UploadToMintGarden(context.Background(), result.OfferText)
		if err != nil {
			fmt.Println(err)
		} else {
			fmt.Println("mintgarden:", link)
		}
	}

	return nil
}

func offerArg(ctx *cli.Context) (string, error) {
	offerText := ctx.Args().First()
	if offerText == "" {
		return "", fmt.Errorf("missing offer argument")
	}
	return offerText, nil
}

func viewOfferAction(ctx *cli.Context) error {
	offerText, err := offerArg(ctx)
	if err != nil {
		return err
	}

	view, err := getOfferService().ViewOffer(context.Background(), offerText)
	if err != nil {
		return err
	}

	printRespJSON(view)
	return nil
}

func importOfferAction(ctx *cli.Context) error {
	offerText, err := offerArg(ctx)
	if err != nil {
		return err
	}

	if err := getOfferService().ImportOffer(context.Background(), offerText); err != nil {
		return err
	}

	fmt.Println("offer imported")
	return nil
}

func takeOfferAction(ctx *cli.Context) error {
	offerText, err := offerArg(ctx)
	if err != nil {
		return err
	}

	txId, err := getOfferService().TakeOffer(
		context.Background(), offerText, ctx.String("fee"),
	)
	if err != nil {
		return err
	}

	fmt.Println("transaction id:", txId)
	return nil
}

func offerStatusAction(ctx *cli.Context) error {
	offerText, err := offerArg(ctx)
	if err != nil {
		return err
	}

	svc := getOfferService()
	status := map[string]bool{
		"mintgarden": svc.OfferOnMintGarden(context.Background(), offerText),
	}
	if dexieId := ctx.String("dexie-id"); dexieId != "" {
		status["dexie"] = svc.OfferOnDexie(context.Background(), dexieId)
	}

	printRespJSON(status)
	return nil
}
