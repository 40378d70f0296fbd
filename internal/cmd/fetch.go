package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJJimenez/jobscan/internal/config"
	"github.com/MrJJimenez/jobscan/internal/fetch"
	"github.com/MrJJimenez/jobscan/internal/models"
	"github.com/MrJJimenez/jobscan/internal/network"
)

type FetchCmd struct {
	URL     string `arg:"" help:"Posting page URL."`
	Raw     bool   `help:"Print the flattened page text instead of analyzing it."`
	Timeout int    `help:"Fetch timeout in seconds." default:"30"`
	Proxies string `help:"Comma-separated proxy URLs." env:"JOBSCAN_PROXIES"`
	Format  string `help:"Output format: table, json, md, tsv." enum:",table,json,md,tsv" default:""`
	Output  string `name:"output" short:"o" help:"Write output to a file."`
}

func (f *FetchCmd) Run(ctx *Context) error {
	proxies, err := config.LoadProxies(f.Proxies)
	if err != nil {
		return err
	}

	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 10*time.Minute)
		if err != nil {
			return err
		}
	}

	client, err := network.NewClient(rotator)
	if err != nil {
		return err
	}

	fetchCtx, cancel := context.WithTimeout(context.Background(), time.Duration(f.Timeout)*time.Second)
	defer cancel()

	page, err := fetch.Fetch(fetchCtx, client, f.URL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", f.URL, err)
	}

	ctx.Logger.Debug().
		Str("site", page.Site).
		Str("title", page.Title).
		Int("text_len", len(page.Text)).
		Msg("fetched posting page")

	if f.Raw {
		_, err := fmt.Fprintln(ctx.Out, page.Text)
		return err
	}

	analyzer := newAnalyzer(ctx)
	result := analyzer.Analyze(models.Input{
		URL:     page.URL,
		Title:   page.Title,
		Company: page.Company,
		RawText: page.Text,
	})

	return writeResult(ctx, result, f.Format, f.Output)
}
