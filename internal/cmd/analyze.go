package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MrJJimenez/jobscan/internal/analyze"
	"github.com/MrJJimenez/jobscan/internal/export"
	"github.com/MrJJimenez/jobscan/internal/models"
	"github.com/MrJJimenez/jobscan/internal/parser"
)

type AnalyzeCmd struct {
	Path    string `arg:"" optional:"" help:"Posting text file. Reads stdin when omitted."`
	URL     string `help:"Posting URL, used as apply link fallback for generic pages."`
	Title   string `help:"Page title, used as title fallback for generic pages."`
	Company string `help:"Company name to attach to the result."`
	Format  string `help:"Output format: table, json, md, tsv." enum:",table,json,md,tsv" default:""`
	Output  string `name:"output" short:"o" help:"Write output to a file."`
}

func (a *AnalyzeCmd) Run(ctx *Context) error {
	text, err := readText(a.Path)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no posting text provided")
	}
	if max := ctx.Config.MaxTextLen; max > 0 && len(text) > max {
		text = text[:max]
	}

	analyzer := newAnalyzer(ctx)
	result := analyzer.Analyze(models.Input{
		URL:     a.URL,
		Title:   a.Title,
		Company: a.Company,
		RawText: text,
	})

	return writeResult(ctx, result, a.Format, a.Output)
}

func newAnalyzer(ctx *Context) *analyze.Analyzer {
	waterloo := parser.NewWaterloo()
	waterloo.YearGuardMin = ctx.Config.YearGuardMin
	waterloo.YearGuardMax = ctx.Config.YearGuardMax
	return analyze.New(waterloo, ctx.Logger)
}

func readText(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeResult(ctx *Context, result models.Result, formatFlag string, outputPath string) error {
	format := resolveFormat(ctx, formatFlag)

	writer := ctx.Out
	if strings.TrimSpace(outputPath) != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := writer == ctx.Out && ctx.UI != nil && ctx.UI.ColorEnabled
	return export.WriteResult(writer, result, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   colorEnabled && isTTY(writer),
	})
}

func resolveFormat(ctx *Context, flag string) export.Format {
	switch flag {
	case "json":
		return export.FormatJSON
	case "md":
		return export.FormatMarkdown
	case "tsv":
		return export.FormatTSV
	case "table":
		return export.FormatTable
	}
	if ctx.JSONOutput {
		return export.FormatJSON
	}
	return export.FormatTable
}

func isTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
