package cmd

import "github.com/alecthomas/kong"

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version VersionCmd `cmd:"" help:"Print version."`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration."`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze job posting text from a file or stdin."`
	Fetch   FetchCmd   `cmd:"" help:"Fetch a posting URL, flatten it to text, and analyze it."`
	Serve   ServeCmd   `cmd:"" help:"Run the analyzer HTTP service for the extension."`
	Seen    SeenCmd    `cmd:"" help:"Seen postings utilities."`
	Proxies ProxiesCmd `cmd:"" help:"Proxy utilities."`
}

func NewCLI() *CLI {
	return &CLI{}
}
