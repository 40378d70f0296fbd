package cmd

import (
	"strings"

	"github.com/joho/godotenv"

	"github.com/MrJJimenez/jobscan/internal/server"
)

type ServeCmd struct {
	Addr string `help:"Listen address. Defaults to the configured server_addr." env:"JOBSCAN_ADDR"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	// A .env next to the binary is the extension-dev workflow; missing is fine.
	_ = godotenv.Load()

	addr := strings.TrimSpace(s.Addr)
	if addr == "" {
		addr = ctx.Config.ServerAddr
	}

	srv := server.New(newAnalyzer(ctx), ctx.Logger, ctx.Version)
	return srv.Run(addr)
}
