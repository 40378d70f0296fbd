package cmd

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/MrJJimenez/jobscan/internal/config"
	"github.com/MrJJimenez/jobscan/internal/ui"
)

type Context struct {
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	Version    string
	ColorMode  ui.ColorMode
}
