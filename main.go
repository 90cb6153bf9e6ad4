package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"imagetools/cmd"
	"imagetools/config"
	"imagetools/types"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// CLI defines the command structure using Kong
type CLI struct {
	Config string `help:"Path to the configuration file" type:"path"`

	Rename     cmd.RenameCmd     `cmd:"" help:"Rename images after the text found in them"`
	Clean      cmd.CleanCmd      `cmd:"" help:"Delete images that fail a resolution or aspect ratio policy"`
	Duplicates cmd.DuplicatesCmd `cmd:"" help:"Find duplicate images by content"`
	Verify     cmd.VerifyCmd     `cmd:"" help:"Verify hash-named files against their content"`
	ConfigCmd  cmd.ConfigCmd     `cmd:"" name:"config" help:"Manage the configuration file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("imagetools"),
		kong.Description("Batch tools for directories of image files."),
	)

	appCtx := &types.AppContext{Version: Version}

	// config init has to run even when the current file is broken,
	// otherwise there is no way to replace it.
	cfg, path, found, err := config.Load(cli.Config)
	if err == nil {
		appCtx.Config = cfg
		appCtx.ConfigPath = path
		appCtx.ConfigFound = found
	} else if !strings.HasPrefix(ctx.Command(), "config init") {
		ctx.FatalIfErrorf(err)
	}

	err = ctx.Run(appCtx)
	ctx.FatalIfErrorf(err)
}
