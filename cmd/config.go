package cmd

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"imagetools/config"
	"imagetools/types"
	"imagetools/ui"
)

type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a sample configuration file"`
	Show ConfigShowCmd `cmd:"" help:"Print the effective configuration"`
}

type ConfigInitCmd struct {
	Path  string `help:"Where to write the file (defaults to the standard location)" type:"path"`
	Force bool   `help:"Overwrite an existing file"`
}

func (cmd *ConfigInitCmd) Run(appCtx *types.AppContext) error {
	target := cmd.Path
	if target == "" {
		var err error
		target, err = config.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(target); err == nil && !cmd.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite", target)
	}

	if err := config.CreateSample(target); err != nil {
		return err
	}

	fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Wrote %s", target)))
	return nil
}

type ConfigShowCmd struct{}

func (cmd *ConfigShowCmd) Run(appCtx *types.AppContext) error {
	cfg := config.Default()
	source := "built-in defaults"
	if appCtx != nil {
		if appCtx.Config != nil {
			cfg = *appCtx.Config
		}
		if appCtx.ConfigFound {
			source = appCtx.ConfigPath
		}
	}

	fmt.Println(ui.InfoStyle.Render(fmt.Sprintf("Configuration from %s:", source)))

	out, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
