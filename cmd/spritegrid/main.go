package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logAdapter "github.com/bft-labs/spritegrid/internal/adapters/log"
	"github.com/bft-labs/spritegrid/internal/cliconfig"
	"github.com/bft-labs/spritegrid/pkg/spritegrid"
)

const helpDescription = `
Lay out, reduce, split and regroup sprite sheets.

Highlights:
  - Infers the frame grid of a sheet from its size, or takes a frame count or size hint.
  - Keeps every sheet under a maximum canvas size by splitting into equally laid out parts.
  - Regroups split parts losslessly, keeping direction groups on their own rows.
  - Configure via file ($HOME/.spritegrid/config.toml), SPRITEGRID_* env, or flags.
`

var exampleUsage = strings.TrimSpace(`
  spritegrid merge frames/walk --watch
  spritegrid components Render --prefix tree --dest sprites
  spritegrid reduce walk.png --skip 2 --symmetric
  spritegrid reduce walk.png --mode per-direction --directions 8 --skip 2
  spritegrid regroup walk-0.png walk-1.png --delete-sources
  spritegrid plan --count 128 --size 256x256 --max-dimension 4096
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// cli carries the state shared by every subcommand.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string

	log zerolog.Logger
	sg  *spritegrid.Spritegrid
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: cliconfig.DefaultConfig(), log: cliconfig.Logger()}

	root := &cobra.Command{
		Use:               "spritegrid",
		Short:             "Lay out, reduce, split and regroup sprite sheets",
		Long:              strings.TrimSpace(helpDescription),
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.spritegrid/config.toml)")
	pf.IntVar(&c.cfg.MaxDimension, "max-dimension", c.cfg.MaxDimension, "maximum width and height of a written sheet, in pixels")
	pf.StringVar(&c.cfg.Layout, "layout", c.cfg.Layout, "layout mode: grid or single-row")
	pf.IntVar(&c.cfg.RowLength, "row-length", c.cfg.RowLength, "force this many frames per row (0 picks automatically)")
	pf.StringSliceVar(&c.cfg.Extensions, "extensions", c.cfg.Extensions, "image extensions picked up from directories")
	pf.BoolVar(&c.cfg.FailFast, "fail-fast", c.cfg.FailFast, "stop a batch at the first failing file")
	pf.BoolVar(&c.cfg.Recursive, "recursive", c.cfg.Recursive, "descend into sub-directories of directory inputs")
	pf.BoolVar(&c.cfg.Overwrite, "overwrite", c.cfg.Overwrite, "write single-file results over their input")
	pf.BoolVar(&c.cfg.Verbose, "verbose", c.cfg.Verbose, "enable debug logging")

	root.AddCommand(
		c.mergeCmd(),
		c.componentsCmd(),
		c.reduceCmd(),
		c.splitCmd(),
		c.regroupCmd(),
		c.reverseCmd(),
		c.shiftCmd(),
		c.trimCmd(),
		c.planCmd(),
	)
	return root
}

// setup loads the configuration file (default $HOME/.spritegrid/config.toml),
// then SPRITEGRID_* variables, leaving explicitly set flags untouched, and
// builds the library instance.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}

	if err := c.cfg.Validate(); err != nil {
		return err
	}

	cliconfig.SetVerbose(c.cfg.Verbose)
	c.log = cliconfig.Logger()
	c.log.Debug().Interface("config", c.cfg).Msg("configuration")

	sg, err := spritegrid.New(c.libConfig(),
		spritegrid.WithLogger(logAdapter.NewZerologAdapterWithLogger(c.log)),
	)
	if err != nil {
		return fmt.Errorf("create spritegrid: %w", err)
	}
	c.sg = sg
	return nil
}

func (c *cli) libConfig() spritegrid.Config {
	return spritegrid.Config{
		MaxDimension:  c.cfg.MaxDimension,
		Layout:        c.cfg.LayoutMode(),
		RowLength:     c.cfg.RowLength,
		FailFast:      c.cfg.FailFast,
		Recursive:     c.cfg.Recursive,
		Extensions:    c.cfg.Extensions,
		DeleteSources: c.cfg.DeleteSources,
		Overwrite:     c.cfg.Overwrite,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log := cliconfig.Logger()
		log.Error().Err(err).Msg("spritegrid")
		stop()
		os.Exit(1)
	}
}
