package opts

import (
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sheetsplit/pkg/config"
)

// RootOpts contains shared options used by all commands.
type RootOpts struct {
	ConfigFile string
	Debug      bool
}

// LoadConfig resolves the effective configuration. A missing config file is
// only an error when the user named one explicitly; otherwise environment
// variables and interactive prompts cover everything the file would.
func (o *RootOpts) LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit := cmd.Root().PersistentFlags().Changed("config")

	if _, err := os.Stat(o.ConfigFile); err != nil {
		if os.IsNotExist(err) && !explicit {
			return config.Default()
		}
		return nil, errors.Errorf("reading config file %q: %w", o.ConfigFile, err)
	}

	return config.Load(cmd.Context(), o.ConfigFile)
}
