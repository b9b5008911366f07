// Package cmd is the command line interface for building
// static map urls.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	staticmap "github.com/harrybrwn/go-staticmap"
)

// Execute will execute the root comand on the cli
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// TokenEnv is the environment variable read for the access token.
const TokenEnv = "MAPBOX_ACCESS_TOKEN"

type cli struct {
	conf    *viper.Viper
	cfgFile string
	verbose bool
	log     *slog.Logger
	bindErr error
}

// NewRootCmd creates the root command with all of
// its sub-commands attached.
func NewRootCmd() *cobra.Command {
	c := &cli{conf: viper.New(), log: slog.New(discard{})}
	root := &cobra.Command{
		Use:   "staticmap",
		Short: "Build mapbox static image urls",
		Long: `staticmap prints urls for the mapbox static images api.

The access token is read from --token, then $MAPBOX_ACCESS_TOKEN, then the
"token" key of the config file ($HOME/.staticmap.yaml by default).

Put "--" before a CENTER that starts with a negative longitude.

Examples:
  staticmap styles mapbox streets-v11 600 400 -- -122.42,37.78,14
  staticmap styles mapbox light-v10 600 400 auto --marker -122.42,37.78,s,a,f00 --padding 20
  staticmap classic mapbox.satellite 256 256 '[-77.04,38.8,-77.02,38.91]' --format jpg80`,
		SilenceUsage:      true,
		PersistentPreRunE: c.init,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.staticmap.yaml)")
	flags.String("token", "", "mapbox access token")
	flags.String("host", staticmap.DefaultHost, "api hostname")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "print debug logs to stderr")

	c.bindErr = errors.Join(
		c.conf.BindPFlag("token", flags.Lookup("token")),
		c.conf.BindPFlag("host", flags.Lookup("host")),
		c.conf.BindEnv("token", TokenEnv),
	)

	root.AddCommand(newStylesCmd(c), newClassicCmd(c))
	return root
}

func (c *cli) init(cmd *cobra.Command, args []string) error {
	c.log = newLogger(cmd.ErrOrStderr(), c.verbose)
	if c.bindErr != nil {
		return fmt.Errorf("could not bind config: %w", c.bindErr)
	}

	if c.cfgFile != "" {
		c.conf.SetConfigFile(c.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			c.log.Debug("no home directory", "error", err)
			return nil
		}
		c.conf.AddConfigPath(home)
		c.conf.SetConfigType("yaml")
		c.conf.SetConfigName(".staticmap")
	}

	err := c.conf.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		c.log.Debug("using config file", "path", c.conf.ConfigFileUsed())
	case errors.As(err, &notFound) && c.cfgFile == "":
	default:
		return fmt.Errorf("could not read config: %w", err)
	}
	return nil
}

func (c *cli) client() (*staticmap.Client, error) {
	tok := c.conf.GetString("token")
	if tok == "" {
		return nil, fmt.Errorf("no access token: use --token or set $%s", TokenEnv)
	}
	host := c.conf.GetString("host")
	c.log.Debug("creating client", "host", host)
	return staticmap.WithHost(tok, host), nil
}
