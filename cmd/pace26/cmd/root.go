package cmd

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manpen/pace26io/version"
)

const envPrefix = "PACE26"

// Settings that may come from flags, the environment or a config file.
const (
	keyDebug           = "debug"
	keyAllowWhitespace = "allow-whitespace"
	keyNoColor         = "no-color"
)

var longRootCmdDescription = `pace26 reads, checks and rewrites instances of the PACE 2026 challenge:
a header line, optional metadata lines and one binary tree in Newick
notation per line.

Every setting can also be given in a config file (--config, or .pace26.yaml
in the home directory) or as an environment variable, e.g. PACE26_DEBUG=true.
`

// rootOpts is shared by all subcommands of one root command.
type rootOpts struct {
	cfgFile string
	v       *viper.Viper
	log     *logrus.Logger
}

func (o *rootOpts) allowWhitespace() bool {
	return o.v.GetBool(keyAllowWhitespace)
}

// NewRootCmd returns the pace26 command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{v: viper.New(), log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:           "pace26",
		Short:         "Inspect, check and normalize PACE 2026 instances",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.initConfig(); err != nil {
				return err
			}
			opts.log = newLogger(cmd.ErrOrStderr(), LogOptions{
				Verbose:      opts.v.GetBool(keyDebug),
				DisableColor: opts.v.GetBool(keyNoColor),
			})
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.pace26.yaml)")
	flags.BoolP(keyDebug, "d", false, "turn on debug mode")
	flags.Bool(keyAllowWhitespace, false, "accept whitespace between the tokens of a tree")
	flags.Bool(keyNoColor, false, "disable colored log output")
	for _, key := range []string{keyDebug, keyAllowWhitespace, keyNoColor} {
		if err := opts.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		NewInspectCmd(opts),
		NewCheckCmd(opts),
		NewNormalizeCmd(opts),
		NewVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command on os.Args. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("pace26-%s: %v", version.Get(), err)
		os.Exit(1)
	}
}

// initConfig reads in the config file and environment variables.
func (o *rootOpts) initConfig() error {
	o.v.SetEnvPrefix(envPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()

	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
		if err := o.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", o.cfgFile)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Without a home directory there is no default config file.
		return nil
	}
	o.v.AddConfigPath(home)
	o.v.SetConfigName(".pace26")
	o.v.SetConfigType("yaml")
	if err := o.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return errors.Wrap(err, "failed to read default config file")
	}
	return nil
}
