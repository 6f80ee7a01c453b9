package cmd

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/untwist"
	"github.com/tutils/untwist/family"
	"github.com/tutils/untwist/logger"
	"github.com/tutils/untwist/seed"
)

var (
	cfgFile string
	// arguments as typed, logged in packed form at debug level
	cmdline []string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "untwist",
	Short: "Reproducible JVM and .NET random sequences.",
	Long: `Reproducible JVM and .NET random sequences.
Generate the exact values java.util.Random or System.Random produce for a seed, For example:
  untwist gen --algo=lcg --seed=1000 --kind=int --count=10
  untwist gen --algo=platform --seed=-1066875246 --kind=double
  untwist serve --listen=0.0.0.0:8080`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.SetFormat(viper.GetString("log-format"), os.Stderr); err != nil {
			return err
		}
		if err := logger.SetLevel(viper.GetString("log-level")); err != nil {
			return err
		}
		if len(cmdline) > 0 {
			if s, err := encodeCmdline(cmdline); err == nil {
				logger.Log().Debug().Str("packed", prefix+s).Msg("command line")
			}
		}
		return nil
	},
}

const (
	prefix = "@"
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if len(os.Args) == 2 && strings.HasPrefix(os.Args[1], prefix) {
		args, err := decodeCmdline(os.Args[1][1:])
		if err != nil {
			logger.Log().Error().Err(err).Msg("invalid packed command line")
			os.Exit(1)
		}
		rootCmd.SetArgs(args)
	} else {
		cmdline = os.Args[1:]
	}

	if err := rootCmd.Execute(); err != nil {
		logger.Log().Error().Err(err).Msg("")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.untwist.yaml)")
	flags.StringP("algo", "a", family.LCG, "generator family: lcg (java.util.Random) or platform (System.Random)")
	flags.Int64P("seed", "s", 0, "generator seed")
	flags.Bool("secure-seed", false, "seed from the system's secure random source instead of --seed")
	flags.String("log-format", "console", "log format: console or json")
	flags.String("log-level", "info", "minimum log level: trace, debug, info, warn or error")

	for _, name := range []string{"algo", "seed", "secure-seed", "log-format", "log-level"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			logger.Log().Error().Err(err).Msg("")
			os.Exit(1)
		}

		// Search config in home directory with name ".untwist" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".untwist")
	}

	viper.SetEnvPrefix("untwist")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Log().Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

// newGenerator builds the generator selected by the shared flags.
func newGenerator() (untwist.Generator, error) {
	s := viper.GetInt64("seed")
	if viper.GetBool("secure-seed") {
		var err error
		if s, err = seed.Long(); err != nil {
			return nil, err
		}
		logger.Log().Info().Int64("seed", s).Msg("secure seed")
	}
	return family.New(viper.GetString("algo"), s)
}
