package cli

import (
	"os"
	_ "time/tzdata"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/datetime"
	"github.com/viant/datetime/config"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "DATETIME"

type rootOptions struct {
	ConfigFile     string
	LogLevel       string
	ZoneConversion bool
	Zone           string
	Formats        []string
}

// Execute runs datetime command, on failure the process exits with status derived from errbuilder code
func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	opts := rootOptions{}
	cmd := &cobra.Command{
		Use:          "datetime",
		Short:        "Parse and format local date-time values",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initConfig()
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "Log level")
	flags.BoolVar(&opts.ZoneConversion, "zone-conversion", false, "Convert between local zone and UTC")
	flags.StringVar(&opts.Zone, "zone", "", "Local zone name, defaults to system zone")
	flags.StringSliceVar(&opts.Formats, "format", nil, "Ordered input formats: default, lenient, layout:<go layout> or date pattern")
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("zone_conversion", flags.Lookup("zone-conversion"))
	_ = viper.BindPFlag("zone", flags.Lookup("zone"))
	_ = viper.BindPFlag("formats", flags.Lookup("format"))

	cmd.AddCommand(newParseCommand())
	cmd.AddCommand(newFormatCommand())
	cmd.AddCommand(newBatchCommand())
	return cmd
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// loadConfig reads config file, flags and DATETIME_* env override file values
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if path := viper.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		cfg = loaded
	}
	if viper.IsSet("zone_conversion") {
		cfg.ZoneConversion = viper.GetBool("zone_conversion")
	}
	if viper.IsSet("zone") {
		cfg.Zone = viper.GetString("zone")
	}
	if viper.IsSet("formats") {
		cfg.Formats = viper.GetStringSlice("formats")
	}
	return cfg, nil
}

func newConverter() (*datetime.Converter, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" && !viper.IsSet("log_level") {
		setupLogging(cfg.LogLevel)
	}
	converter, err := cfg.Converter(log.Logger)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid converter configuration").
			WithCause(err)
	}
	log.Debug().
		Bool("zoneConversion", converter.ZoneConversion()).
		Int("specifiers", len(converter.Specifiers())).
		Msg("converter created")
	return converter, nil
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeNotFound:
		return 3
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
