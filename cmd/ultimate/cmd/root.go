package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/satish049/Ultimate.Utilities/foundation/core/config"
	"github.com/satish049/Ultimate.Utilities/foundation/core/log"
)

// configDefaults apply when no config file is given and fill keys a file
// leaves out.
var configDefaults = map[string]interface{}{
	"log.level":      "warn",
	"log.format":     "text",
	"join.separator": ",",
	"pad.with":       " ",
}

var configRules = config.ValidationRules{
	"log.level":      {Type: "string"},
	"log.format":     {Type: "string"},
	"join.separator": {Type: "string"},
	"pad.with":       {Type: "string", Min: config.IntPtr(1)},
}

// app carries the state shared by all sub-commands of one invocation.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *log.Logger
	timer  *log.Timer
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "ultimate",
		Short: "Null-safe string and collection utilities",
		Long: `ultimate exposes the Ultimate.Utilities string engine on the command line.

Examples:
  ultimate substring --start -2 abc
  ultimate split --sep : --preserve ab::cd:ef
  ultimate abbreviate --offset 5 --width 10 abcdefghijklmno
  ultimate case snake HTTPServerConfig
  ultimate md5 --base64 "hello"`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML or YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newVersionCmd(),
		newSubstringCmd(a),
		newSplitCmd(a),
		newJoinCmd(a),
		newAbbreviateCmd(a),
		newPadCmd(a),
		newCaseCmd(a),
		newMD5Cmd(a),
	)
	return root
}

// Execute runs the command line tool.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	levelName := a.logLevel
	if levelName == "" {
		levelName = cfg.GetString("log.level")
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	formatName := a.logFormat
	if formatName == "" {
		formatName = cfg.GetString("log.format")
	}
	format, err := log.ParseFormat(formatName)
	if err != nil {
		return fmt.Errorf("invalid log format %q: %w", formatName, err)
	}

	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "ultimate",
	}).WithCorrelationID(uuid.NewString())

	a.logger.Debug("command started", log.Fields{
		"command": cmd.CommandPath(),
		"config":  a.cfgFile,
	})
	a.timer = a.logger.StartTimer(cmd.Name())
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	if path == "" {
		cfg = config.Empty()
		for k, v := range configDefaults {
			cfg.Set(k, v)
		}
	} else {
		var err error
		cfg, err = config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "ULTIMATE",
			Defaults:  configDefaults,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(configRules).Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// done logs the outcome and duration of a sub-command at debug level.
func (a *app) done(cmd *cobra.Command, fields log.Fields) {
	if fields == nil {
		fields = log.Fields{}
	}
	fields["command"] = cmd.Name()
	a.timer.Stop(fields)
}
