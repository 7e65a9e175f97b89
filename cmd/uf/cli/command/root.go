package command

import (
	"github.com/spf13/cobra"

	"github.com/anchore/go-logger"
	"github.com/anchore/go-logger/adapter/logrus"
	"github.com/uf-cli/uf/internal/bus"
	"github.com/uf-cli/uf/internal/config"
	"github.com/uf-cli/uf/internal/launcher"
	"github.com/uf-cli/uf/internal/log"
	"github.com/uf-cli/uf/internal/mimetype"
	"github.com/uf-cli/uf/uf"
)

// GlobalConfig holds configuration that applies to all commands
type GlobalConfig struct {
	ConfigFile string
	Quiet      bool
	Verbose    bool
}

// GetGlobalConfig extracts global configuration from cobra command
func GetGlobalConfig(cmd *cobra.Command) *GlobalConfig {
	configFile, _ := cmd.Flags().GetString("config")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return &GlobalConfig{
		ConfigFile: configFile,
		Quiet:      quiet,
		Verbose:    verbose,
	}
}

// SetupLogging configures logging based on verbose flag
func SetupLogging(verbose bool) {
	var logLevel logger.Level
	if verbose {
		logLevel = logger.DebugLevel
	} else {
		logLevel = logger.WarnLevel
	}

	cfg := logrus.Config{
		EnableConsole: true,
		Level:         logLevel,
	}

	l, _ := logrus.New(cfg)
	log.Set(l)
}

// Root creates the root command: uf FILE
func Root() *cobra.Command {
	return &cobra.Command{
		Use:   "uf FILE",
		Short: "Open a file with the program configured for its type",
		Long: `uf opens FILE with an external program chosen by matching the file's
MIME type and extension against the rules in its configuration file
($XDG_CONFIG_HOME/uf.conf by default). Rules are tried in file order and
the first match wins.

Rule lines have the form:

  mime PATTERN PROGRAM   match the detected MIME type; "major/*" matches
                         every subtype of a major type
  ext PATTERN PROGRAM    match the bare file extension, case-sensitively

Exit codes:
- 0: the program was launched
- 1: missing or invalid configuration, no matching rule, or launch failure`,
		Args: cobra.ExactArgs(1),
		RunE: runOpen,
	}
}

// runOpen executes the default open flow: load rules, detect, match, launch.
func runOpen(cmd *cobra.Command, args []string) error {
	globalConfig := GetGlobalConfig(cmd)
	path := args[0]

	rules, err := loadRules(globalConfig)
	if err != nil {
		return err
	}

	target := uf.Target{
		Path:      path,
		Extension: uf.ExtensionOf(path),
	}
	if detected, err := mimetype.Detect(cmd.Context(), path); err != nil {
		log.Warnf("could not determine MIME type of %s: %v", path, err)
		bus.Notifyf("warning: no MIME type detected for %s, matching on extension only", path)
	} else {
		target.MIME = &detected
	}

	program, rule, err := rules.Program(target)
	if err != nil {
		return err
	}
	log.Debugf("matched %s rule %q from line %d", rule.Kind, rule.Pattern, rule.Line)

	// drain pending notifications; on unix the launcher replaces this process
	ShutdownEventBus()
	return launcher.Run(program, path)
}

// loadRules resolves the config path and loads the rule set from it.
func loadRules(globalConfig *GlobalConfig) (uf.RuleSet, error) {
	path, err := config.Resolve(globalConfig.ConfigFile)
	if err != nil {
		return nil, err
	}
	log.Debugf("config file: %s", path)
	return uf.Load(path)
}
