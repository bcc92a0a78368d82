// Package cli implements the tristate command-line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/logutils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/tristate/internal/paths"
	"github.com/mesh-intelligence/tristate/internal/sqlite"
	"github.com/mesh-intelligence/tristate/pkg/i18n"
	"github.com/mesh-intelligence/tristate/pkg/tristate"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	database  string
	catalog   string
	jsonMode  bool
	verbose   bool
}

// app carries the state shared by the subcommands of one root command.
type app struct {
	flags     rootFlags
	configDir string
	v         *viper.Viper
	logger    *log.Logger
	catalog   *i18n.Catalog
	resolver  *tristate.Resolver
}

// logLevels are the levels understood by the log filter, lowest first.
var logLevels = []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERR"}

// newLogger writes to w the lines at or above TRISTATE_LOG (default WARN).
// verbose lowers the level to DEBUG. An unknown level falls back to WARN.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	env := strings.ToUpper(strings.TrimSpace(os.Getenv(envPrefix + "_LOG")))
	minLevel := logutils.LogLevel(env)
	bad := env != "" && !slices.Contains(logLevels, minLevel)
	if env == "" || bad {
		minLevel = "WARN"
	}
	if verbose {
		minLevel = "DEBUG"
	}
	filter := &logutils.LevelFilter{Levels: logLevels, Writer: w}
	filter.SetMinLevel(minLevel)
	logger := log.New(filter, "", 0)
	if bad {
		logger.Printf("[WARN] (cli) unknown %s_LOG level %q, using WARN", envPrefix, env)
	}
	return logger
}

// sysError marks failures of the environment (files, database) as opposed
// to bad input.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func asSysError(err error) error {
	if err == nil {
		return nil
	}
	return &sysError{err: err}
}

// NewRootCmd creates the top-level "tristate" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "tristate",
		Short: "Resolve and store true / false / unknown values",
		Long: "tristate casts values to a three-valued boolean, builds the choices of a\n" +
			"true / false / unset radio input, and reads or writes nullable BOOLEAN\n" +
			"columns of a SQLite database.",
		Version: tristate.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/tristate)")
	pf.StringVar(&a.flags.database, "db", "", "SQLite database (default: $(CWD)/tristate.db)")
	pf.StringVar(&a.flags.catalog, "catalog", "", "translation catalog (default: <config-dir>/locales.yml)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log at DEBUG level to stderr, including every value conversion")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newResolveCmd())
	root.AddCommand(a.newChoicesCmd())
	root.AddCommand(a.newColumnsCmd())
	root.AddCommand(a.newGetCmd())
	root.AddCommand(a.newSetCmd())
	root.AddCommand(a.newDumpCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:], os.Stderr))
}

func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// setup loads the configuration and builds the resolver.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return asSysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return asSysError(err)
	}
	a.configDir = configDir
	a.v = v
	a.logger = newLogger(cmd.ErrOrStderr(), a.flags.verbose)
	a.logger.Printf("[DEBUG] (cli) config dir %s", configDir)

	opts := []tristate.Option{tristate.WithLogger(a.logger)}
	catalog, err := a.loadCatalog()
	if err != nil {
		return err
	}
	if catalog != nil {
		a.catalog = catalog
		opts = append(opts, tristate.WithTranslator(catalog))
	}

	r, err := tristate.New(resolverConfig(v), opts...)
	if err != nil {
		return fmt.Errorf("config %s: %w", configDir, err)
	}
	a.resolver = r
	return nil
}

// loadCatalog reads the translation catalog. A missing file is only an
// error when --catalog names it explicitly.
func (a *app) loadCatalog() (*i18n.Catalog, error) {
	path, err := paths.ResolveCatalog(a.flags.catalog, a.v.GetString(cfgKeyCatalog), a.configDir)
	if err != nil {
		return nil, asSysError(fmt.Errorf("resolve catalog: %w", err))
	}
	if _, err := os.Stat(path); os.IsNotExist(err) && a.flags.catalog == "" {
		a.logger.Printf("[DEBUG] (cli) no catalog at %s", path)
		return nil, nil
	}
	c, err := i18n.Load(path)
	if err != nil {
		return nil, asSysError(err)
	}
	a.logger.Printf("[DEBUG] (cli) loaded %d labels from %s", c.Len(), path)
	locale := resolverConfig(a.v).LocaleOrDefault()
	if locales := c.Locales(); !slices.Contains(locales, locale) {
		a.logger.Printf("[WARN] (cli) catalog %s has no locale %q (has %v)", path, locale, locales)
	}
	return c, nil
}

// openStore opens the database from --db, config.yaml or the default. The
// caller must Close the store.
func (a *app) openStore() (*sqlite.Store, error) {
	path, err := paths.ResolveDatabase(a.flags.database, a.v.GetString(cfgKeyDatabase))
	if err != nil {
		return nil, asSysError(fmt.Errorf("resolve database: %w", err))
	}
	a.logger.Printf("[DEBUG] (cli) opening %s", path)
	s, err := sqlite.Open(path)
	if err != nil {
		return nil, asSysError(err)
	}
	return s, nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
