package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/tristate/internal/paths"
	"github.com/mesh-intelligence/tristate/internal/sqlite"
	"github.com/mesh-intelligence/tristate/pkg/i18n"
	"github.com/mesh-intelligence/tristate/pkg/tristate"
	"github.com/mesh-intelligence/tristate/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	UnsetKey   string `yaml:"unset_key"`
	Locale     string `yaml:"locale"`
	StatusTags bool   `yaml:"status_tags"`
	Catalog    string `yaml:"catalog,omitempty"`
	Database   string `yaml:"database,omitempty"`
}

func (a *app) newInitCmd() *cobra.Command {
	var (
		cfg  configFile
		demo bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create configuration and an example catalog",
		Long: `Create the configuration directory with config.yaml and a locales.yml
that defines the yes, no and unset labels. Existing files are kept. When
config.yaml exists the catalog follows it, and --unset-key, --locale and
--status-tags are refused. With --demo a companies table with nullable
BOOLEAN columns is added to the database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := filepath.Join(a.configDir, configFileExt)
			exists, err := fileExists(configPath)
			if err != nil {
				return asSysError(fmt.Errorf("stat config: %w", err))
			}
			if exists {
				// The catalog must match the config that later commands read.
				for _, name := range configFlags {
					if cmd.Flags().Changed(name) {
						return fmt.Errorf("%s exists: edit or remove it to change --%s", configPath, name)
					}
				}
				current := resolverConfig(a.v)
				cfg.UnsetKey = current.UnsetKeyString()
				cfg.Locale = current.LocaleOrDefault()
				cfg.StatusTags = current.StatusTags
				cfg.Catalog = a.v.GetString(cfgKeyCatalog)
			}

			if _, err := tristate.New(types.Config{UnsetKey: cfg.UnsetKey}); err != nil {
				return err
			}
			if err := os.MkdirAll(a.configDir, 0o755); err != nil {
				return asSysError(fmt.Errorf("create config directory: %w", err))
			}

			w := cmd.OutOrStdout()
			wrote, err := writeYAMLIfMissing(configPath, &cfg)
			if err != nil {
				return asSysError(fmt.Errorf("write config: %w", err))
			}
			report(w, configPath, wrote)

			catalogPath, err := paths.ResolveCatalog(a.flags.catalog, cfg.Catalog, a.configDir)
			if err != nil {
				return asSysError(err)
			}
			example, err := i18n.Example(cfg.Locale, cfg.UnsetKey, cfg.StatusTags)
			if err != nil {
				return fmt.Errorf("render catalog: %w", err)
			}
			wrote, err = writeIfMissing(catalogPath, example)
			if err != nil {
				return asSysError(fmt.Errorf("write catalog: %w", err))
			}
			report(w, catalogPath, wrote)

			if demo {
				return a.withStore(func(s *sqlite.Store) error {
					n, err := s.Seed()
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "seeded %d rows into %s\n", n, sqlite.DemoTable)
					return nil
				})
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.UnsetKey, "unset-key", types.DefaultUnsetKey, "token carried by the unset choice")
	cmd.Flags().StringVar(&cfg.Locale, "locale", types.DefaultLocale, "locale of the example catalog")
	cmd.Flags().BoolVar(&cfg.StatusTags, "status-tags", false, "also define status tag labels")
	cmd.Flags().BoolVar(&demo, "demo", false, "create and fill the demo companies table")
	return cmd
}

// configFlags are the init flags stored in config.yaml.
var configFlags = []string{"unset-key", "locale", "status-tags"}

// report prints whether path was created or already present.
func report(w io.Writer, path string, wrote bool) {
	if wrote {
		fmt.Fprintf(w, "created %s\n", path)
		return
	}
	fmt.Fprintf(w, "kept %s\n", path)
}

// writeYAMLIfMissing marshals v to path unless the file exists.
func writeYAMLIfMissing(path string, v any) (bool, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return false, fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	return writeIfMissing(path, data)
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// writeIfMissing writes data to path unless the file exists. It reports
// whether it wrote the file.
func writeIfMissing(path string, data []byte) (bool, error) {
	if exists, err := fileExists(path); err != nil || exists {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	return true, os.WriteFile(path, data, 0o644)
}
