package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/tristate/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyUnsetKey   = "unset_key"
	cfgKeyLocale     = "locale"
	cfgKeyStatusTags = "status_tags"
	cfgKeyCatalog    = "catalog"
	cfgKeyDatabase   = "database"

	// envPrefix turns unset_key into TRISTATE_UNSET_KEY.
	envPrefix = "TRISTATE"
)

// loadConfig reads config.yaml from configDir using Viper. TRISTATE_*
// environment variables override file values. A missing config.yaml is not
// an error; the defaults apply until init writes one.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyUnsetKey, types.DefaultUnsetKey)
	v.SetDefault(cfgKeyLocale, types.DefaultLocale)
	v.SetDefault(cfgKeyStatusTags, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// resolverConfig builds the resolver configuration from v.
func resolverConfig(v *viper.Viper) types.Config {
	key := v.Get(cfgKeyUnsetKey)
	if key == nil {
		key = types.DefaultUnsetKey
	}
	return types.Config{
		UnsetKey:   key,
		Locale:     v.GetString(cfgKeyLocale),
		StatusTags: v.GetBool(cfgKeyStatusTags),
	}
}
