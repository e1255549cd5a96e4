package conf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/looplj/authhub/internal/log"
	"github.com/looplj/authhub/internal/pkg/xcache"
	"github.com/looplj/authhub/internal/server"
	"github.com/looplj/authhub/internal/server/biz"
	"github.com/looplj/authhub/internal/server/db"
	"github.com/looplj/authhub/internal/server/gc"
)

// Config is the root configuration tree. Field tags follow the conf key
// naming used in the yaml file and environment variables.
type Config struct {
	APIServer server.Config `conf:"server" yaml:"server" json:"server"`
	DB        db.Config     `conf:"db" yaml:"db" json:"db"`
	Log       log.Config    `conf:"log" yaml:"log" json:"log"`
	JWT       biz.JWTConfig `conf:"jwt" yaml:"jwt" json:"jwt"`
	Cache     xcache.Config `conf:"cache" yaml:"cache" json:"cache"`
	Biz       biz.Config    `conf:"biz" yaml:"biz" json:"biz"`
	GC        gc.Config     `conf:"gc" yaml:"gc" json:"gc"`
}

// Load reads the configuration from authhub.yml (working directory, ./conf
// or /etc/authhub) and the AUTHHUB_* environment, falling back to defaults.
func Load() (Config, error) {
	v := viper.New()

	v.SetConfigName("authhub")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./conf")
	v.AddConfigPath("/etc/authhub")

	if path := os.Getenv("AUTHHUB_CONFIG"); path != "" {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("AUTHHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config

	err := v.Unmarshal(&config, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "conf"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.name", "authhub")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.request_timeout", "30s")

	v.SetDefault("db.dialect", "sqlite3")
	v.SetDefault("db.dsn", "file:authhub.db?cache=shared&_pragma=foreign_keys(1)")

	v.SetDefault("log.name", "authhub")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("jwt.ttl", "1h")
	v.SetDefault("jwt.login_ttl", "2h")

	v.SetDefault("cache.mode", "memory")

	v.SetDefault("gc.enabled", false)
	v.SetDefault("gc.cron", gc.DefaultCRON)
	v.SetDefault("gc.retention", "720h")
}
