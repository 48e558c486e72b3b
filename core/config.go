package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all client settings. The backend base URL is the only value
// expected from the environment on a stock install; everything else has a
// sane default.
type Config struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	AppName string `mapstructure:"appName"`
	Build   string `mapstructure:"build"`

	APIBaseURL   string `mapstructure:"apiBaseUrl"`
	StoragePath  string `mapstructure:"storagePath"`
	RollbarToken string `mapstructure:"rollbarToken"`
}

func (c *Config) TestMode() bool { return c.Env == "TEST" }

// LoadConfig reads settings from defaults, an optional config/.env.<env> file
// and the process environment (SEEKHO_ prefix), in increasing precedence.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}

	home, _ := os.UserHomeDir()

	// defaults
	v.SetDefault("env", env)
	v.SetDefault("debug", env == "DEV")
	v.SetDefault("appName", "SeekhoBharat")
	v.SetDefault("build", "dev")
	v.SetDefault("apiBaseUrl", "http://localhost:4000/api/v1")
	v.SetDefault("storagePath", filepath.Join(home, ".seekhobharat", "storage.json"))
	v.SetDefault("rollbarToken", "")

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}

	v.SetEnvPrefix("seekho")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		return nil, err
	}
	return conf, nil
}
