package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"

	"sevanear/internal/logger"
)

// Environment variables carrying a user-supplied coordinate, consulted by
// the location chain before the fixed default.
const (
	EnvLatVar = "SEVANEAR_LAT"
	EnvLngVar = "SEVANEAR_LNG"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	APIURL  string        // backend base URL
	Fixture bool          // serve canned data instead of the live backend
	Timeout time.Duration // HTTP client timeout; zero keeps the transport default

	DefaultLatitude  float64 // location-chain fallback coordinate
	DefaultLongitude float64

	Log logger.Config

	HTTP *http.Client // optional; defaults per source.NewClient
}

// Load reads configuration with viper: built-in defaults, then an optional
// config file, then SEVANEAR_* environment overrides.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("api_url", "https://sevanear.onrender.com")
	v.SetDefault("fixture", false)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("default_latitude", 11.2588)
	v.SetDefault("default_longitude", 75.7804)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("SEVANEAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	return Config{
		APIURL:           v.GetString("api_url"),
		Fixture:          v.GetBool("fixture"),
		Timeout:          v.GetDuration("timeout"),
		DefaultLatitude:  v.GetFloat64("default_latitude"),
		DefaultLongitude: v.GetFloat64("default_longitude"),
		Log: logger.Config{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}, nil
}
