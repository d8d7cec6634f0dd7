// Package config lee la configuración de la consola vía Viper desde env y
// opcionalmente un archivo .env en el directorio de trabajo.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación.
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	UI      UIConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del backend REST.
type APIConfig struct {
	BaseURL string        // ej. http://localhost:5000/api
	Timeout time.Duration // timeout de red por petición
}

// SessionConfig configuración de la sesión persistida.
type SessionConfig struct {
	TokenPath string // archivo del vault; por defecto bajo el home del usuario
}

// UIConfig configuración de los listados.
type UIConfig struct {
	PageSize int // filas por página de todos los listados
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// un archivo .env). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, API_BASE_URL, API_TIMEOUT_SECONDS, SESSION_TOKEN_PATH, UI_PAGE_SIZE.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "comercio-admin"),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_BASE_URL", "http://localhost:5000/api"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Session: SessionConfig{
			TokenPath: getString(v, "SESSION_TOKEN_PATH", defaultTokenPath()),
		},
		UI: UIConfig{
			PageSize: getInt(v, "UI_PAGE_SIZE", 5),
		},
	}
	return cfg, nil
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".comercio-admin/session.json"
	}
	return filepath.Join(home, ".comercio-admin", "session.json")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
