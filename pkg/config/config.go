package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Storage  StorageConfig
	Defaults DefaultsConfig
	Export   ExportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig configuración de la persistencia local.
// La colección completa de facturas vive en un único archivo JSON.
type StorageConfig struct {
	Path string // ruta del archivo de la colección
}

// DefaultsConfig valores por defecto aplicados al iniciar una factura nueva
// (equivalente a los ajustes de empresa del usuario).
type DefaultsConfig struct {
	CompanyName    string
	CompanyAddress string
	CompanyLogo    string // data URL opcional
	Currency       string // símbolo, texto libre
}

// ExportConfig configuración de la exportación a PDF.
// Los colores del tema se expresan como strings CSS (#rrggbb, rgb(...));
// valores en espacios de color no soportados caen a los colores seguros.
type ExportConfig struct {
	TimeoutSeconds  int
	BackgroundColor string
	BorderColor     string
	TextColor       string
	AccentColor     string
	Shadow          string // efectos visuales: se descartan antes de renderizar
	Filter          string
}

// Timeout devuelve el tiempo máximo de espera para generar un PDF.
func (c ExportConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "invoice-maker"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Path: getString(v, "STORAGE_PATH", "./data/invoices.json"),
		},
		Defaults: DefaultsConfig{
			CompanyName:    getString(v, "DEFAULT_COMPANY_NAME", ""),
			CompanyAddress: getString(v, "DEFAULT_COMPANY_ADDRESS", ""),
			CompanyLogo:    getString(v, "DEFAULT_COMPANY_LOGO", ""),
			Currency:       getString(v, "DEFAULT_CURRENCY", "$"),
		},
		Export: ExportConfig{
			TimeoutSeconds:  getInt(v, "EXPORT_TIMEOUT_SECONDS", 15),
			BackgroundColor: getString(v, "EXPORT_BACKGROUND_COLOR", "#ffffff"),
			BorderColor:     getString(v, "EXPORT_BORDER_COLOR", "#e5e7eb"),
			TextColor:       getString(v, "EXPORT_TEXT_COLOR", "#0f172a"),
			AccentColor:     getString(v, "EXPORT_ACCENT_COLOR", "#00467f"),
			Shadow:          getString(v, "EXPORT_SHADOW", ""),
			Filter:          getString(v, "EXPORT_FILTER", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
