package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Wildberries Wildberries `mapstructure:",squash"`
	Sync        Sync        `mapstructure:",squash"`
	Metrics     Metrics     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Wildberries struct {
	StatisticsURL string `mapstructure:"wb_statistics_url"`
	AdvertURL     string `mapstructure:"wb_advert_url"`
}

type Sync struct {
	CronSchedule           string `mapstructure:"sync_cron"`
	OrdersLookbackDays     int    `mapstructure:"sync_orders_lookback_days"`
	FinancialsLookbackDays int    `mapstructure:"sync_financials_lookback_days"`
	Enabled                bool   `mapstructure:"sync_enabled"`
}

type Metrics struct {
	TaxRate float64 `mapstructure:"metrics_tax_rate"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("WB_STATISTICS_URL", "https://statistics-api.wildberries.ru")
	viper.SetDefault("WB_ADVERT_URL", "https://advert-api.wildberries.ru")

	// Defaults para a sincronização periódica
	viper.SetDefault("SYNC_CRON", "0 */4 * * *")         // A cada 4 horas
	viper.SetDefault("SYNC_ORDERS_LOOKBACK_DAYS", 5)     // Janela de pedidos/vendas/estoque
	viper.SetDefault("SYNC_FINANCIALS_LOOKBACK_DAYS", 30) // Janela do relatório financeiro
	viper.SetDefault("SYNC_ENABLED", false)

	// Alíquota fixa de imposto sobre a receita (regime simplificado, 6%)
	viper.SetDefault("METRICS_TAX_RATE", 0.06)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
