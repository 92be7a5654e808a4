package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	LLMGateway     LLMGateway     `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Render         Render         `mapstructure:",squash"`
	Analyst        Analyst        `mapstructure:",squash"`
	BriefingWarmup BriefingWarmup `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

// LLMGateway configura o gateway compatível com OpenAI usado para relatórios e chat
type LLMGateway struct {
	URL         string        `mapstructure:"llm_gateway_url"`
	APIKey      string        `mapstructure:"llm_gateway_api_key"`
	Model       string        `mapstructure:"llm_gateway_model"`
	DialTimeout time.Duration `mapstructure:"llm_gateway_dial_timeout"`
}

type Auth struct {
	JWTSecret string `mapstructure:"auth_jwt_secret"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
	BaseURL   string `mapstructure:"render_base_url"`
}

type Analyst struct {
	ImpactConcurrency int `mapstructure:"analyst_impact_concurrency"`
}

type BriefingWarmup struct {
	CronSchedule      string        `mapstructure:"briefing_warmup_cron"`
	MaxConcurrentJobs int           `mapstructure:"briefing_warmup_max_concurrent_jobs"`
	CacheTTL          time.Duration `mapstructure:"briefing_warmup_cache_ttl"`
	Enabled           bool          `mapstructure:"briefing_warmup_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Location retorna o fuso do app, usado para definir "hoje" quando o cliente não envia a data
func (a App) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido: %s, usando UTC", a.Timezone)
		return time.UTC
	}
	return loc
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/tortshark?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("LLM_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions")
	viper.SetDefault("LLM_GATEWAY_API_KEY", "")
	viper.SetDefault("LLM_GATEWAY_MODEL", "google/gemini-2.5-flash")
	viper.SetDefault("LLM_GATEWAY_DIAL_TIMEOUT", "15s")

	viper.SetDefault("AUTH_JWT_SECRET", "your_jwt_secret")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")
	viper.SetDefault("RENDER_BASE_URL", "https://api.render.com/v1")

	viper.SetDefault("ANALYST_IMPACT_CONCURRENCY", 4)

	viper.SetDefault("BRIEFING_WARMUP_CRON", "0 6 * * *")      // Todos os dias às 6h da manhã
	viper.SetDefault("BRIEFING_WARMUP_MAX_CONCURRENT_JOBS", 2) // 2 workspaces em paralelo
	viper.SetDefault("BRIEFING_WARMUP_CACHE_TTL", "24h")       // briefing vale pelo dia
	viper.SetDefault("BRIEFING_WARMUP_ENABLED", false)         // Desabilitado por padrão

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("APP_TIMEZONE", "America/New_York")
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

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if config.LLMGateway.APIKey == "" && config.Render.ServiceID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		loadGatewayKey(ctx, NewRenderClient(config), config)
		cancel()
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

// loadGatewayKey completa a chave do gateway a partir dos secret files quando ela não veio do ambiente
func loadGatewayKey(ctx context.Context, storage SecretStorage, config *Config) {
	secrets, err := storage.ListSecrets(ctx, config.Render.ServiceID)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao obter secrets do Render")
		return
	}
	if key, ok := secrets["llm_gateway_api_key"]; ok {
		config.LLMGateway.APIKey = key
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
