package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrMissingCredentials indica que as credenciais obrigatórias da API do Meta
// não foram configuradas. Validado antes de qualquer chamada de rede.
var ErrMissingCredentials = errors.New("credenciais obrigatórias ausentes: META_ACCESS_TOKEN e META_AD_ACCOUNT_ID")

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Exports    Exports    `mapstructure:",squash"`
	ExportSync ExportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL               string `mapstructure:"meta_base_url"`
	URL                   string `mapstructure:"meta_url"`
	Version               string `mapstructure:"meta_version"`
	AccessToken           string `mapstructure:"meta_access_token"`
	AccountID             string `mapstructure:"meta_ad_account_id"`
	RequestTimeoutSecs    int    `mapstructure:"meta_request_timeout_seconds"`
	MaxRetries            int    `mapstructure:"meta_max_retries"`
	RetryInitialDelaySecs int    `mapstructure:"meta_retry_initial_delay_seconds"`
	PageSize              int    `mapstructure:"meta_page_size"`
}

type Exports struct {
	Dir                string   `mapstructure:"export_dir"`
	DateRanges         []string `mapstructure:"export_date_ranges"`
	AttributionWindows []string `mapstructure:"export_attribution_windows"`
	EntityPauseSeconds int      `mapstructure:"export_entity_pause_seconds"`
}

type ExportSync struct {
	CronSchedule string `mapstructure:"export_sync_cron"`
	Enabled      bool   `mapstructure:"export_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v18.0")
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 30) // Timeout por chamada HTTP
	viper.SetDefault("META_MAX_RETRIES", 3)              // Tentativas em caso de rate limit
	viper.SetDefault("META_RETRY_INITIAL_DELAY_SECONDS", 5)
	viper.SetDefault("META_PAGE_SIZE", 500)

	viper.SetDefault("EXPORT_DIR", "exports")
	viper.SetDefault("EXPORT_DATE_RANGES", []string{"7_days", "28_days", "lifetime"})
	viper.SetDefault("EXPORT_ATTRIBUTION_WINDOWS", []string{"1d_click", "7d_click", "default"})
	viper.SetDefault("EXPORT_ENTITY_PAUSE_SECONDS", 5) // Pausa entre tipos de entidade

	// Defaults para sincronização agendada de exportações
	viper.SetDefault("EXPORT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("EXPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	// Credenciais são pré-condição de todo o pipeline: falhar antes de
	// qualquer chamada de rede
	if config.Meta.AccessToken == "" || config.Meta.AccountID == "" {
		return nil, ErrMissingCredentials
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	return config, nil
}

// CampaignDir retorna o diretório de exportação de campanhas
func (e Exports) CampaignDir() string {
	return filepath.Join(e.Dir, "campaigns")
}

// AdSetDir retorna o diretório de exportação de conjuntos de anúncios
func (e Exports) AdSetDir() string {
	return filepath.Join(e.Dir, "adsets")
}

// AdDir retorna o diretório de exportação de anúncios
func (e Exports) AdDir() string {
	return filepath.Join(e.Dir, "ads")
}

// EnsureDirs cria os diretórios de exportação. Chamado uma única vez pelo
// orquestrador no início da execução, nunca em init.
func (e Exports) EnsureDirs() error {
	dirs := []string{e.Dir, e.CampaignDir(), e.AdSetDir(), e.AdDir()}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "erro ao criar diretório de exportação %s", dir)
		}
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
