package metaclient

import (
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/meta-ads-exporter/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-exporter/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	Request(endpoint string, params url.Values, method string) ([]metadomain.Record, error)
	GetInsights(objectID string, fields []string, attributionWindow string, level string) ([]metadomain.Record, error)
	ValidateAccess() bool
}

// MetaClient encapsula o acesso autenticado e paginado à Graph API.
// O estado de espaçamento entre requisições é privado à instância e só é
// mutado pela própria sequência de chamadas (execução sequencial).
type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client

	minInterval time.Duration
	lastRequest time.Time

	maxRetries   int
	initialDelay time.Duration
	maxDelay     time.Duration

	// indireção para testes de retry/espaçamento
	sleep func(time.Duration)
	now   func() time.Time
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Meta.RequestTimeoutSecs) * time.Second,
		},
		minInterval:  time.Second, // Mínimo de 1 segundo entre requisições
		maxRetries:   cfg.Meta.MaxRetries,
		initialDelay: time.Duration(cfg.Meta.RetryInitialDelaySecs) * time.Second,
		maxDelay:     300 * time.Second,
		sleep:        time.Sleep,
		now:          time.Now,
	}
}
