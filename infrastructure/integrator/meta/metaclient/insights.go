package metaclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-exporter/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-exporter/internal/config"
	"github.com/vfg2006/meta-ads-exporter/pkg/utils"
)

// insightsLookbackDays é o período fixo consultado em toda busca de insights.
// O recorte por intervalo menor acontece localmente, nos fetchers.
const insightsLookbackDays = 90

// GetInsights busca os insights de um objeto (campanha, conjunto ou anúncio),
// aplicando a janela de atribuição selecionada por nome e o intervalo fixo de
// 90 dias.
func (c *MetaClient) GetInsights(objectID string, fields []string, attributionWindow string, level string) ([]metadomain.Record, error) {
	windows, ok := config.AttributionWindows[attributionWindow]
	if !ok {
		logrus.WithField("attribution_window", attributionWindow).
			Warn("meta: janela de atribuição desconhecida, usando 'default'")
		windows = config.AttributionWindows["default"]
	}

	encodedWindows, err := json.Marshal(windows)
	if err != nil {
		return nil, &RequestError{Message: "erro ao codificar janela de atribuição", Err: err}
	}

	endDate := c.now()
	startDate := endDate.AddDate(0, 0, -insightsLookbackDays)

	params := url.Values{}
	params.Set("level", level)
	params.Set("fields", strings.Join(fields, ","))
	params.Set("action_attribution_windows", string(encodedWindows))
	params.Set("time_range", fmt.Sprintf(
		`{"since":"%s","until":"%s"}`,
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	))

	return c.Request(fmt.Sprintf("%s/insights", objectID), params, http.MethodGet)
}

// ValidateAccess faz uma chamada leve de verificação de identidade da conta.
// Nunca propaga erro: qualquer falha vira false.
func (c *MetaClient) ValidateAccess() bool {
	params := url.Values{}
	params.Set("fields", "name")

	records, err := c.Request(fmt.Sprintf("act_%s", c.Cfg.Meta.AccountID), params, http.MethodGet)
	if err != nil {
		logrus.WithError(err).Warn("meta: falha ao validar acesso à API")
		return false
	}

	if len(records) > 0 {
		logrus.Debugf("meta: conta verificada %s", utils.PrettyJson(records[0]))
	}

	return true
}
