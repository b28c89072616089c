package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-exporter/infrastructure/integrator/meta/domain"
)

type pageResponse struct {
	Data   []metadomain.Record `json:"data"`
	Paging metadomain.Paging   `json:"paging"`
}

// Request executa uma chamada autenticada contra a Graph API e percorre o
// cursor de paginação até o fim, concatenando os dados de todas as páginas
// na ordem retornada. Rate limit dispara retry com backoff; qualquer outra
// falha propaga imediatamente.
func (c *MetaClient) Request(endpoint string, params url.Values, method string) ([]metadomain.Record, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.Cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, endpoint)

	page, err := c.fetchPage(requestURL, params, method)
	if err != nil {
		return nil, err
	}

	allData := page.Data

	// Seguir o cursor de paginação. A URL "next" já carrega todos os
	// parâmetros, incluindo o token.
	next := page.Paging.Next
	for next != "" {
		page, err = c.fetchPage(next, nil, http.MethodGet)
		if err != nil {
			return nil, err
		}

		allData = append(allData, page.Data...)
		next = page.Paging.Next
	}

	return allData, nil
}

// fetchPage busca uma única página, com retry exponencial restrito a erros
// de rate limit: delay = inicial * 2^tentativa, limitado a 300s.
func (c *MetaClient) fetchPage(rawURL string, params url.Values, method string) (*pageResponse, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		page, err := c.doCall(rawURL, params, method)
		if err == nil {
			return page, nil
		}

		lastErr = err

		var rateErr *RateLimitError
		if !errors.As(err, &rateErr) {
			return nil, err
		}

		if attempt == c.maxRetries-1 {
			break
		}

		delay := c.initialDelay * (1 << attempt)
		if delay > c.maxDelay {
			delay = c.maxDelay
		}

		logrus.WithFields(logrus.Fields{
			"url":     c.maskToken(rawURL),
			"attempt": attempt + 1,
			"delay":   delay.String(),
		}).Warn("meta: limite de requisições atingido, aguardando para tentar novamente")

		c.sleep(delay)
	}

	return nil, lastErr
}

// doCall executa uma única chamada HTTP, respeitando o espaçamento mínimo
// entre requisições (inclusive chamadas de continuação de paginação).
func (c *MetaClient) doCall(rawURL string, params url.Values, method string) (*pageResponse, error) {
	c.waitMinInterval()

	var (
		req *http.Request
		err error
	)

	switch method {
	case http.MethodGet, "":
		callURL := rawURL
		if len(params) > 0 {
			callURL = rawURL + "?" + params.Encode()
		}
		req, err = http.NewRequest(http.MethodGet, callURL, nil)
	case http.MethodPost:
		req, err = http.NewRequest(http.MethodPost, rawURL, strings.NewReader(params.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	default:
		return nil, &RequestError{Message: fmt.Sprintf("método HTTP não suportado: %s", method)}
	}
	if err != nil {
		return nil, &RequestError{Message: "erro ao criar a requisição", Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"method": req.Method,
		"url":    c.maskToken(req.URL.String()),
	}).Debug("meta: executando requisição")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Message: "erro ao fazer a requisição", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: "erro ao ler a resposta", Err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{StatusCode: resp.StatusCode, Message: c.maskToken(string(body))}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.errorFromBody(resp.StatusCode, body)
	}

	var page pageResponse
	if err := json.Unmarshal(body, &page); err != nil {
		logrus.WithError(err).Error("meta: erro ao decodificar JSON")
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: "resposta malformada", Err: err}
	}

	// Endpoints de objeto único (ex.: detalhe de criativo) respondem o
	// objeto direto, sem envelope "data"
	if page.Data == nil {
		var single metadomain.Record
		if err := json.Unmarshal(body, &single); err == nil && len(single) > 0 {
			page.Data = []metadomain.Record{single}
		}
	}

	logrus.WithFields(logrus.Fields{
		"url":     c.maskToken(req.URL.String()),
		"status":  resp.StatusCode,
		"records": len(page.Data),
	}).Debug("meta: resposta recebida")

	return &page, nil
}

// errorFromBody classifica um status não-2xx: erros de throttling do corpo
// viram RateLimitError, o restante vira RequestError terminal.
func (c *MetaClient) errorFromBody(statusCode int, body []byte) error {
	var apiErr metadomain.ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		if apiErr.IsRateLimit() {
			return &RateLimitError{StatusCode: statusCode, Message: apiErr.Error.Message}
		}
		return &RequestError{StatusCode: statusCode, Message: apiErr.Error.Message}
	}

	return &RequestError{StatusCode: statusCode, Message: c.maskToken(string(body))}
}

// waitMinInterval garante o espaçamento mínimo entre requisições consecutivas
func (c *MetaClient) waitMinInterval() {
	if !c.lastRequest.IsZero() {
		elapsed := c.now().Sub(c.lastRequest)
		if elapsed < c.minInterval {
			c.sleep(c.minInterval - elapsed)
		}
	}
	c.lastRequest = c.now()
}

// maskToken remove o token de acesso de qualquer texto destinado a log
func (c *MetaClient) maskToken(s string) string {
	if c.Cfg.Meta.AccessToken == "" {
		return s
	}
	return strings.ReplaceAll(s, c.Cfg.Meta.AccessToken, "***")
}
