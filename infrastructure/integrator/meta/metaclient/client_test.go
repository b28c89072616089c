package metaclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-exporter/internal/config"
)

func newTestClient(baseURL string) *MetaClient {
	cfg := &config.Config{}
	cfg.Meta.URL = baseURL
	cfg.Meta.AccessToken = "test-token"
	cfg.Meta.AccountID = "123456"

	return &MetaClient{
		Cfg:          cfg,
		httpClient:   &http.Client{Timeout: 5 * time.Second},
		minInterval:  0, // Sem espaçamento nos testes
		maxRetries:   3,
		initialDelay: 5 * time.Second,
		maxDelay:     300 * time.Second,
		sleep:        func(time.Duration) {},
		now:          time.Now,
	}
}

func TestRequest_Pagination(t *testing.T) {
	var server *httptest.Server

	// Três páginas encadeadas pelo cursor "next"; a última não tem cursor
	mux := http.NewServeMux()
	mux.HandleFunc("/page1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		fmt.Fprintf(w, `{"data":[{"id":"a"},{"id":"b"}],"paging":{"next":"%s/page2"}}`, server.URL)
	})
	mux.HandleFunc("/page2", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"data":[{"id":"c"}],"paging":{"next":"%s/page3"}}`, server.URL)
	})
	mux.HandleFunc("/page3", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"id":"d"},{"id":"e"}],"paging":{"cursors":{}}}`)
	})

	server = httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(server.URL)

	records, err := client.Request("page1", nil, http.MethodGet)
	require.NoError(t, err)

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.Str("id"))
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids)
}

func TestRequest_RateLimitRetry(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error":{"message":"User request limit reached","code":17}}`)
			return
		}
		fmt.Fprint(w, `{"data":[{"id":"ok"}],"paging":{}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	var delays []time.Duration
	client.sleep = func(d time.Duration) { delays = append(delays, d) }

	records, err := client.Request("insights", nil, http.MethodGet)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ok", records[0].Str("id"))

	// Duas falhas antes do sucesso: backoff inicial*1 e inicial*2
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, delays, 2)
	assert.Equal(t, 5*time.Second, delays[0])
	assert.Equal(t, 10*time.Second, delays[1])
}

func TestRequest_RateLimitExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limit","code":4}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Request("insights", nil, http.MethodGet)
	require.Error(t, err)

	var rateErr *RateLimitError
	assert.ErrorAs(t, err, &rateErr)
}

func TestRequest_TerminalErrorWithoutRetry(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Request("campaigns", nil, http.MethodGet)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load(), "erro terminal não deve disparar retry")
}

func TestRequest_SingleObjectResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"creative-1","name":"Criativo de teste"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	records, err := client.Request("creative-1", nil, http.MethodGet)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Criativo de teste", records[0].Str("name"))
}

func TestGetInsights_AttributionWindowParams(t *testing.T) {
	tests := []struct {
		window   string
		expected string
	}{
		{"default", `["7d_click","1d_view"]`},
		{"1d_click", `["1d_click"]`},
		{"28d_click", `["28d_click"]`},
		{"7d_view", `["7d_view"]`},
	}

	for _, tt := range tests {
		t.Run(tt.window, func(t *testing.T) {
			var gotQuery url.Values

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				fmt.Fprint(w, `{"data":[],"paging":{}}`)
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			_, err := client.GetInsights("120210000", []string{"spend", "impressions"}, tt.window, "campaign")
			require.NoError(t, err)

			assert.Equal(t, tt.expected, gotQuery.Get("action_attribution_windows"))
			assert.Equal(t, "campaign", gotQuery.Get("level"))
			assert.Equal(t, "spend,impressions", gotQuery.Get("fields"))
			assert.Contains(t, gotQuery.Get("time_range"), `"since"`)
		})
	}
}

func TestValidateAccess(t *testing.T) {
	t.Run("Acesso válido retorna true", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"name":"Conta de teste","id":"act_123456"}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		assert.True(t, client.ValidateAccess())
	})

	t.Run("Falha de autorização retorna false sem propagar erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":{"message":"Invalid OAuth access token","code":190}}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		assert.False(t, client.ValidateAccess())
	})
}

func TestMaskToken(t *testing.T) {
	client := newTestClient("https://graph.example.com/v18.0")

	masked := client.maskToken("https://graph.example.com/v18.0/act_123?access_token=test-token&fields=name")
	assert.NotContains(t, masked, "test-token")
	assert.Contains(t, masked, "access_token=***")
}

func TestWaitMinInterval(t *testing.T) {
	client := newTestClient("https://graph.example.com/v18.0")
	client.minInterval = time.Second

	current := time.Unix(1700000000, 0)
	client.now = func() time.Time { return current }

	var slept time.Duration
	client.sleep = func(d time.Duration) { slept += d }

	// Primeira chamada não espera
	client.waitMinInterval()
	assert.Equal(t, time.Duration(0), slept)

	// Segunda chamada 300ms depois precisa aguardar o restante
	current = current.Add(300 * time.Millisecond)
	client.waitMinInterval()
	assert.Equal(t, 700*time.Millisecond, slept)
}
