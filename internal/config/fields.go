package config

// Tabelas estáticas consumidas pelos fetchers. Espelham a superfície de
// consulta da Graph API e não variam por ambiente.

// CommonMetrics são as métricas solicitadas em toda consulta de insights
var CommonMetrics = []string{
	"spend",
	"impressions",
	"reach",
	"clicks",
	"unique_clicks",
	"inline_link_clicks",
	"unique_inline_link_clicks",
	"cpc",
	"cpm",
	"ctr",
}

// ConversionMetrics cobre ações de conversão (compras, carrinho etc.)
var ConversionMetrics = []string{
	"actions",
	"action_values",
	"cost_per_action_type",
	"cost_per_unique_action_type",
	"unique_actions",
	"website_purchases",
	"website_adds_to_cart",
	"website_checkouts_initiated",
}

// VideoMetrics só fazem sentido no nível de anúncio
var VideoMetrics = []string{
	"video_plays",
	"video_plays_at_25_percent",
	"video_plays_at_50_percent",
	"video_plays_at_75_percent",
	"video_plays_at_95_percent",
	"video_plays_at_100_percent",
	"video_average_play_time",
	"video_continuous_2_sec_watched_actions",
	"video_30_sec_watched_actions",
}

var EngagementMetrics = []string{
	"post_engagement",
	"post_reactions",
	"post_comments",
	"post_shares",
	"page_engagement",
}

// CampaignFields são os atributos buscados na listagem de campanhas
var CampaignFields = []string{
	"id",
	"name",
	"objective",
	"buying_type",
	"status",
	"start_time",
	"stop_time",
	"daily_budget",
	"lifetime_budget",
	"bid_strategy",
	"special_ad_categories",
}

var AdSetFields = []string{
	"id",
	"name",
	"campaign_id",
	"status",
	"targeting",
	"optimization_goal",
	"billing_event",
	"bid_amount",
	"budget_remaining",
	"daily_budget",
	"lifetime_budget",
	"attribution_spec",
	"start_time",
	"end_time",
}

var AdFields = []string{
	"id",
	"name",
	"adset_id",
	"campaign_id",
	"status",
	"creative",
	"tracking_specs",
	"conversion_specs",
	"created_time",
	"updated_time",
}

var CreativeFields = []string{
	"id",
	"name",
	"title",
	"body",
	"object_story_spec",
	"image_url",
	"video_id",
	"call_to_action_type",
	"link_url",
	"thumbnail_url",
	"image_hash",
	"platform_customizations",
}

// DateRanges mapeia o identificador de período para a quantidade de dias.
// Zero significa "lifetime" (sem filtro de data).
var DateRanges = map[string]int{
	"1_day":    1,
	"7_days":   7,
	"28_days":  28,
	"90_days":  90,
	"lifetime": 0,
}

// AttributionWindows mapeia o nome da janela de atribuição para o valor do
// parâmetro action_attribution_windows enviado à API. A janela "default"
// combina 7d_click com 1d_view, como no Gerenciador de Anúncios.
var AttributionWindows = map[string][]string{
	"1d_click":  {"1d_click"},
	"7d_click":  {"7d_click"},
	"28d_click": {"28d_click"},
	"1d_view":   {"1d_view"},
	"7d_view":   {"7d_view"},
	"default":   {"7d_click", "1d_view"},
}

// Breakdowns disponíveis para consultas segmentadas. Configurados mas não
// usados pelos fluxos padrão de exportação.
var Breakdowns = map[string][]string{
	"time":         {"day", "week", "month"},
	"demographics": {"age", "gender", "country"},
	"placement":    {"publisher_platform", "platform_position"},
}
