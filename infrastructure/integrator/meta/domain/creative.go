package metadomain

import (
	"fmt"

	"github.com/samber/lo"
)

// FlattenCreative achata os detalhes de um criativo em campos tabulares.
// Blocos de personalização por plataforma viram um campo serializado por
// chave de plataforma ("instagram_customization", ...).
func FlattenCreative(creative Record) map[string]any {
	flat := map[string]any{
		"creative_id":         creative.Str("id"),
		"creative_name":       creative.Str("name"),
		"body":                creative.Str("body"),
		"title":               creative.Str("title"),
		"call_to_action_type": creative.Str("call_to_action_type"),
		"link_url":            creative.Str("link_url"),
		"image_url":           creative.Str("image_url"),
		"video_id":            creative.Str("video_id"),
	}

	customizations := creative.Map("platform_customizations")
	for _, platform := range lo.Keys(customizations) {
		flat[platform+"_customization"] = fmt.Sprintf("%v", customizations[platform])
	}

	return flat
}
