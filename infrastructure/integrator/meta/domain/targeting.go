package metadomain

import (
	"github.com/samber/lo"
)

// FlattenTargeting achata a especificação de segmentação de um conjunto de
// anúncios em campos escalares/listas prontos para exportação tabular.
func FlattenTargeting(targeting Record) map[string]any {
	audienceName := func(audience Record, _ int) string {
		return audience.Str("name")
	}

	return map[string]any{
		"countries":                 targeting.Map("geo_locations").StringList("countries"),
		"age_min":                   targeting.Float("age_min"),
		"age_max":                   targeting.Float("age_max"),
		"genders":                   targeting.StringList("genders"),
		"custom_audiences":          lo.Map(targeting.Records("custom_audiences"), audienceName),
		"excluded_custom_audiences": lo.Map(targeting.Records("excluded_custom_audiences"), audienceName),
		"publisher_platforms":       targeting.StringList("publisher_platforms"),
		"facebook_positions":        targeting.StringList("facebook_positions"),
		"instagram_positions":       targeting.StringList("instagram_positions"),
		"device_platforms":          targeting.StringList("device_platforms"),
	}
}
