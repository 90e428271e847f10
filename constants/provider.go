package constants

import (
	"strings"
	"unicode"
)

// Provider is the canonical identifier that selects a reconciliation rule.
type Provider string

const (
	Auburn                Provider = "auburn"
	Olympia               Provider = "olympia"
	Kent                  Provider = "kent"
	Renton                Provider = "renton"
	Tukwila               Provider = "tukwila"
	Bellevue              Provider = "bellevue"
	Redmond               Provider = "redmond"
	Kirkland              Provider = "kirkland"
	PSE                   Provider = "pse"
	PSEElectric           Provider = "pse_electric"
	PSEGas                Provider = "pse_gas"
	Bothell               Provider = "bothell"
	Everett               Provider = "everett"
	Lynnwood              Provider = "lynnwood"
	Lacey                 Provider = "lacey"
	ValleyView            Provider = "valley_view"
	Recology              Provider = "recology"
	Lakehaven             Provider = "lakehaven"
	SoosCreek             Provider = "soos_creek"
	CedarRiver            Provider = "cedar_river"
	SeattlePublicUtil     Provider = "spu"
	WasteManagement       Provider = "waste_management"
	RepublicServices      Provider = "republic_services"
	WasteConnections      Provider = "waste_connections"
	SeattleCityLight      Provider = "seattle_city_light"
	TacomaPublicUtilities Provider = "tacoma_public_utilities"
	SammamishPlateau      Provider = "sammamish_plateau"
	Northshore            Provider = "northshore"
	Woodinville           Provider = "woodinville"
	MercerIsland          Provider = "mercer_island"
	Issaquah              Provider = "issaquah"
)

var allProviders = []Provider{
	Auburn, Olympia, Kent, Renton, Tukwila,
	Bellevue, Redmond, Kirkland, PSE, PSEElectric, PSEGas,
	Bothell, Everett, Lynnwood,
	Lacey, ValleyView, Recology, Lakehaven, SoosCreek, CedarRiver,
	SeattlePublicUtil,
	WasteManagement, RepublicServices, WasteConnections,
	SeattleCityLight, TacomaPublicUtilities, SammamishPlateau, Northshore,
	Woodinville, MercerIsland, Issaquah,
}

// providerSynonyms maps normalized free-form names (see normalizeName) to providers.
var providerSynonyms = map[string]Provider{
	"cityofauburn":                 Auburn,
	"cityofolympia":                Olympia,
	"cityofkent":                   Kent,
	"cityofrenton":                 Renton,
	"cityoftukwila":                Tukwila,
	"cityofbellevue":               Bellevue,
	"bellevueutilities":            Bellevue,
	"cityofredmond":                Redmond,
	"cityofkirkland":               Kirkland,
	"pugetsoundenergy":             PSE,
	"psegaselectric":               PSE,
	"pugetsoundenergyelectric":     PSEElectric,
	"pseelectric":                  PSEElectric,
	"pugetsoundenergygas":          PSEGas,
	"psegas":                       PSEGas,
	"cityofbothell":                Bothell,
	"cityofeverett":                Everett,
	"cityoflynnwood":               Lynnwood,
	"cityoflacey":                  Lacey,
	"valleyviewsewerdistrict":      ValleyView,
	"valleyviewsewer":              ValleyView,
	"recologycleanscapes":          Recology,
	"lakehavenwatersewerdistrict":  Lakehaven,
	"lakehavenutilitydistrict":     Lakehaven,
	"sooscreekwatersewerdistrict":  SoosCreek,
	"cedarriverwatersewerdistrict": CedarRiver,
	"seattlepublicutilities":       SeattlePublicUtil,
	"wastemanagement":              WasteManagement,
	"wm":                           WasteManagement,
	"republicservices":             RepublicServices,
	"wasteconnections":             WasteConnections,
	"seattlecitylight":             SeattleCityLight,
	"scl":                          SeattleCityLight,
	"tacomapublicutilities":        TacomaPublicUtilities,
	"tpu":                          TacomaPublicUtilities,
	"sammamishplateauwatersewer":   SammamishPlateau,
	"sammamishplateauwater":        SammamishPlateau,
	"northshoreutilitydistrict":    Northshore,
	"woodinvillewaterdistrict":     Woodinville,
	"cityofmercerisland":           MercerIsland,
	"cityofissaquah":               Issaquah,
}

// Providers returns every canonical provider in registry order.
func Providers() []Provider {
	out := make([]Provider, len(allProviders))
	copy(out, allProviders)
	return out
}

// ProvidersAsStrings is used for prompt enums.
func ProvidersAsStrings() []string {
	result := make([]string, len(allProviders))
	for i, p := range allProviders {
		result[i] = string(p)
	}
	return result
}

// CanonicalizeProvider maps a detected company name to a Provider.
// Matching ignores case, spaces and punctuation.
func CanonicalizeProvider(input string) (Provider, bool) {
	normalized := normalizeName(input)
	if normalized == "" {
		return "", false
	}
	if p, ok := providerSynonyms[normalized]; ok {
		return p, true
	}
	for _, p := range allProviders {
		if normalized == normalizeName(string(p)) {
			return p, true
		}
	}
	return "", false
}

func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
