package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/piwi3910/BoxCut/internal/model"
)

var (
	number = `(\d+(?:[.,]\d+)?)`
	unit   = `\s*(mm|cm|m)?`
	sep    = `\s*(?:x|×|\*|by)\s*`

	dimsPattern      = regexp.MustCompile(`(?i)` + number + unit + sep + number + unit + sep + number + unit + `\b`)
	kerfPattern      = regexp.MustCompile(`(?i)kerf\s*(?:of\s*)?` + number + `\s*(mm)?`)
	thicknessPattern = regexp.MustCompile(`(?i)` + number + `\s*(mm|cm)\b(?:\s*thick(?:ness)?)?`)
	stylePattern     = regexp.MustCompile(`(?i)\b([a-z]+)[ _-]lid\b`)
)

// materialAliases maps lower-case phrases to catalog keys. Longer phrases
// are tried first.
var materialAliases = []struct {
	phrase string
	key    string
}{
	{"birch plywood", "birch_plywood_18mm"},
	{"oak veneer", "oak_veneer_18mm"},
	{"pine board", "pine_board_18mm"},
	{"plexiglass", "acrylic_3mm"},
	{"plywood", "birch_plywood_18mm"},
	{"perspex", "acrylic_3mm"},
	{"acrylic", "acrylic_3mm"},
	{"birch", "birch_plywood_18mm"},
	{"pine", "pine_board_18mm"},
	{"oak", "oak_veneer_18mm"},
	{"mdf", "mdf_18mm"},
}

var thicknessSuffix = regexp.MustCompile(`_\d+(?:\.\d+)?mm$`)

// MaterialKey resolves a free-form material name to a key of catalog.
// Unrecognised names are returned in key form with ok=false.
func MaterialKey(name string, catalog model.Catalog) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	key := strings.NewReplacer(" ", "_", "-", "_").Replace(lower)
	if catalog.FindMaterial(key) != nil {
		return key, true
	}
	if match, ok := matchMaterial(lower, catalog); ok {
		return match, true
	}
	return key, false
}

// matchMaterial finds the material named somewhere in lower. A full catalog
// key wins, then the longest catalog family name ("birch plywood" for
// birch_plywood_18mm), then the built-in aliases.
func matchMaterial(lower string, catalog model.Catalog) (string, bool) {
	keys := catalog.MaterialKeys()
	for _, key := range keys {
		if strings.Contains(lower, key) {
			return key, true
		}
	}

	spaced := strings.NewReplacer("_", " ", "-", " ").Replace(lower)
	best := ""
	bestLen := 0
	for _, key := range keys {
		phrase := strings.ReplaceAll(thicknessSuffix.ReplaceAllString(key, ""), "_", " ")
		if len(phrase) > bestLen && strings.Contains(spaced, phrase) {
			best, bestLen = key, len(phrase)
		}
	}
	if best != "" {
		return best, true
	}

	for _, a := range materialAliases {
		if strings.Contains(lower, a.phrase) {
			return a.key, true
		}
	}
	return "", false
}

// withThickness swaps the thickness suffix of a catalog key when the
// catalog stocks that family in the requested thickness.
func withThickness(key string, thickness float64, catalog model.Catalog) string {
	i := strings.LastIndex(key, "_")
	if i < 0 {
		return key
	}
	candidate := fmt.Sprintf("%s_%smm", key[:i], strconv.FormatFloat(thickness, 'f', -1, 64))
	if catalog.FindMaterial(candidate) != nil {
		return candidate
	}
	return key
}

// toMM converts a value in the given unit to millimetres. An empty unit
// means millimetres.
func toMM(v float64, unit string) float64 {
	switch strings.ToLower(unit) {
	case "cm":
		return v * 10
	case "m":
		return v * 1000
	default:
		return v
	}
}

func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	return v
}

// ParsePrompt extracts box parameters from a short free-text description
// such as "box 40x30x15 cm, birch plywood, 12mm". Dimensions are read as
// width x depth x height; a unit after the last dimension applies to all
// three. Materials are matched against catalog. Fields the text does not
// mention are left unset.
func ParsePrompt(text string, catalog model.Catalog) (model.RawParams, error) {
	var raw model.RawParams
	rest := text
	found := false

	if m := kerfPattern.FindStringSubmatchIndex(rest); m != nil {
		raw.Kerf = model.Float(parseNumber(rest[m[2]:m[3]]))
		rest = rest[:m[0]] + " " + rest[m[1]:]
		found = true
	}

	if m := dimsPattern.FindStringSubmatch(rest); m != nil {
		defaultUnit := m[6]
		if defaultUnit == "" {
			defaultUnit = firstNonEmpty(m[4], m[2])
		}
		dims := make([]float64, 3)
		for i := 0; i < 3; i++ {
			u := m[2+2*i]
			if u == "" {
				u = defaultUnit
			}
			dims[i] = toMM(parseNumber(m[1+2*i]), u)
		}
		raw.Width = model.Float(dims[0])
		raw.Depth = model.Float(dims[1])
		raw.Height = model.Float(dims[2])
		rest = strings.Replace(rest, m[0], " ", 1)
		found = true
	}

	if m := thicknessPattern.FindStringSubmatch(rest); m != nil {
		raw.Thickness = model.Float(toMM(parseNumber(m[1]), m[2]))
		rest = strings.Replace(rest, m[0], " ", 1)
		found = true
	}

	if key, ok := matchMaterial(strings.ToLower(rest), catalog); ok {
		raw.Material = key
		if raw.Thickness != nil {
			raw.Material = withThickness(key, *raw.Thickness, catalog)
		}
		found = true
	}

	if m := stylePattern.FindStringSubmatch(rest); m != nil {
		raw.Style = strings.ToLower(m[1]) + "_lid"
		found = true
	}

	if !found {
		return model.RawParams{}, fmt.Errorf("no box parameters found in %q", text)
	}
	return raw, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
