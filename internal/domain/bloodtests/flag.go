package bloodtests

import (
	"math"
	"strconv"
	"strings"
)

// Classification del valor de laboratorio contra su rango de referencia.
type Classification string

const (
	Low          Classification = "Low"
	Normal       Classification = "Normal"
	High         Classification = "High"
	Unclassified Classification = "Unclassified"
)

// Flag clasifica un valor crudo (tal como viene del formulario).
// Unclassified si raw está vacío, si key no está en la tabla o si raw no es un número finito.
// Los límites son inclusivos: min y max son Normal.
func Flag(key, raw string) Classification {
	v, ok := parseValue(raw)
	if !ok {
		return Unclassified
	}
	return FlagValue(key, v)
}

// FlagValue clasifica un valor ya parseado.
func FlagValue(key string, v float64) Classification {
	r, ok := referenceByKey[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return Unclassified
	}
	switch {
	case v < r.Min:
		return Low
	case v > r.Max:
		return High
	default:
		return Normal
	}
}

func parseValue(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
