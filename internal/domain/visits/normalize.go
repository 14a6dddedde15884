package visits

import (
	"sort"
	"strings"
)

// normalizeTags convierte la lista en un set: sin vacíos, sin duplicados, ordenado.
// Nunca devuelve nil (la UI espera array).
func normalizeTags(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		t := strings.TrimSpace(raw)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func clampGrade(g int) int {
	if g < 0 {
		return 0
	}
	if g > MaxLamenessGrade {
		return MaxLamenessGrade
	}
	return g
}

func normalizeLimb(l Limb) Limb {
	return Limb{
		Tags:          normalizeTags(l.Tags),
		LamenessGrade: clampGrade(l.LamenessGrade),
		Notes:         strings.TrimSpace(l.Notes),
	}
}

func normalizeLimbs(l Limbs) Limbs {
	return Limbs{
		LF: normalizeLimb(l.LF),
		RF: normalizeLimb(l.RF),
		LH: normalizeLimb(l.LH),
		RH: normalizeLimb(l.RH),
	}
}

// MaxLameness devuelve el grado más alto entre los cuatro miembros.
func (l Limbs) MaxLameness() int {
	m := l.LF.LamenessGrade
	for _, g := range []int{l.RF.LamenessGrade, l.LH.LamenessGrade, l.RH.LamenessGrade} {
		if g > m {
			m = g
		}
	}
	return m
}
