package assessment

import (
	"math"

	"github.com/artem13815/recruit/pkg/taxonomy"
)

// Score counts every selected adjective by its dimension and returns each
// dimension's share of the mapped total. Unmapped adjectives count for
// nothing; with no mapped selection all four shares are 0.
func Score(t *taxonomy.Table, sel Selections) Scores {
	counts := make(map[taxonomy.Dimension]int, len(taxonomy.Dimensions))
	total := 0
	for _, adj := range sel.All() {
		if d, ok := t.DimensionOf(adj); ok {
			counts[d]++
			total++
		}
	}
	if total == 0 {
		return Scores{}
	}
	pct := func(d taxonomy.Dimension) float64 {
		return round2(float64(counts[d]) / float64(total) * 100)
	}
	return Scores{
		Executor:     pct(taxonomy.Executor),
		Communicator: pct(taxonomy.Comunicador),
		Planner:      pct(taxonomy.Planejador),
		Analyst:      pct(taxonomy.Analista),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// Dedup drops repeated adjectives within each step, keeping first occurrence.
func (s Selections) Dedup() Selections {
	return Selections{Step1: dedup(s.Step1), Step2: dedup(s.Step2), Step3: dedup(s.Step3)}
}

func dedup(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
