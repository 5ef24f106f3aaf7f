package assessment_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/recruit/pkg/assessment"
	"github.com/artem13815/recruit/pkg/taxonomy"
)

func TestScore_EndToEndScenario(t *testing.T) {
	got := assessment.Score(taxonomy.Default(), assessment.Selections{
		Step1: []string{"Decidido", "Ativo"},
		Step2: []string{"Popular"},
		Step3: []string{},
	})
	assert.Equal(t, assessment.Scores{Executor: 66.67, Communicator: 33.33, Planner: 0, Analyst: 0}, got)
}

func TestScore_EmptySelection(t *testing.T) {
	assert.Equal(t, assessment.Scores{}, assessment.Score(taxonomy.Default(), assessment.Selections{}))
	// только немаппированные прилагательные
	got := assessment.Score(taxonomy.Default(), assessment.Selections{Step2: []string{"Sarcástico", "Vaidoso"}})
	assert.Equal(t, assessment.Scores{}, got)
}

func TestScore_DuplicatesCountAsGiven(t *testing.T) {
	got := assessment.Score(taxonomy.Default(), assessment.Selections{
		Step1: []string{"Calmo", "Calmo", "Leal"},
		Step3: []string{"Minucioso"},
	})
	assert.Equal(t, assessment.Scores{Planner: 75, Analyst: 25}, got)
}

func TestScore_SumWithinRoundingTolerance(t *testing.T) {
	table := taxonomy.Default()
	adjectives := table.Adjectives()
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		var sel assessment.Selections
		steps := []*[]string{&sel.Step1, &sel.Step2, &sel.Step3}
		for _, step := range steps {
			for n := rng.IntN(8); n > 0; n-- {
				*step = append(*step, adjectives[rng.IntN(len(adjectives))])
			}
		}
		s := assessment.Score(table, sel)
		for _, v := range []float64{s.Executor, s.Communicator, s.Planner, s.Analyst} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
		if s == (assessment.Scores{}) {
			continue
		}
		assert.LessOrEqual(t, math.Abs(s.Sum()-100), 0.06, "selection %+v", sel)
	}
}

func TestSelections_Dedup(t *testing.T) {
	sel := assessment.Selections{
		Step1: []string{"Calmo", "Leal", "Calmo"},
		Step2: nil,
		Step3: []string{"Leal"},
	}.Dedup()
	assert.Equal(t, []string{"Calmo", "Leal"}, sel.Step1)
	assert.Empty(t, sel.Step2)
	assert.Equal(t, []string{"Calmo", "Leal", "Leal"}, sel.All())
}
