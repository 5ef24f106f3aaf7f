package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruit/pkg/taxonomy"
)

func TestDefault_Shape(t *testing.T) {
	tbl := taxonomy.Default()
	assert.Len(t, tbl.Adjectives(), 86)
	assert.Equal(t, 36, tbl.MappedCount())
	assert.Same(t, tbl, taxonomy.Default())
}

func TestDefault_Mapping(t *testing.T) {
	tbl := taxonomy.Default()
	cases := map[string]taxonomy.Dimension{
		"Decidido":          taxonomy.Executor,
		"Ativo":             taxonomy.Executor,
		"Popular":           taxonomy.Comunicador,
		"Bom Companheiro":   taxonomy.Planejador,
		"Auto-Disciplinado": taxonomy.Analista,
	}
	for adj, want := range cases {
		got, ok := tbl.DimensionOf(adj)
		require.True(t, ok, adj)
		assert.Equal(t, want, got, adj)
	}

	_, ok := tbl.DimensionOf("Sarcástico")
	assert.False(t, ok, "listed but unmapped adjective must carry no dimension")
	_, ok = tbl.DimensionOf("decidido")
	assert.False(t, ok, "lookup is exact")
}

func TestAdjectives_ReturnsCopy(t *testing.T) {
	tbl := taxonomy.Default()
	list := tbl.Adjectives()
	list[0] = "mutated"
	assert.Equal(t, "Alegre", tbl.Adjectives()[0])
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty list":     "adjectives: []",
		"unknown code":   "dimensions: [{code: X, adjectives: [A]}]\nadjectives: [A]",
		"not listed":     "dimensions: [{code: E, adjectives: [B]}]\nadjectives: [A]",
		"double mapping": "dimensions: [{code: E, adjectives: [A]}, {code: C, adjectives: [A]}]\nadjectives: [A]",
		"duplicate":      "adjectives: [A, A]",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := taxonomy.Load([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseName(t *testing.T) {
	d, ok := taxonomy.ParseName(" executor ")
	require.True(t, ok)
	assert.Equal(t, taxonomy.Executor, d)
	assert.Equal(t, "Analista", taxonomy.Analista.Name())

	_, ok = taxonomy.ParseName("Dominante")
	assert.False(t, ok)
}
