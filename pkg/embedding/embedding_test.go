package embedding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitText(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		assert.Nil(t, SplitText("   \n\t ", 10, 2))
	})

	t.Run("no overlap", func(t *testing.T) {
		assert.Equal(t, []string{"a b", "c d", "e"}, SplitText("a b c d e", 3, 0))
	})

	t.Run("overlap repeats trailing words", func(t *testing.T) {
		assert.Equal(t, []string{"a b", "b c", "c d", "d e"}, SplitText("a b c d e", 3, 2))
	})

	t.Run("word longer than size stays whole", func(t *testing.T) {
		assert.Equal(t, []string{"mantenimiento", "preventivo"}, SplitText("mantenimiento preventivo", 5, 0))
	})

	t.Run("invalid overlap is ignored", func(t *testing.T) {
		assert.Equal(t, SplitText("a b c d e", 3, 0), SplitText("a b c d e", 3, 3))
	})

	t.Run("chunks respect size", func(t *testing.T) {
		text := strings.Repeat("bomba centrífuga de agua ", 200)
		chunks := SplitText(text, 100, 20)
		require.NotEmpty(t, chunks)
		for _, c := range chunks {
			assert.LessOrEqual(t, len([]rune(c)), 100)
		}
	})
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CosineSimilarity(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	_, err := CosineSimilarity([]float32{1}, []float32{1, 2})
	assert.Error(t, err)
}

func TestFindTopK(t *testing.T) {
	corpus := [][]float32{{0, 1}, {1, 0}, {1, 1}, {1}}

	results := FindTopK([]float32{1, 0}, corpus, 2)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Index)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-9)
	assert.Equal(t, 2, results[1].Index)

	all := FindTopK([]float32{1, 0}, corpus, 0)
	assert.Len(t, all, 3, "mismatched dimensions are skipped and k defaults to 3")
}
