// Package embedding turns text into vectors and ranks them by cosine similarity.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
)

const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

var ErrNotConfigured = errors.New("API key de embeddings no configurada")

// Engine generates one vector per input text.
type Engine interface {
	EmbedBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error)
	Name() string
}

// CosineSimilarity returns a value in [-1, 1]; zero vectors score 0.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("los vectores deben tener la misma longitud: %d != %d", len(a), len(b))
	}

	var dot, aMag, bMag float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		aMag += float64(a[i]) * float64(a[i])
		bMag += float64(b[i]) * float64(b[i])
	}
	if aMag == 0 || bMag == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(aMag) * math.Sqrt(bMag)), nil
}

type SimilarityResult struct {
	Index      int
	Similarity float64
}

// FindTopK returns the k corpus entries most similar to query, best first.
// Vectors with a different dimension are skipped.
func FindTopK(query []float32, corpus [][]float32, k int) []SimilarityResult {
	if k <= 0 {
		k = 3
	}

	results := make([]SimilarityResult, 0, len(corpus))
	for i, vec := range corpus {
		sim, err := CosineSimilarity(query, vec)
		if err != nil {
			continue
		}
		results = append(results, SimilarityResult{Index: i, Similarity: sim})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}
