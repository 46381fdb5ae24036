package matching_test

import (
	"testing"

	"go-jobmatch-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Run("Should lowercase and split on non-alphanumeric boundaries", func(t *testing.T) {
		tokens := matching.Tokenize("Go, Docker/Kubernetes (CI-CD)!")
		assert.Equal(t, []string{"go", "docker", "kubernetes", "ci", "cd"}, tokens)
	})

	t.Run("Should drop tokens shorter than two characters", func(t *testing.T) {
		tokens := matching.Tokenize("a b c go")
		assert.Equal(t, []string{"go"}, tokens)
	})

	t.Run("Should return no tokens for symbol-only text", func(t *testing.T) {
		assert.Empty(t, matching.Tokenize("!!! ... ---"))
	})
}

func TestBuildVectorsAndCosine(t *testing.T) {
	t.Run("Identical documents score 1.0", func(t *testing.T) {
		text := "senior python engineer building data pipelines"
		vecs := matching.BuildVectors([]string{text, text, "unrelated gardening manual"})
		assert.InDelta(t, 1.0, matching.Cosine(vecs[0], vecs[1]), 1e-6)
	})

	t.Run("Documents sharing no tokens score 0.0", func(t *testing.T) {
		vecs := matching.BuildVectors([]string{"python machine learning", "carpentry woodwork"})
		assert.Equal(t, 0.0, matching.Cosine(vecs[0], vecs[1]))
	})

	t.Run("Empty document scores 0.0 instead of NaN", func(t *testing.T) {
		vecs := matching.BuildVectors([]string{"", "python backend"})
		sim := matching.Cosine(vecs[0], vecs[1])
		assert.Equal(t, 0.0, sim)
	})

	t.Run("Similarity stays within [0,1]", func(t *testing.T) {
		docs := []string{
			"python backend engineer",
			"python frontend developer react",
			"python python python backend backend",
		}
		vecs := matching.BuildVectors(docs)
		for i := range vecs {
			for j := range vecs {
				sim := matching.Cosine(vecs[i], vecs[j])
				assert.GreaterOrEqual(t, sim, 0.0)
				assert.LessOrEqual(t, sim, 1.0)
			}
		}
	})

	t.Run("Terms shared by every document still carry weight", func(t *testing.T) {
		// Smoothed IDF keeps ubiquitous terms above zero, so two documents
		// made entirely of corpus-wide terms remain comparable.
		docs := []string{"python developer", "python developer", "python developer"}
		vecs := matching.BuildVectors(docs)
		assert.InDelta(t, 1.0, matching.Cosine(vecs[0], vecs[2]), 1e-6)
	})
}
