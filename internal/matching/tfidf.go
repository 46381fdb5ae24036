package matching

import (
	"math"
	"strings"
)

// Tokenize splits text into lowercase alphanumeric tokens. Tokens shorter
// than two characters are dropped; no stemming is applied.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// BuildVectors computes unit-length TF-IDF vectors for every document in the
// corpus. IDF statistics are computed jointly over the whole corpus, with
// smoothing (ln((1+N)/(1+df))+1) so a term present in every document still
// carries positive weight and two identical documents always reach cosine 1.
func BuildVectors(docs []string) []map[string]float64 {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokenized[i] = Tokenize(doc)
		seen := make(map[string]struct{}, len(tokenized[i]))
		for _, t := range tokenized[i] {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				df[t]++
			}
		}
	}

	n := float64(len(docs))
	vectors := make([]map[string]float64, len(docs))
	for i, tokens := range tokenized {
		tf := make(map[string]float64, len(tokens))
		for _, t := range tokens {
			tf[t]++
		}

		vec := make(map[string]float64, len(tf))
		var norm float64
		for t, count := range tf {
			w := count * (math.Log((1+n)/(1+float64(df[t]))) + 1)
			vec[t] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for t := range vec {
				vec[t] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

// Cosine returns the dot product of two unit vectors, clamped to [0,1] to
// absorb floating-point noise. A vector with no recognized tokens is empty
// and yields 0 rather than NaN.
func Cosine(a, b map[string]float64) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var dot float64
	for t, wa := range a {
		if wb, ok := b[t]; ok {
			dot += wa * wb
		}
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}
