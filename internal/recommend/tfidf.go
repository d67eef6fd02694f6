package recommend

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a al ante con de del desde el en entre es esta este la las le les lo los me mi mis o para pero por que se si sin su sus te tu un una uno y ya yo como cual cuando donde hay mas muy puedo qué debo tengo son ser sobre tiene`) {
		stopwords[fold(w)] = struct{}{}
	}
}

// fold lowercases and strips diacritics so "Pensión" and "pension" match.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

func tokenize(s string) []string {
	words := strings.FieldsFunc(fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := words[:0]
	for _, w := range words {
		if len([]rune(w)) < 2 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		out = append(out, w)
	}
	return out
}

type vector map[string]float64

// vectorize builds L2-normalized TF-IDF vectors with smoothed idf,
// ln((1+n)/(1+df)) + 1, over the given documents.
func vectorize(docs []string) []vector {
	tokens := make([][]string, len(docs))
	df := make(map[string]int)
	for i, d := range docs {
		tokens[i] = tokenize(d)
		seen := make(map[string]struct{})
		for _, t := range tokens[i] {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	n := float64(len(docs))
	out := make([]vector, len(docs))
	for i, toks := range tokens {
		v := make(vector)
		for _, t := range toks {
			v[t]++
		}
		var norm2 float64
		for t, tf := range v {
			w := tf * (math.Log((1+n)/(1+float64(df[t]))) + 1)
			v[t] = w
			norm2 += w * w
		}
		if norm2 > 0 {
			l := math.Sqrt(norm2)
			for t := range v {
				v[t] /= l
			}
		}
		out[i] = v
	}
	return out
}

func cosine(a, b vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var dot float64
	for t, w := range a {
		dot += w * b[t]
	}
	return dot
}
