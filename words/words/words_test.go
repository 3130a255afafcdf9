package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name   string
		phrase string
		want   []string
	}{
		{"empty phrase", "", []string{}},
		{"only separators", "... !!! ---", []string{}},
		{"lowercase and stem", "Running runner RUNS", []string{"run", "runner"}},
		{"stop words dropped", "the cat and a dog", []string{"cat", "dog"}},
		{"digits kept as is", "error 404 happened twice, 404 times", []string{"error", "404", "happen", "twice", "time"}},
		{"duplicates after stemming", "sizes sized sizing", []string{"size"}},
		{"punctuation split", "well-known, plastered; motoring!", []string{"well", "known", "plaster", "motor"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.phrase))
		})
	}
}
