package stemmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceIf(t *testing.T) {
	// суффикс совпал, мера основы больше нуля — замена выполняется
	w, matched := replaceIf([]byte("relational"), "ational", "ate")
	require.True(t, matched)
	assert.Equal(t, "relate", string(w))

	// суффикс совпал, но мера основы нулевая: правило всё равно
	// считается сработавшим, слово не меняется
	w, matched = replaceIf([]byte("rational"), "ational", "ate")
	require.True(t, matched)
	assert.Equal(t, "rational", string(w))

	// суффикс не совпал
	w, matched = replaceIf([]byte("motor"), "ational", "ate")
	require.False(t, matched)
	assert.Equal(t, "motor", string(w))
}

func TestTrimIf(t *testing.T) {
	w, matched := trimIf([]byte("adjustable"), "able")
	require.True(t, matched)
	assert.Equal(t, "adjust", string(w))

	// мера основы недостаточна — совпадение есть, среза нет
	w, matched = trimIf([]byte("conflate"), "ate")
	require.True(t, matched)
	assert.Equal(t, "conflate", string(w))

	w, matched = trimIf([]byte("motor"), "able")
	require.False(t, matched)
	assert.Equal(t, "motor", string(w))
}

// Совпадение без замены обрывает раунд: для "rational" первое правило
// (ational -> ate) совпадает с нулевой мерой основы, и tional -> tion
// уже не пробуется. Слово доходит нетронутым до третьего раунда.
func TestRoundShortCircuit(t *testing.T) {
	got := rewriteSuffixes([]byte("rational"))
	assert.Equal(t, "ration", string(got))
}

func TestRewriteSuffixes_IonNeedsSOrT(t *testing.T) {
	// -ion срезается после s/t
	assert.Equal(t, "adopt", string(rewriteSuffixes([]byte("adoption"))))
	assert.Equal(t, "decis", string(rewriteSuffixes([]byte("decision"))))
	// без s/t перед -ion правило пропускается, слово не трогаем
	assert.Equal(t, "dominion", string(rewriteSuffixes([]byte("dominion"))))
}

// Раунды независимы: результат одного раунда тут же проверяется следующим.
func TestRewriteSuffixes_RoundsChain(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"generalization", "gener"}, // ization -> ize, alize -> al, al срезан
		{"predication", "predic"},   // ation -> ate, icate -> ic
		{"radicalli", "radic"},      // alli -> al, ical -> ic
		{"conformabli", "conform"},  // bli -> ble, able срезан
		{"digitizer", "digit"},      // izer -> ize, ize срезан
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, string(rewriteSuffixes([]byte(tc.in))), "input %q", tc.in)
	}
}
