package stemmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStem_ShortWordsUnchanged(t *testing.T) {
	for _, w := range []string{"", "a", "as", "is", "be", "by"} {
		assert.Equal(t, w, Stem(w), "короткие слова не стеммятся")
	}
}

func TestStem_Plurals(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"caresses", "caress"},
		{"ponies", "poni"},
		{"ties", "ti"},
		{"caress", "caress"}, // -ss не трогаем
		{"cats", "cat"},
		{"runs", "run"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Stem(tc.in), "Stem(%q)", tc.in)
	}
}

func TestStem_Tenses(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"feed", "feed"}, // мера основы нулевая, -eed остаётся
		{"agreed", "agre"},
		{"plastered", "plaster"},
		{"bled", "bled"}, // в основе нет гласной
		{"motoring", "motor"},
		{"sing", "sing"},
		{"conflated", "conflat"}, // at -> ate, потом финальная 'e' срезана
		{"troubled", "troubl"},
		{"sized", "size"}, // iz -> ize, CVC сохраняет 'e'
		{"hopping", "hop"}, // двойная согласная схлопывается
		{"tanned", "tan"},
		{"falling", "fall"}, // 'l' не схлопывается
		{"hissing", "hiss"}, // 's' не схлопывается
		{"fizzed", "fizz"},  // 'z' не схлопывается
		{"failing", "fail"},
		{"filing", "file"}, // CVC дописывает 'e'
		{"arguing", "argu"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Stem(tc.in), "Stem(%q)", tc.in)
	}
}

func TestStem_TrailingY(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"happy", "happi"},
		{"sky", "sky"}, // в основе нет гласной
		{"deny", "deni"},
		{"denying", "deni"},
		{"flying", "fly"},
		{"syzygy", "syzygi"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Stem(tc.in), "Stem(%q)", tc.in)
	}
}

func TestStem_SuffixRounds(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"relational", "relat"},
		{"conditional", "condit"},
		{"rational", "ration"},
		{"valency", "valenc"},
		{"digitizer", "digit"},
		{"conformabli", "conform"},
		{"radicalli", "radic"},
		{"differentli", "differ"},
		{"vileli", "vile"},
		{"analogousli", "analog"},
		{"vietnamization", "vietnam"},
		{"predication", "predic"},
		{"operator", "oper"},
		{"feudalism", "feudal"},
		{"decisiveness", "decis"},
		{"hopefulness", "hope"},
		{"callousness", "callous"},
		{"formaliti", "formal"},
		{"sensitiviti", "sensit"},
		{"sensibiliti", "sensibl"},
		{"triplicate", "triplic"},
		{"formative", "form"},
		{"formalize", "formal"},
		{"electriciti", "electr"},
		{"electrical", "electr"},
		{"hopeful", "hope"},
		{"goodness", "good"},
		{"generalization", "gener"},
		{"generalizations", "gener"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Stem(tc.in), "Stem(%q)", tc.in)
	}
}

func TestStem_FinalTrim(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"probate", "probat"},
		{"rate", "rate"},   // CVC сохраняет 'e'
		{"cease", "ceas"},
		{"controll", "control"},
		{"roll", "roll"}, // мера мала, 'll' остаётся
		{"oscillate", "oscil"},
		{"controlling", "control"},
		{"agreement", "agreement"}, // -ement с малой мерой основы не срезается
		{"argument", "argument"},
		{"replacement", "replac"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Stem(tc.in), "Stem(%q)", tc.in)
	}
}

// Уже минимальные основы стеммер не трогает.
func TestStem_FixedPoints(t *testing.T) {
	for _, w := range []string{"run", "happi", "motor", "hop", "troubl"} {
		assert.Equal(t, w, Stem(w), "Stem(%q)", w)
	}
}

func TestStem_Deterministic(t *testing.T) {
	for _, w := range []string{"generalization", "controlling", "syzygy"} {
		assert.Equal(t, Stem(w), Stem(w))
	}
}

// Перебор коротких комбинаций букв: стеммер не должен паниковать и
// не должен удлинять слово.
func TestStem_NoPanicAndNoGrowth(t *testing.T) {
	alphabet := "abcdefghijklmnopqrstuvwxyz"
	for _, a := range alphabet {
		for _, b := range alphabet {
			for _, c := range alphabet {
				for _, d := range alphabet {
					w := string([]rune{a, b, c, d})
					got := Stem(w)
					if len(got) > len(w) {
						t.Fatalf("Stem(%q) = %q: результат длиннее входа", w, got)
					}
				}
			}
		}
	}
}
