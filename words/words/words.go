package words

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"

	"stemdex.dev/search/stemmer"
)

var availableCharacters = regexp.MustCompile("[A-Za-z0-9]+")

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Normalize разбивает фразу на слова и приводит их к индексной форме:
// нижний регистр, числа как есть, стоп-слова выбрасываются, остальное
// через стеммер. Дубликаты убираются с сохранением порядка.
func Normalize(phrase string) []string {
	if phrase == "" {
		return []string{}
	}

	raw := availableCharacters.FindAllString(phrase, -1)
	if len(raw) == 0 {
		return []string{}
	}

	out := make([]string, 0, len(raw))
	seen := make(map[string]bool)

	for _, word := range raw {

		// стоп-слова и стеммер рассчитаны на lowerCase
		w := strings.ToLower(word)

		if isDigits(w) {
			if !seen[w] {
				out = append(out, w)
				seen[w] = true
			}
			continue
		}

		// отсеивание of/a/the
		if english.IsStopWord(w) {
			continue
		}

		stem := stemmer.Stem(w)

		if !seen[stem] {
			out = append(out, stem)
			seen[stem] = true
		}
	}
	return out
}
