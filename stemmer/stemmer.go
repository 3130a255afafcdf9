// Package stemmer reduces English words to their morphological stems with
// the classic suffix-stripping algorithm: words are rewritten by an ordered
// sequence of rules gated by the consonant/vowel structure of the stem.
//
// Input is expected to be lowercase ASCII letters; behavior on anything
// else is undefined, callers normalize first (see the words service).
// Stem is pure and safe for concurrent use.
package stemmer

import "bytes"

// Stem возвращает основу слова. Слова короче трёх символов возвращаются
// как есть — стеммить там нечего.
func Stem(word string) string {
	if len(word) <= 2 {
		return word
	}

	w := []byte(word)
	w = stripPlural(w)
	w = stripTense(w)
	w = normalizeY(w)
	w = rewriteSuffixes(w)
	w = trimFinal(w)
	return string(w)
}

// stripPlural убирает окончания множественного числа: -sses и -ies
// теряют два символа, одиночная -s срезается, -ss не трогаем.
func stripPlural(w []byte) []byte {
	n := len(w)
	switch {
	case bytes.HasSuffix(w, []byte("sses")), bytes.HasSuffix(w, []byte("ies")):
		return w[:n-2]
	case w[n-1] == 's' && w[n-2] != 's':
		return w[:n-1]
	}
	return w
}

// stripTense убирает -eed/-ed/-ing и подчищает результат. Проверки
// двойной согласной и CVC идут по слову уже без суффикса.
func stripTense(w []byte) []byte {
	if bytes.HasSuffix(w, []byte("eed")) {
		if measure(w[:len(w)-3]) > 0 {
			w = w[:len(w)-1]
		}
		return w
	}

	stripped := false
	switch {
	case bytes.HasSuffix(w, []byte("ed")) && hasVowel(w[:len(w)-2]):
		w = w[:len(w)-2]
		stripped = true
	case bytes.HasSuffix(w, []byte("ing")) && hasVowel(w[:len(w)-3]):
		w = w[:len(w)-3]
		stripped = true
	}
	if !stripped {
		return w
	}

	switch {
	case bytes.HasSuffix(w, []byte("at")),
		bytes.HasSuffix(w, []byte("bl")),
		bytes.HasSuffix(w, []byte("iz")):
		w = append(w, 'e') // conflat -> conflate
	case endsDoubleConsonant(w) && w[len(w)-1] != 'l' && w[len(w)-1] != 's' && w[len(w)-1] != 'z':
		w = w[:len(w)-1] // hopp -> hop
	case measure(w) == 1 && endsCVC(w, len(w)-1):
		w = append(w, 'e') // hop+ing уже не сюда, а вот fil -> file
	}
	return w
}

// normalizeY меняет завершающую 'y' на 'i', если в основе есть гласная.
func normalizeY(w []byte) []byte {
	if w[len(w)-1] == 'y' && hasVowel(w[:len(w)-1]) {
		w[len(w)-1] = 'i'
	}
	return w
}

// rewriteSuffixes прогоняет три независимых раунда по таблицам правил.
func rewriteSuffixes(w []byte) []byte {
	for _, r := range round1 {
		var matched bool
		if w, matched = replaceIf(w, r.suffix, r.repl); matched {
			break
		}
	}

	for _, r := range round2 {
		var matched bool
		if w, matched = replaceIf(w, r.suffix, r.repl); matched {
			break
		}
	}

	for _, s := range round3 {
		// -ion срезается только после s или t
		if s == "ion" && !(len(w) >= 4 && (w[len(w)-4] == 's' || w[len(w)-4] == 't')) {
			continue
		}
		var matched bool
		if w, matched = trimIf(w, s); matched {
			break
		}
	}
	return w
}

// trimFinal: финальная зачистка — лишняя 'e' и вторая 'l'.
func trimFinal(w []byte) []byte {
	if w[len(w)-1] == 'e' {
		stem := w[:len(w)-1]
		m := measure(stem)
		// одиночную 'e' оставляем, если без неё получится CVC-хвост
		if m > 1 || (m == 1 && !endsCVC(w, len(w)-2)) {
			w = stem
		}
	}
	if w[len(w)-1] == 'l' && endsDoubleConsonant(w) && measure(w[:len(w)-1]) > 1 {
		w = w[:len(w)-1]
	}
	return w
}
