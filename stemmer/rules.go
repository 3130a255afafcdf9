package stemmer

import "bytes"

type rule struct {
	suffix string
	repl   string
}

// Таблицы раундов переписывания суффиксов. Порядок важен: внутри раунда
// срабатывает первое совпадение суффикса, дальше правила не проверяются —
// даже если условие меры не прошло и замена не случилась.
var round1 = []rule{
	{"ational", "ate"},
	{"tional", "tion"},
	{"enci", "ence"},
	{"anci", "ance"},
	{"izer", "ize"},
	{"bli", "ble"},
	{"alli", "al"},
	{"entli", "ent"},
	{"eli", "e"},
	{"ousli", "ous"},
	{"ization", "ize"},
	{"ation", "ate"},
	{"ator", "ate"},
	{"alism", "al"},
	{"iveness", "ive"},
	{"fulness", "ful"},
	{"ousness", "ous"},
	{"aliti", "al"},
	{"iviti", "ive"},
	{"biliti", "ble"},
	{"logi", "log"},
}

var round2 = []rule{
	{"icate", "ic"},
	{"ative", ""},
	{"alize", "al"},
	{"iciti", "ic"},
	{"ical", "ic"},
	{"ful", ""},
	{"ness", ""},
}

var round3 = []string{
	"al", "ance", "ence", "er", "ic", "able", "ible", "ant", "ement",
	"ment", "ent", "ion", "ou", "ism", "ate", "iti", "ous", "ive", "ize",
}

// replaceIf сообщает, совпал ли суффикс; сама замена выполняется только
// если мера основы больше нуля.
func replaceIf(w []byte, suffix, repl string) ([]byte, bool) {
	if !bytes.HasSuffix(w, []byte(suffix)) {
		return w, false
	}
	stem := w[:len(w)-len(suffix)]
	if measure(stem) > 0 {
		w = append(stem, repl...)
	}
	return w, true
}

// trimIf — то же самое, но суффикс просто срезается, и порог меры строже.
func trimIf(w []byte, suffix string) ([]byte, bool) {
	if !bytes.HasSuffix(w, []byte(suffix)) {
		return w, false
	}
	stem := w[:len(w)-len(suffix)]
	if measure(stem) > 1 {
		return stem, true
	}
	return w, true
}
