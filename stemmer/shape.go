package stemmer

// isConsonant определяет класс символа в позиции i.
// Гласные a/e/i/o/u, всё остальное — согласные, кроме 'y':
// 'y' в начале слова — согласная, дальше её класс противоположен
// классу предыдущего символа. Вместо рекурсии откатываемся к началу
// цепочки подряд идущих 'y' и чередуем класс на обратном пути,
// так корректно разбираются цепочки вроде "syzygy".
func isConsonant(w []byte, i int) bool {
	c := w[i]
	if c == 'a' || c == 'e' || c == 'i' || c == 'o' || c == 'u' {
		return false
	}
	if c != 'y' {
		return true
	}

	base := i
	for base > 0 && w[base-1] == 'y' {
		base--
	}

	cons := true // 'y' в нулевой позиции — всегда согласная
	if base > 0 {
		p := w[base-1]
		// после гласной 'y' — согласная, после согласной — гласная
		cons = p == 'a' || p == 'e' || p == 'i' || p == 'o' || p == 'u'
	}
	if (i-base)%2 == 1 {
		cons = !cons
	}
	return cons
}

func hasVowel(w []byte) bool {
	for i := range w {
		if !isConsonant(w, i) {
			return true
		}
	}
	return false
}

// measure раскладывает слово по шаблону C?(VC)^m V? и возвращает m —
// число переходов "серия гласных -> серия согласных".
func measure(w []byte) int {
	n := len(w)
	i := 0
	for i < n && isConsonant(w, i) { // необязательный префикс согласных
		i++
	}

	m := 0
	for {
		for i < n && !isConsonant(w, i) {
			i++
		}
		if i >= n {
			break
		}
		for i < n && isConsonant(w, i) {
			i++
		}
		m++
	}
	return m
}

func endsDoubleConsonant(w []byte) bool {
	n := len(w)
	if n < 2 {
		return false
	}
	return w[n-1] == w[n-2] && isConsonant(w, n-1)
}

// endsCVC проверяет окончание согласная-гласная-согласная (последняя не
// w/x/y) у префикса w[:end+1]. Принимает исходный буфер слова и смещение
// конца, а не вырезанную подстроку: классификация 'y' заглядывает влево,
// поэтому индексы должны считаться в исходном слове.
func endsCVC(w []byte, end int) bool {
	if end < 2 {
		return false
	}
	if !isConsonant(w, end) || isConsonant(w, end-1) || !isConsonant(w, end-2) {
		return false
	}
	switch w[end] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}
