package core

// Doc — документ, как его видит поиск: ссылка и нормализованные слова.
type Doc struct {
	ID    int
	URL   string
	Words []string
}
