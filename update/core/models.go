package core

// Doc — документ вместе с нормализованными словами, как он уходит в БД.
type Doc struct {
	ID    int
	URL   string
	Title string
	Text  string
	Words []string
}

// FeedDoc — документ, как его отдаёт внешний фид.
type FeedDoc struct {
	ID    int
	URL   string
	Title string
	Text  string
}

type DBStats struct {
	WordsTotal  int
	WordsUnique int
	DocsFetched int
}

type ServiceStats struct {
	DBStats
	DocsTotal int
}

type ServiceStatus string

const (
	StatusIdle    ServiceStatus = "idle"
	StatusRunning ServiceStatus = "running"
)
