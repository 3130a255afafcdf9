package core

type UpdateStats struct {
	WordsTotal  int
	WordsUnique int
	DocsTotal   int
	DocsFetched int
}

type UpdateStatus string

const (
	StatusUpdateUnknown UpdateStatus = "unknown"
	StatusUpdateIdle    UpdateStatus = "idle"
	StatusUpdateRunning UpdateStatus = "running"
)

type Doc struct {
	ID  int
	URL string
}
