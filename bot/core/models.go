package core

type SearchDoc struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

type SearchResponse struct {
	Docs  []SearchDoc `json:"docs"`
	Total int         `json:"total"`
}

type UpdateStatsResponse struct {
	WordsTotal  int `json:"words_total"`
	WordsUnique int `json:"words_unique"`
	DocsFetched int `json:"docs_fetched"`
	DocsTotal   int `json:"docs_total"`
}

type UpdateStatusResponse struct {
	Status string `json:"status"`
}
