package core

import "context"

type DB interface {
	Search(ctx context.Context) ([]Doc, error)
}

type Words interface {
	Norm(ctx context.Context, phrase string) ([]string, error)
}

type Searcher interface {
	Search(ctx context.Context, phrase string, limit int) ([]Doc, error)
	IndexSearch(ctx context.Context, phrase string, limit int) ([]Doc, error)
}

type Indexer interface {
	RebuildIndex(ctx context.Context) error
}
