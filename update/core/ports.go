package core

import "context"

type DB interface {
	Add(ctx context.Context, doc Doc) error
	Stats(ctx context.Context) (DBStats, error)
	IDs(ctx context.Context) ([]int, error)
	Drop(ctx context.Context) error
}

type Feed interface {
	Get(ctx context.Context, id int) (FeedDoc, error)
	LastID(ctx context.Context) (int, error)
}

type Words interface {
	Norm(ctx context.Context, phrase string) ([]string, error)
}

type EventPublisher interface {
	NotifyDBChanged(ctx context.Context) error
}
