package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

type Service struct {
	log         *slog.Logger
	db          DB
	feed        Feed
	words       Words
	events      EventPublisher
	concurrency int

	running atomic.Bool
}

func NewService(
	log *slog.Logger,
	db DB,
	feed Feed,
	words Words,
	concurrency int,
	events EventPublisher,
) (*Service, error) {
	if concurrency < 1 {
		return nil, fmt.Errorf("wrong concurrency specified: %d", concurrency)
	}
	return &Service{
		log:         log,
		db:          db,
		feed:        feed,
		words:       words,
		events:      events,
		concurrency: concurrency,
	}, nil
}

func (s *Service) lockRun() error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyExists
	}
	return nil
}

func (s *Service) unlockRun() {
	s.running.Store(false)
}

func (s *Service) worker(ctx context.Context, jobs <-chan int) {
	for id := range jobs {
		doc, err := s.feed.Get(ctx, id)
		if err != nil {
			// документ могли удалить из фида, это не ошибка обновления
			if errors.Is(err, ErrNotFound) {
				s.log.Debug("doc is gone from feed", "id", id)
				continue
			}
			s.log.Error("feed get failed", "id", id, "err", err)
			continue
		}

		// отдаем на нормализацию заголовок и текст
		norm, err := s.words.Norm(ctx, doc.Title+" "+doc.Text)
		if err != nil {
			s.log.Error("words norm failed", "id", id, "err", err)
			continue
		}

		d := Doc{
			ID:    doc.ID,
			URL:   doc.URL,
			Title: doc.Title,
			Text:  doc.Text,
			Words: norm,
		}

		if err = s.db.Add(ctx, d); err != nil {
			s.log.Error("db add failed", "id", id, "err", err)
		}
	}
}

func (s *Service) Update(ctx context.Context) (err error) {
	if err := s.lockRun(); err != nil {
		return err
	}
	defer s.unlockRun()

	// последний номер id в фиде
	last, err := s.feed.LastID(ctx)
	if err != nil {
		return err
	}

	// какие у нас уже есть в бд
	have, err := s.db.IDs(ctx)
	if err != nil {
		return err
	}

	// множество уже имеющихся id
	haveSet := make(map[int]bool, len(have))
	for _, id := range have {
		haveSet[id] = true
	}

	// список недостающих id
	missing := make([]int, 0, last)
	for id := 1; id <= last; id++ {
		if !haveSet[id] {
			missing = append(missing, id)
		}
	}

	if len(missing) == 0 {
		s.log.Info("no new docs to fetch")
		return nil
	}

	jobs := make(chan int, s.concurrency*2)
	var wg sync.WaitGroup

	for i := 0; i < s.concurrency; i++ {
		wg.Go(func() {
			s.worker(ctx, jobs)
		})
	}

	for _, id := range missing {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ctx.Err()
		case jobs <- id:
		}
	}
	close(jobs)
	wg.Wait()

	// поиск должен узнать, что база поменялась
	if err := s.events.NotifyDBChanged(ctx); err != nil {
		return fmt.Errorf("failed to send db-changed event: %w", err)
	}

	return nil
}

func (s *Service) Stats(ctx context.Context) (ServiceStats, error) {
	dbStat, err := s.db.Stats(ctx)
	if err != nil {
		return ServiceStats{}, err
	}

	last, err := s.feed.LastID(ctx)
	if err != nil {
		return ServiceStats{}, err
	}

	return ServiceStats{
		DBStats:   dbStat,
		DocsTotal: last,
	}, nil
}

func (s *Service) Status(ctx context.Context) ServiceStatus {
	if s.running.Load() {
		return StatusRunning
	}
	return StatusIdle
}

func (s *Service) Drop(ctx context.Context) error {
	if err := s.db.Drop(ctx); err != nil {
		return err
	}
	return s.events.NotifyDBChanged(ctx)
}
