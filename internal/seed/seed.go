package seed

import (
	"context"

	"deliverytracker/pkg/logger"
)

type Seeder struct {
	log        handlerLogger
	repository Repository
	txManager  TxManager
}

func New(log handlerLogger, repository Repository, txManager TxManager) *Seeder {
	return &Seeder{
		log:        log,
		repository: repository,
		txManager:  txManager,
	}
}

// Run наполняет пустую таблицу демо данными. Ошибка только логируется:
// сервис должен подняться и без демо данных.
func (s *Seeder) Run(ctx context.Context) {
	var inserted int

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		count, err := s.repository.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		rows := Deliveries()
		if err := s.repository.CreateBatch(ctx, rows); err != nil {
			return err
		}
		inserted = len(rows)
		return nil
	})
	if err != nil {
		s.log.Error("seeding deliveries failed", logger.NewField("error", err))
		return
	}

	if inserted == 0 {
		s.log.Info("deliveries table is not empty, seed skipped")
		return
	}

	s.log.Info("deliveries seeded", logger.NewField("count", inserted))
}
