package usecase

import (
	"context"
	"time"
)

// Sweeper expires idle wizards on a fixed interval until ctx is done.
type Sweeper struct {
	wizards  WizardUseCase
	interval time.Duration
}

func NewSweeper(wizards WizardUseCase, interval time.Duration) *Sweeper {
	return &Sweeper{wizards: wizards, interval: interval}
}

func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.wizards.ExpireIdle()
		}
	}
}
