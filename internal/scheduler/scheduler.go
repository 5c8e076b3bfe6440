package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/lolclient/internal/service"
)

const jobTimeout = 30 * time.Second

type Scheduler struct {
	s             gocron.Scheduler
	lookupService *service.LookupService
	sendMessage   func(string) error
	interval      time.Duration
}

func NewScheduler(lookupService *service.LookupService, sendMessage func(string) error, interval time.Duration) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:             s,
		lookupService: lookupService,
		sendMessage:   sendMessage,
		interval:      interval,
	}, nil
}

func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		slog.Info("Status job disabled")
		return nil
	}

	// Shard status - every interval
	_, err := s.s.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.sendStatus),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create status job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendStatus() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	report, err := s.lookupService.Report(ctx, "status", nil)
	if err != nil {
		slog.Error("Failed to get shard status", "error", err)
		return
	}
	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to send shard status", "error", err)
	}
}
