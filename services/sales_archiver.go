package services

import (
	"context"
	"time"

	"github.com/yeremiapane/restaurant-pos/utils"
)

// SalesArchiver periodically freezes the sales of past days that were never
// archived by hand.
type SalesArchiver struct {
	POS      *POS
	StopChan chan struct{}
	Interval time.Duration
}

func NewSalesArchiver(pos *POS, interval time.Duration) *SalesArchiver {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SalesArchiver{
		POS:      pos,
		StopChan: make(chan struct{}),
		Interval: interval,
	}
}

func (sa *SalesArchiver) Start() {
	go func() {
		ticker := time.NewTicker(sa.Interval)
		defer ticker.Stop()

		sa.RunOnce()
		for {
			select {
			case <-ticker.C:
				sa.RunOnce()
			case <-sa.StopChan:
				return
			}
		}
	}()
}

func (sa *SalesArchiver) Stop() {
	close(sa.StopChan)
}

// RunOnce archives every pending past day and returns how many were saved.
func (sa *SalesArchiver) RunOnce() int {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := sa.POS.ArchivePastDays(ctx)
	if err != nil {
		utils.ErrorLogger.Errorf("Error archiving past sales: %v", err)
		return 0
	}
	if n > 0 {
		utils.InfoLogger.Printf("Archived sales of %d past days", n)
	}
	return n
}
