package engine

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// StartSweeper schedules the turn-clock sweep every interval. The
// returned scheduler is already running; shut it down on exit.
func (e *Engine) StartSweeper(interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if n := e.SweepExpired(time.Now()); n > 0 {
				log.Info().Int("expired", n).Msg("swept expired matches")
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	sched.Start()
	return sched, nil
}
