// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartSnapshotScheduler logs a roster/attendance snapshot on an interval,
// so check-in progress during the event shows up in the server log.
func (s *StatsService) StartSnapshotScheduler(interval time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			stats, err := s.Collect()
			if err != nil {
				log.Printf("[Snapshot] DB error: %v", err)
				return
			}
			log.Printf("[Snapshot] %d participants | day1=%d day2=%d day3=%d checked in",
				stats.TotalParticipants,
				stats.CheckinsByDay[1], stats.CheckinsByDay[2], stats.CheckinsByDay[3])
		}),
	)
}
