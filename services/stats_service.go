package services

import (
	"event-checkin-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// DashboardStats are the event-overview counters.
type DashboardStats struct {
	TotalParticipants int64               `json:"total_participants"`
	CheckinsByDay     map[int]int64       `json:"checkins_by_day"`
	Stakes            []models.StakeCount `json:"stakes"`
}

// Collect gathers the roster total, per-day check-in counts and per-stake
// participant counts (stake ascending).
func (s *StatsService) Collect() (DashboardStats, error) {
	stats := DashboardStats{CheckinsByDay: make(map[int]int64, len(models.EventDays))}

	if err := s.DB.Model(&models.Participant{}).Count(&stats.TotalParticipants).Error; err != nil {
		return stats, err
	}

	for _, d := range models.EventDays {
		var n int64
		if err := s.DB.Model(&models.Checkin{}).Where("event_day = ?", d).Count(&n).Error; err != nil {
			return stats, err
		}
		stats.CheckinsByDay[d] = n
	}

	if err := s.DB.Model(&models.Participant{}).
		Select("stake, count(*) as total").
		Group("stake").
		Order("stake ASC").
		Scan(&stats.Stakes).Error; err != nil {
		return stats, err
	}

	return stats, nil
}

// GetDashboard serves the overview counters as JSON.
func (s *StatsService) GetDashboard(c *fiber.Ctx) error {
	stats, err := s.Collect()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to collect stats"})
	}
	return c.JSON(stats)
}
