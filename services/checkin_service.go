package services

import (
	"errors"
	"sort"

	"event-checkin-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckinService struct {
	DB *gorm.DB
}

func NewCheckinService(db *gorm.DB) *CheckinService {
	return &CheckinService{DB: db}
}

// Toggle flips the check-in fact for (participantID, day) and returns the
// resulting state (true = checked in). It runs as one transaction: a
// conditional DELETE first — affected rows tell us the fact existed — else
// an INSERT with ON CONFLICT DO NOTHING. A zero-row insert means a
// concurrent toggle won the race; the fact exists either way, so that is
// reported as checked-in, never as an error.
func (s *CheckinService) Toggle(participantID uint, day int) (bool, error) {
	if !models.ValidEventDay(day) {
		return false, models.ErrInvalidDay
	}

	checkedIn := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("participant_id = ? AND event_day = ?", participantID, day).
			Delete(&models.Checkin{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			checkedIn = false
			return nil
		}

		var count int64
		if err := tx.Model(&models.Participant{}).Where("id = ?", participantID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return models.ErrParticipantNotFound
		}

		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Checkin{ParticipantID: participantID, EventDay: day})
		if ins.Error != nil {
			return ins.Error
		}
		checkedIn = true
		return nil
	})
	return checkedIn, err
}

// DaySet returns the IDs of participants checked in on the given day.
func (s *CheckinService) DaySet(day int) (map[uint]bool, error) {
	if !models.ValidEventDay(day) {
		return nil, models.ErrInvalidDay
	}
	var ids []uint
	if err := s.DB.Model(&models.Checkin{}).
		Where("event_day = ?", day).
		Pluck("participant_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// AllDaySets returns the checked-in ID set for every event day.
func (s *CheckinService) AllDaySets() (map[int]map[uint]bool, error) {
	sets := make(map[int]map[uint]bool, len(models.EventDays))
	for _, d := range models.EventDays {
		set, err := s.DaySet(d)
		if err != nil {
			return nil, err
		}
		sets[d] = set
	}
	return sets, nil
}

// setToIDs flattens a membership set into a sorted ID slice for JSON.
func setToIDs(set map[uint]bool) []uint {
	ids := make([]uint, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// --- HTTP handlers ---

// ToggleCheckin flips attendance for a participant on one day.
func (s *CheckinService) ToggleCheckin(c *fiber.Ctx) error {
	participantID, err := c.ParamsInt("id")
	if err != nil || participantID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "invalid participant id"})
	}
	day, err := c.ParamsInt("day")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": models.ErrInvalidDay.Error()})
	}

	checkedIn, err := s.Toggle(uint(participantID), day)
	switch {
	case errors.Is(err, models.ErrInvalidDay):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrParticipantNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"error": "failed to toggle check-in"})
	}

	return c.JSON(fiber.Map{
		"participant_id": participantID,
		"day":            day,
		"checked_in":     checkedIn,
	})
}
