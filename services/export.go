package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"event-checkin-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
)

// BuildRosterCSV renders the roster plus attendance columns as CSV bytes.
// onlyDay 0 emits all three day columns; 1–3 emits just that day's column.
// Day cells are 1 when the participant's ID is in that day's set, else 0.
func BuildRosterCSV(participants []models.Participant, daySets map[int]map[uint]bool, onlyDay int) ([]byte, error) {
	if onlyDay != 0 && !models.ValidEventDay(onlyDay) {
		return nil, models.ErrInvalidDay
	}

	days := models.EventDays
	if onlyDay != 0 {
		days = []int{onlyDay}
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"id", "name", "stake", "ward_branch", "email", "phone_number", "tshirt_size"}
	for _, d := range days {
		header = append(header, fmt.Sprintf("day%d", d))
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, p := range participants {
		rec := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			p.Stake,
			p.WardBranch,
			deref(p.Email),
			deref(p.PhoneNumber),
			deref(p.TshirtSize),
		}
		for _, d := range days {
			if daySets[d][p.ID] {
				rec = append(rec, "1")
			} else {
				rec = append(rec, "0")
			}
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportFilename builds the download name: full exports get
// "participants.csv", single-day ones "participants_dayN.csv", both
// prefixed with the slugged event name when one is configured.
func ExportFilename(eventName string, onlyDay int) string {
	base := "participants"
	if eventName != "" {
		base = slug.Make(eventName) + "_participants"
	}
	if onlyDay != 0 {
		return fmt.Sprintf("%s_day%d.csv", base, onlyDay)
	}
	return base + ".csv"
}

// ExportRoster serves the roster as a downloadable CSV, optionally for a
// single day (?day=N).
func (s *RosterService) ExportRoster(c *fiber.Ctx) error {
	onlyDay := 0
	if dayStr := c.Query("day"); dayStr != "" {
		d, err := strconv.Atoi(dayStr)
		if err != nil || !models.ValidEventDay(d) {
			return c.Status(400).JSON(fiber.Map{"error": models.ErrInvalidDay.Error()})
		}
		onlyDay = d
	}

	participants, err := s.All()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to query participants"})
	}
	daySets, err := s.Checkins.AllDaySets()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to query check-ins"})
	}

	data, err := BuildRosterCSV(participants, daySets, onlyDay)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to build export"})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", ExportFilename(s.EventName, onlyDay)))
	return c.Send(data)
}
