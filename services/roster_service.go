package services

import (
	"errors"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"event-checkin-system/models"
	"event-checkin-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// rosterLimit caps browse results to bound response size.
const rosterLimit = 500

type RosterService struct {
	DB        *gorm.DB
	Checkins  *CheckinService
	EventName string

	archiveToR2 bool
}

func NewRosterService(db *gorm.DB, checkins *CheckinService, cfg utils.Config) *RosterService {
	return &RosterService{
		DB:          db,
		Checkins:    checkins,
		EventName:   cfg.EventName,
		archiveToR2: cfg.R2Enabled(),
	}
}

// RosterFilter narrows a participant query. Zero value matches everything.
type RosterFilter struct {
	Q     string // case-insensitive substring over name, stake, ward, phone
	Stake string // exact match
	Ward  string // exact match
}

// RowStatus reports the fate of one uploaded row.
type RowStatus struct {
	Row    int    `json:"row"` // 1-based data row number (header excluded)
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// UploadResult summarizes a bulk insert: aggregate counts plus per-row
// statuses, so skipped rows are visible instead of silently swallowed.
type UploadResult struct {
	Mode     string      `json:"mode"`
	Total    int         `json:"total"`
	Inserted int         `json:"inserted"`
	Skipped  int         `json:"skipped"`
	Rows     []RowStatus `json:"rows"`
}

// participantFromRow validates one normalized row. A row is usable iff
// name, stake and ward_branch are non-empty after trimming; optional
// fields pass through as-is so absent stays NULL.
func participantFromRow(row NormalizedRow) (models.Participant, bool) {
	name := strings.TrimSpace(deref(row["name"]))
	stake := strings.TrimSpace(deref(row["stake"]))
	ward := strings.TrimSpace(deref(row["ward_branch"]))
	if name == "" || stake == "" || ward == "" {
		return models.Participant{}, false
	}
	return models.Participant{
		Name:        name,
		Stake:       stake,
		WardBranch:  ward,
		Email:       row["email"],
		PhoneNumber: row["phone_number"],
		TshirtSize:  row["tshirt_size"],
	}, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// BulkInsert writes the normalized rows in a single transaction. Mode
// "replace" deletes all check-ins and participants first; anything else
// appends. Invalid rows are skipped and reported, never fatal. A database
// error rolls the whole batch back.
func (s *RosterService) BulkInsert(rows []NormalizedRow, mode string) (UploadResult, error) {
	if mode != "replace" {
		mode = "append"
	}
	result := UploadResult{Mode: mode, Total: len(rows)}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if mode == "replace" {
			// Check-ins first: the FK cascades on participant delete, but
			// an explicit wipe keeps the statement order obvious.
			if err := tx.Where("1 = 1").Delete(&models.Checkin{}).Error; err != nil {
				return err
			}
			if err := tx.Where("1 = 1").Delete(&models.Participant{}).Error; err != nil {
				return err
			}
		}

		for i, row := range rows {
			p, ok := participantFromRow(row)
			if !ok {
				result.Skipped++
				result.Rows = append(result.Rows, RowStatus{Row: i + 1, Status: "skipped", Reason: "name, stake and ward/branch are required"})
				continue
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			result.Inserted++
			result.Rows = append(result.Rows, RowStatus{Row: i + 1, Status: "inserted"})
		}
		return nil
	})
	if err != nil {
		return UploadResult{Mode: mode, Total: len(rows)}, err
	}
	return result, nil
}

// Search returns participants matching the filter, name ascending,
// capped at rosterLimit rows.
func (s *RosterService) Search(f RosterFilter) ([]models.Participant, error) {
	q := s.DB.Model(&models.Participant{})
	if needle := strings.ToLower(strings.TrimSpace(f.Q)); needle != "" {
		like := "%" + needle + "%"
		q = q.Where(
			"lower(name) LIKE ? OR lower(stake) LIKE ? OR lower(ward_branch) LIKE ? OR phone_number LIKE ?",
			like, like, like, like,
		)
	}
	if f.Stake != "" {
		q = q.Where("stake = ?", f.Stake)
	}
	if f.Ward != "" {
		q = q.Where("ward_branch = ?", f.Ward)
	}

	var participants []models.Participant
	err := q.Order("name ASC").Limit(rosterLimit).Find(&participants).Error
	return participants, err
}

// All returns the whole roster, name ascending, uncapped. Used by the
// export path; browsing goes through Search and its row cap.
func (s *RosterService) All() ([]models.Participant, error) {
	var participants []models.Participant
	err := s.DB.Order("name ASC").Find(&participants).Error
	return participants, err
}

// DistinctStakes lists the stakes currently on the roster, sorted.
func (s *RosterService) DistinctStakes() ([]string, error) {
	var stakes []string
	err := s.DB.Model(&models.Participant{}).
		Distinct("stake").
		Order("stake ASC").
		Pluck("stake", &stakes).Error
	return stakes, err
}

// DistinctWards lists the ward/branch values currently on the roster, sorted.
func (s *RosterService) DistinctWards() ([]string, error) {
	var wards []string
	err := s.DB.Model(&models.Participant{}).
		Distinct("ward_branch").
		Order("ward_branch ASC").
		Pluck("ward_branch", &wards).Error
	return wards, err
}

// WardsForStake lists ward/branch values within one stake, sorted.
func (s *RosterService) WardsForStake(stake string) ([]string, error) {
	var wards []string
	err := s.DB.Model(&models.Participant{}).
		Where("stake = ?", stake).
		Distinct("ward_branch").
		Order("ward_branch ASC").
		Pluck("ward_branch", &wards).Error
	return wards, err
}

// --- HTTP handlers ---

// GetParticipants serves the browse view: filtered rows plus the per-day
// check-in ID sets and the filter choices. The day sets span ALL
// participants, not just the returned page, so toggle controls render
// consistently.
func (s *RosterService) GetParticipants(c *fiber.Ctx) error {
	filter := RosterFilter{
		Q:     strings.TrimSpace(c.Query("q")),
		Stake: strings.TrimSpace(c.Query("stake")),
		Ward:  strings.TrimSpace(c.Query("ward")),
	}

	participants, err := s.Search(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to query participants"})
	}

	daySets, err := s.Checkins.AllDaySets()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to query check-ins"})
	}

	stakes, err := s.DistinctStakes()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to query stakes"})
	}
	wards, err := s.DistinctWards()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to query wards"})
	}

	return c.JSON(fiber.Map{
		"participants": participants,
		"day1":         setToIDs(daySets[1]),
		"day2":         setToIDs(daySets[2]),
		"day3":         setToIDs(daySets[3]),
		"stakes":       stakes,
		"wards":        wards,
		"q":            filter.Q,
		"stake":        filter.Stake,
		"ward":         filter.Ward,
	})
}

// FilterParticipants serves the plain stake+ward exact filter as a JSON array.
func (s *RosterService) FilterParticipants(c *fiber.Ctx) error {
	participants, err := s.Search(RosterFilter{
		Stake: strings.TrimSpace(c.Query("stake")),
		Ward:  strings.TrimSpace(c.Query("ward")),
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to query participants"})
	}
	return c.JSON(participants)
}

// GetStakes serves the distinct stake list for filter dropdowns.
func (s *RosterService) GetStakes(c *fiber.Ctx) error {
	stakes, err := s.DistinctStakes()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to query stakes"})
	}
	return c.JSON(stakes)
}

// GetWardsForStake serves the ward list within one stake.
func (s *RosterService) GetWardsForStake(c *fiber.Ctx) error {
	wards, err := s.WardsForStake(c.Params("stake"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to query wards"})
	}
	return c.JSON(wards)
}

// UploadRoster ingests a .xlsx or .csv roster file. Mode "append" (default)
// adds rows; "replace" wipes the roster and its check-ins first. The raw
// file is archived after a successful import.
func (s *RosterService) UploadRoster(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader.Size == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "please choose a file (.xlsx or .csv)"})
	}
	mode := c.FormValue("mode", "append")

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "failed to read uploaded file"})
	}
	defer file.Close()

	table, err := utils.ReadUpload(fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, models.ErrUnsupportedFormat) || errors.Is(err, models.ErrEmptyUpload) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": "upload failed: " + err.Error()})
	}

	rows := NormalizeColumns(table)
	result, err := s.BulkInsert(rows, mode)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "DB insert failed"})
	}

	s.archiveUpload(fileHeader)

	log.Printf("✅ Uploaded %d participants (%s, %d skipped)", result.Inserted, result.Mode, result.Skipped)
	return c.JSON(result)
}

// archiveUpload stores the raw file for audit; failures only log.
func (s *RosterService) archiveUpload(fileHeader *multipart.FileHeader) {
	key := "rosters/" + uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	if s.archiveToR2 {
		if err := utils.ArchiveUploadToR2(fileHeader, key); err != nil {
			log.Printf("⚠️  Failed to archive upload to R2: %v", err)
		}
		return
	}
	if err := utils.SaveUploadLocally(fileHeader, key); err != nil {
		log.Printf("⚠️  Failed to archive upload locally: %v", err)
	}
}
