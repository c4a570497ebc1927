package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"cv-analyzer/internal/models"
)

// ExportService renders a parsed snapshot and an interview kit into the
// downloadable formats the UI offers.
type ExportService interface {
	SnapshotJSON(snapshot *models.CandidateSnapshot) ([]byte, error)
	SnapshotCSV(snapshot *models.CandidateSnapshot) string
	InterviewKitText(kit string) string
}

type exportService struct{}

func NewExportService() ExportService {
	return &exportService{}
}

// SnapshotJSON implements ExportService. Field order follows the snapshot
// schema; output is indented for human readers.
func (e *exportService) SnapshotJSON(snapshot *models.CandidateSnapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// SnapshotCSV implements ExportService. Single data row, every value wrapped
// in double quotes, skills joined with ", ". Quotes or commas embedded in the
// source fields are not escaped; that matches the shipped export format and
// is a documented gap, not something to fix silently.
func (e *exportService) SnapshotCSV(snapshot *models.CandidateSnapshot) string {
	phone := ""
	if snapshot.Phone != nil {
		phone = *snapshot.Phone
	}

	return fmt.Sprintf("Name,Email,Phone,Current Role,Company,Experience,Skills\n"+
		`"%s","%s","%s","%s","%s","%s","%s"`+"\n",
		snapshot.Name,
		snapshot.Email,
		phone,
		snapshot.CurrentRole,
		snapshot.CurrentCompany,
		snapshot.ExperienceYears,
		strings.Join(snapshot.Skills, ", "),
	)
}

// InterviewKitText implements ExportService. The kit is exported as-is.
func (e *exportService) InterviewKitText(kit string) string {
	return kit
}
