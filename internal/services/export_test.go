package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-analyzer/internal/models"
)

func TestSnapshotCSV(t *testing.T) {
	exporter := NewExportService()

	phone := "+1 555 0100"
	snapshot := &models.CandidateSnapshot{
		Name:            "Jane Doe",
		Email:           "jane@x.com",
		Phone:           &phone,
		CurrentRole:     "Developer",
		CurrentCompany:  "Acme",
		ExperienceYears: "5",
		Skills:          []string{"Go", "Rust"},
	}

	csv := exporter.SnapshotCSV(snapshot)

	want := "Name,Email,Phone,Current Role,Company,Experience,Skills\n" +
		"\"Jane Doe\",\"jane@x.com\",\"+1 555 0100\",\"Developer\",\"Acme\",\"5\",\"Go, Rust\"\n"
	assert.Equal(t, want, csv)
}

func TestSnapshotCSVNilPhone(t *testing.T) {
	exporter := NewExportService()

	csv := exporter.SnapshotCSV(&models.CandidateSnapshot{Name: "A"})
	assert.Contains(t, csv, "\"A\",\"\",\"\",")
}

func TestSnapshotJSONStableFieldOrder(t *testing.T) {
	exporter := NewExportService()

	snapshot := &models.CandidateSnapshot{
		Name:   "Jane Doe",
		Email:  "jane@x.com",
		Skills: []string{"Python"},
	}
	snapshot.EnsureCollections()

	data, err := exporter.SnapshotJSON(snapshot)
	require.NoError(t, err)

	out := string(data)

	// Indented, schema field order, nullable scalars serialized as null and
	// collections as arrays, never omitted
	assert.Contains(t, out, "  \"name\": \"Jane Doe\"")
	assert.Contains(t, out, "\"phone\": null")
	assert.Contains(t, out, "\"education\": []")

	fields := []string{
		`"name"`, `"email"`, `"phone"`, `"linkedin"`, `"summary"`,
		`"experience_years"`, `"current_role"`, `"current_company"`,
		`"skills"`, `"tools_technologies"`, `"education"`,
		`"key_achievements"`, `"languages"`,
	}
	last := -1
	for _, field := range fields {
		pos := strings.Index(out, field)
		require.NotEqual(t, -1, pos, "field %s missing", field)
		assert.Greater(t, pos, last, "field %s out of order", field)
		last = pos
	}
}

func TestInterviewKitTextPassthrough(t *testing.T) {
	exporter := NewExportService()

	kit := "## 🎤 Role-Specific Questions\n\n### Question 1: Experience\n**Q:** ..."
	assert.Equal(t, kit, exporter.InterviewKitText(kit))
}
