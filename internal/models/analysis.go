package models

import "strings"

// SourceDocument is an uploaded document as received from the client.
// It only lives until text extraction; nothing retains the bytes afterwards.
type SourceDocument struct {
	Data      []byte
	MediaType string
}

// AnalysisRequest is the immutable input pair for one pipeline run.
type AnalysisRequest struct {
	CVText         string
	JobDescription string
}

// IsComplete reports whether both texts are non-empty after trimming.
// The analyzer refuses to call the model otherwise.
func (r AnalysisRequest) IsComplete() bool {
	return strings.TrimSpace(r.CVText) != "" && strings.TrimSpace(r.JobDescription) != ""
}

type AnalysisState string

const (
	StateIdle              AnalysisState = "idle"
	StateExtracting        AnalysisState = "extracting"
	StateScoringInFlight   AnalysisState = "scoring_in_flight"
	StateSnapshotInFlight  AnalysisState = "snapshot_in_flight"
	StateParsingSnapshot   AnalysisState = "parsing_snapshot"
	StateInterviewInFlight AnalysisState = "interview_in_flight"
	StateComplete          AnalysisState = "complete"
	StateFailed            AnalysisState = "failed"
)

// AnalysisResult aggregates the three artifacts of one pipeline run.
// All three slots are always populated once the run completes; a failed model
// call leaves its error text in the slot instead of aborting the siblings.
type AnalysisResult struct {
	FitScore     string             `json:"fit_score"`
	Snapshot     *CandidateSnapshot `json:"snapshot"`
	SnapshotRaw  string             `json:"snapshot_raw"`
	SnapshotErr  string             `json:"snapshot_error,omitempty"`
	InterviewKit string             `json:"interview_kit"`
	State        AnalysisState      `json:"state"`
}
