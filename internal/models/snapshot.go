package models

// Education is one education entry on a candidate's CV.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// CandidateSnapshot is the structured profile extracted from CV text.
// Field order matches the JSON schema the snapshot prompt asks the model for.
// Nullable scalars are pointers; collections are never nil after
// normalization, so every field is present in serialized output.
type CandidateSnapshot struct {
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Phone             *string     `json:"phone"`
	LinkedIn          *string     `json:"linkedin"`
	Summary           string      `json:"summary"`
	ExperienceYears   string      `json:"experience_years"`
	CurrentRole       string      `json:"current_role"`
	CurrentCompany    string      `json:"current_company"`
	Skills            []string    `json:"skills"`
	ToolsTechnologies []string    `json:"tools_technologies"`
	Education         []Education `json:"education"`
	KeyAchievements   []string    `json:"key_achievements"`
	Languages         []string    `json:"languages"`
}

// EnsureCollections replaces nil slices with empty ones so exports always
// carry every field.
func (s *CandidateSnapshot) EnsureCollections() {
	if s.Skills == nil {
		s.Skills = []string{}
	}
	if s.ToolsTechnologies == nil {
		s.ToolsTechnologies = []string{}
	}
	if s.Education == nil {
		s.Education = []Education{}
	}
	if s.KeyAchievements == nil {
		s.KeyAchievements = []string{}
	}
	if s.Languages == nil {
		s.Languages = []string{}
	}
}
