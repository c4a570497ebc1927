package services

import "fmt"

// PromptBuilder produces the three fixed prompt templates of the pipeline.
// CV and JD text are substituted verbatim; they are opaque blobs forwarded to
// the model, never interpreted as nested templates.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildFitScorePrompt creates the prompt for the CV vs JD fit analysis. The
// heading markers, bullet counts and verdict categories are structural tokens
// the UI renders against, so the template spells them out explicitly.
func (pb *PromptBuilder) BuildFitScorePrompt(cvText, jdText string) string {
	return fmt.Sprintf(`You are an expert recruiter assistant. Analyze how well this CV matches the job description.

JOB DESCRIPTION:
%s

CANDIDATE CV:
%s

Provide your analysis in this EXACT markdown format:

## 🎯 FIT SCORE: [number 0-100]/100

### ✅ Matched Requirements
- **[requirement 1]:** [brief evidence from CV]
- **[requirement 2]:** [brief evidence from CV]
- **[requirement 3]:** [brief evidence from CV]
- **[requirement 4]:** [brief evidence from CV]
- **[requirement 5]:** [brief evidence from CV]

### ⚠️ Missing/Weak Areas
- **[gap 1]:** [what's missing or weak]
- **[gap 2]:** [what's missing or weak]

### 📋 Verdict
**[Strong Fit / Moderate Fit / Weak Fit]:** [One sentence recommendation]

Use proper markdown with headers (##, ###), bold (**text**), and bullet points (-). Keep it well-structured and readable.`,
		jdText, cvText)
}

// BuildSnapshotPrompt creates the prompt for structured candidate extraction.
// The response must be a bare JSON object; the normalizer still strips one
// fence pair in case the model ignores that instruction.
func (pb *PromptBuilder) BuildSnapshotPrompt(cvText string) string {
	return fmt.Sprintf(`You are a CV parsing expert. Extract key information from this CV into a structured format.

CV TEXT:
%s

Return ONLY valid JSON (no markdown, no code blocks, no extra text). Use this exact structure:
{
    "name": "Full Name",
    "email": "email@example.com",
    "phone": "phone number or null",
    "linkedin": "LinkedIn URL or null",
    "summary": "2-3 sentence professional summary",
    "experience_years": "estimated total years",
    "current_role": "most recent job title",
    "current_company": "most recent company",
    "skills": ["skill1", "skill2", "skill3"],
    "tools_technologies": ["tool1", "tool2"],
    "education": [
        {"degree": "Degree Name", "institution": "University", "year": "Year"}
    ],
    "key_achievements": ["achievement 1", "achievement 2"],
    "languages": ["English", "Other"]
}

If any field is not found in the CV, use null for single values or empty array [] for lists.`,
		cvText)
}

// BuildInterviewKitPrompt creates the prompt for the interview kit: six
// role-specific question blocks plus two clarification blocks.
func (pb *PromptBuilder) BuildInterviewKitPrompt(cvText, jdText string) string {
	return fmt.Sprintf(`You are a senior hiring manager. Create an interview kit for this candidate.

JOB DESCRIPTION:
%s

CANDIDATE CV:
%s

Generate an interview kit in this EXACT markdown format:

## 🎤 Role-Specific Questions

### Question 1: Experience
**Q:** [Question about their relevant experience]

✅ **Strong Answer Should Include:** [What a good answer includes]

---

### Question 2: Technical Skills
**Q:** [Technical/skill-based question from JD requirements]

✅ **Strong Answer Should Include:** [What a good answer includes]

---

### Question 3: Project Deep-Dive
**Q:** [Question about a specific project from their CV]

✅ **Strong Answer Should Include:** [What a good answer includes]

---

### Question 4: Behavioral
**Q:** [Behavioral question relevant to the role]

✅ **Strong Answer Should Include:** [What a good answer includes]

---

### Question 5: Problem-Solving
**Q:** [Problem-solving question for the role]

✅ **Strong Answer Should Include:** [What a good answer includes]

---

### Question 6: Culture Fit
**Q:** [Culture/teamwork question]

✅ **Strong Answer Should Include:** [What a good answer includes]

---

## 🔍 Clarification Questions (Address Gaps/Concerns)

### Clarification 1
**Q:** [Question about a gap, unclear period, or missing requirement]

🎯 **Why Ask This:** [What you're trying to clarify]

---

### Clarification 2
**Q:** [Question about a potential risk area]

🎯 **Why Ask This:** [What you're trying to clarify]

Use proper markdown formatting with headers, bold text, and horizontal rules (---) for clear separation.`,
		jdText, cvText)
}
