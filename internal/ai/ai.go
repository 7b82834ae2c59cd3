// Package ai defines the contracts between the command layer and the
// completion provider: the five assistant actions and the result shapes they
// produce. Provider payloads stay opaque; nothing here parses documents.
package ai

import "context"

// FileData is an opaque document payload produced by intake: original file
// name, MIME type and base64-encoded content.
type FileData struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// InterviewQuestion is a suggested question with a model answer.
type InterviewQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// MatchResult describes how one resume scores against one job description.
// Array fields may be empty; a missing improvements or interviewQuestions
// field decodes as empty rather than failing.
type MatchResult struct {
	JobTitle           string              `json:"jobTitle"`
	MatchPercentage    float64             `json:"matchPercentage"`
	Pros               []string            `json:"pros"`
	Cons               []string            `json:"cons"`
	Improvements       []string            `json:"improvements"`
	InterviewQuestions []InterviewQuestion `json:"interviewQuestions"`
	Reasoning          string              `json:"reasoning"`
}

// Winner values used by comparison results.
const (
	WinnerResumeA = "Resume A"
	WinnerResumeB = "Resume B"
	WinnerTie     = "Tie"
)

// ComparisonCategory is one scored dimension of a two-resume comparison.
type ComparisonCategory struct {
	Name         string  `json:"name"`
	ResumeAScore float64 `json:"resumeAScore"`
	ResumeBScore float64 `json:"resumeBScore"`
	ResumeANotes string  `json:"resumeANotes"`
	ResumeBNotes string  `json:"resumeBNotes"`
	Winner       string  `json:"winner"`
}

// ComparisonResult is the outcome of comparing two resumes side by side.
// Categories keep the provider's ordering.
type ComparisonResult struct {
	OverallWinner string               `json:"overallWinner"`
	Summary       string               `json:"summary"`
	Categories    []ComparisonCategory `json:"categories"`
}

// Education is one schooling entry of a profile.
type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

// Experience is one employment entry of a profile.
type Experience struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
	Details  string `json:"details"`
}

// Project is one project entry of a profile.
type Project struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	Technologies  string `json:"technologies"`
	Description   string `json:"description"`
	Contributions string `json:"contributions"`
}

// Award is one award entry of a profile.
type Award struct {
	Title   string `json:"title"`
	Issuer  string `json:"issuer"`
	Date    string `json:"date"`
	Details string `json:"details"`
}

// Certification is one certification entry of a profile.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// SocialLink is one public link of a profile.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ResumeProfile is the builder's working document: flat contact fields plus
// ordered list sections. Section order is display order; entries are not
// deduplicated.
type ResumeProfile struct {
	FullName       string          `json:"fullName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Linkedin       string          `json:"linkedin"`
	Summary        string          `json:"summary"`
	Education      []Education     `json:"education"`
	Skills         string          `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Awards         []Award         `json:"awards"`
	Certifications []Certification `json:"certifications"`
	SocialLinks    []SocialLink    `json:"socialLinks"`
	Interests      string          `json:"interests"`
}

// Assistant is the completion provider seen by the command layer. Every method
// maps to one gated action.
//
// Failure disciplines differ per action and are part of the contract:
// RewriteJobDescription, MatchResume and CompareResumes propagate provider and
// decode errors. QuickSuggest never fails; any problem yields an empty string.
// PolishResume always returns a usable profile: on a decode failure it falls
// back to the input silently, on a provider failure it falls back to the input
// and reports the error so the caller can warn without losing data.
type Assistant interface {
	RewriteJobDescription(ctx context.Context, input string) (string, error)
	QuickSuggest(ctx context.Context, input string, roles []string) string
	MatchResume(ctx context.Context, resume FileData, jobDescriptions string) ([]MatchResult, error)
	CompareResumes(ctx context.Context, resumeA, resumeB FileData, roleContext string) (*ComparisonResult, error)
	PolishResume(ctx context.Context, profile ResumeProfile) (ResumeProfile, error)
}
