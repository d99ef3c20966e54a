// Package analyzer provides resume feedback and job description analysis.
// Both produce fixed reports after a delay imitating a long-running external service.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
)

// errors returned for bad input
var (
	ErrUnsupportedDocument = errors.New("unsupported document, PDF or Word expected")
	ErrEmptyDescription    = errors.New("job description is empty")
)

// accepted resume content types
var documentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Document describes an uploaded resume
type Document struct {
	Name        string
	ContentType string
	Size        int64
}

// Rating of a resume section
type Rating string

// section ratings
const (
	RatingGood             Rating = "good"
	RatingNeedsImprovement Rating = "needs_improvement"
)

// Section is feedback on one resume section
type Section struct {
	Title    string `json:"title"`
	Feedback string `json:"feedback"`
	Rating   Rating `json:"rating"`
}

// ResumeFeedback is a report on an uploaded resume
type ResumeFeedback struct {
	Score                  int       `json:"score"`
	ATSCompatibility       string    `json:"atsCompatibility"`
	Sections               []Section `json:"sections"`
	MissingKeywords        []string  `json:"missingKeywords"`
	ImprovementSuggestions []string  `json:"improvementSuggestions"`
}

// Skill found in a job description
type Skill struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Level string `json:"level"`
}

// Tool found in a job description
type Tool struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// DescriptionAnalysis is a report on a job description
type DescriptionAnalysis struct {
	Role           string   `json:"role"`
	Company        string   `json:"company"`
	Skills         []Skill  `json:"skills"`
	Tools          []Tool   `json:"tools"`
	Requirements   []string `json:"requirements"`
	KeyPhrases     []string `json:"keyPhrases"`
	ResumeKeywords []string `json:"resumeKeywords"`
}

// Service produces reports after Delay
type Service struct {
	Delay time.Duration
}

// AnalyzeResume returns feedback for PDF or Word resume
func (s *Service) AnalyzeResume(ctx context.Context, doc Document) (ResumeFeedback, error) {
	if !SupportedDocument(doc.ContentType) {
		return ResumeFeedback{}, fmt.Errorf("%w: %q", ErrUnsupportedDocument, doc.ContentType)
	}
	log.Printf("[DEBUG] analyze resume %s, %d bytes", doc.Name, doc.Size)
	if err := s.wait(ctx); err != nil {
		return ResumeFeedback{}, fmt.Errorf("resume analysis interrupted: %w", err)
	}
	return resumeFeedback(), nil
}

// AnalyzeDescription returns analysis of job description text
func (s *Service) AnalyzeDescription(ctx context.Context, text string) (DescriptionAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return DescriptionAnalysis{}, ErrEmptyDescription
	}
	log.Printf("[DEBUG] analyze job description, %d chars", len(text))
	if err := s.wait(ctx); err != nil {
		return DescriptionAnalysis{}, fmt.Errorf("description analysis interrupted: %w", err)
	}
	return descriptionAnalysis(), nil
}

// SupportedDocument checks resume content type, parameters like charset are ignored
func SupportedDocument(contentType string) bool {
	ct, _, _ := strings.Cut(contentType, ";")
	return documentTypes[strings.ToLower(strings.TrimSpace(ct))]
}

func (s *Service) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
