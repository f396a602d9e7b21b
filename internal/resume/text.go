// Package resume flattens the free-text fields of a structured resume into
// text fragments for keyword extraction.
package resume

import (
	"strings"

	"github.com/link-verse-ai/ATS-score-checker/internal/types"
)

// sectionExtractor pulls the free-text parts out of one resume section.
type sectionExtractor func(r *types.Resume) []string

// sectionExtractors is the ordered list of per-section extractors composed
// into the full text extraction. Order matches the document layout.
var sectionExtractors = []sectionExtractor{
	summaryText,
	experienceText,
	educationText,
	skillText,
	projectText,
	certificationText,
	languageText,
	awardText,
	publicationText,
}

// Fragments returns one text fragment per resume section that has content.
// Fragments are independent units of work for the parallel extractor.
func Fragments(r *types.Resume) []string {
	fragments := make([]string, 0, len(sectionExtractors))
	for _, extract := range sectionExtractors {
		if text := joinNonEmpty(extract(r)); text != "" {
			fragments = append(fragments, text)
		}
	}
	return fragments
}

// ExtractText concatenates every free-text field of the resume, joining
// non-empty parts with single spaces.
func ExtractText(r *types.Resume) string {
	return joinNonEmpty(Fragments(r))
}

func summaryText(r *types.Resume) []string {
	return []string{r.Summary.Content, r.Summary.RawSummary}
}

func experienceText(r *types.Resume) []string {
	var parts []string
	for _, exp := range r.Experiences {
		parts = append(parts, exp.Description...)
		parts = append(parts, exp.RawDescription...)
		parts = append(parts, exp.Achievements...)
		parts = append(parts, exp.Technologies...)
	}
	return parts
}

func educationText(r *types.Resume) []string {
	var parts []string
	for _, edu := range r.Educations {
		parts = append(parts, edu.Description...)
		parts = append(parts, edu.RawDescription...)
		parts = append(parts, edu.Achievements...)
	}
	return parts
}

func skillText(r *types.Resume) []string {
	var parts []string
	for _, skill := range r.Skills {
		parts = append(parts, skill.Names...)
	}
	return parts
}

func projectText(r *types.Resume) []string {
	var parts []string
	for _, project := range r.Projects {
		parts = append(parts, project.Description...)
		parts = append(parts, project.RawDescription...)
		parts = append(parts, project.Technologies...)
		parts = append(parts, project.Achievements...)
	}
	return parts
}

func certificationText(r *types.Resume) []string {
	var parts []string
	for _, cert := range r.Certifications {
		parts = append(parts, cert.Description)
		parts = append(parts, cert.RawDescription...)
	}
	return parts
}

func languageText(r *types.Resume) []string {
	var parts []string
	for _, lang := range r.Languages {
		parts = append(parts, lang.Name)
	}
	return parts
}

func awardText(r *types.Resume) []string {
	var parts []string
	for _, award := range r.Awards {
		parts = append(parts, award.Description)
		parts = append(parts, award.RawDescription...)
	}
	return parts
}

func publicationText(r *types.Resume) []string {
	var parts []string
	for _, pub := range r.Publications {
		parts = append(parts, pub.Description)
		parts = append(parts, pub.RawDescription...)
	}
	return parts
}

// joinNonEmpty joins the non-empty parts with single spaces.
func joinNonEmpty(parts []string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}
