// Package formatting lints the structural fields of a resume for defects
// that hurt automated screening. No NLP is involved; the rules are pure and
// total over the resume structure.
package formatting

import (
	"fmt"

	"github.com/link-verse-ai/ATS-score-checker/internal/types"
)

// maxExperienceEntries bounds how many experience entries a resume should carry.
const maxExperienceEntries = 5

// Analyze evaluates every formatting rule against the resume and returns all
// applicable warnings. Rules are independent and never short-circuit.
func Analyze(resume *types.Resume) []string {
	warnings := make([]string, 0)

	if len(resume.Experiences) > maxExperienceEntries {
		warnings = append(warnings, "Too many experience entries; ATS may prioritize recent roles. Limit to 5.")
	}

	if len(resume.Skills) == 0 {
		warnings = append(warnings, "Skills section is empty; ATS relies heavily on skills keywords.")
	}

	for _, exp := range resume.Experiences {
		if len(exp.Achievements) == 0 {
			warnings = append(warnings, fmt.Sprintf("Experience at %s lacks achievements; add measurable outcomes.", exp.Company))
		}
	}

	return warnings
}
