// Package types provides type definitions for structured data used throughout the ATS checker.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ContactInfo holds the candidate's contact details.
type ContactInfo struct {
	FullName      string            `json:"fullName" validate:"required,min=1"`
	Email         string            `json:"email" validate:"required,email"`
	Phone         string            `json:"phone" validate:"required"`
	Address       string            `json:"address"`
	City          string            `json:"city"`
	State         string            `json:"state"`
	ZipCode       string            `json:"zipCode"`
	Country       string            `json:"country"`
	LinkedIn      string            `json:"linkedIn,omitempty" validate:"omitempty,url"`
	Github        string            `json:"github,omitempty" validate:"omitempty,url"`
	Portfolio     string            `json:"portfolio,omitempty" validate:"omitempty,url"`
	OtherWebsites map[string]string `json:"otherWebsites,omitempty"`
}

// Summary holds the free-text professional summary.
type Summary struct {
	Content    string `json:"content"`
	RawSummary string `json:"rawSummary"`
}

// Experience represents one work experience entry.
type Experience struct {
	Position       string   `json:"position"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate,omitempty"`
	Current        bool     `json:"current"`
	Description    []string `json:"description"`
	RawDescription []string `json:"rawDescription"`
	Achievements   []string `json:"achievements"`
	Technologies   []string `json:"technologies"`
}

// Education represents one education entry.
type Education struct {
	Institution    string   `json:"institution"`
	Degree         string   `json:"degree"`
	FieldOfStudy   string   `json:"fieldOfStudy"`
	Location       string   `json:"location"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate,omitempty"`
	Minor          string   `json:"minor,omitempty"`
	Current        bool     `json:"current"`
	GPA            string   `json:"gpa,omitempty"`
	Description    []string `json:"description"`
	RawDescription []string `json:"rawDescription"`
	Achievements   []string `json:"achievements"`
}

// Skill groups related skill names under a category.
type Skill struct {
	Names    []string `json:"names"`
	Category string   `json:"category"`
}

// Project represents one project entry.
type Project struct {
	Title          string   `json:"title"`
	Description    []string `json:"description"`
	RawDescription []string `json:"rawDescription"`
	Role           string   `json:"role"`
	Organization   string   `json:"organization"`
	URL            string   `json:"url,omitempty"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate,omitempty"`
	Current        bool     `json:"current"`
	Technologies   []string `json:"technologies"`
	Achievements   []string `json:"achievements"`
}

// Certification represents one certification entry.
type Certification struct {
	Name           string   `json:"name"`
	Issuer         string   `json:"issuer"`
	IssueDate      string   `json:"issueDate"`
	ExpiryDate     string   `json:"expiryDate,omitempty"`
	CredentialID   string   `json:"credentialId,omitempty"`
	CredentialURL  string   `json:"credentialUrl,omitempty"`
	Description    string   `json:"description,omitempty"`
	RawDescription []string `json:"rawDescription"`
}

// Language represents one spoken language entry.
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Award represents one award entry.
type Award struct {
	Title          string   `json:"title"`
	Issuer         string   `json:"issuer"`
	Date           string   `json:"date"`
	Description    string   `json:"description,omitempty"`
	RawDescription []string `json:"rawDescription"`
}

// Publication represents one publication entry.
type Publication struct {
	Title           string   `json:"title"`
	Publisher       string   `json:"publisher"`
	PublicationDate string   `json:"publicationDate"`
	Authors         []string `json:"authors"`
	URL             string   `json:"url,omitempty"`
	Description     string   `json:"description,omitempty"`
	RawDescription  []string `json:"rawDescription"`
}

// Resume is the structured resume document submitted for scoring,
// together with the targeting fields for the job being applied to.
type Resume struct {
	JobDescription string          `json:"jobDescription"`
	TargetPosition string          `json:"targetPosition"`
	TargetCompany  string          `json:"targetCompany"`
	ContactInfo    ContactInfo     `json:"contactInfo" validate:"required"`
	Summary        Summary         `json:"summary"`
	Experiences    []Experience    `json:"experiences"`
	Educations     []Education     `json:"educations"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Awards         []Award         `json:"awards"`
	Publications   []Publication   `json:"publications"`
}

// Validate validates the Resume using the validator.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
