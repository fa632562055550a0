package domain

import "time"

// Major is one field of study offered by the institution.
type Major struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	CareerProspects []string  `json:"careerProspects"`
	RequiredSkills  []string  `json:"requiredSkills"`
	Subjects        []string  `json:"subjects"`
	TuitionInfo     string    `json:"tuitionInfo,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ScrapedProgram is a training-program entry lifted from the school site.
type ScrapedProgram struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}
