// Package resume extracts structured candidate data from raw resume text
// using an LLM, with a content-addressed cache so repeated uploads of the
// same document skip the model call.
package resume

// ContactInfo holds the candidate's contact details. Only the name is
// guaranteed present.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

type Experience struct {
	Company     string   `json:"company"`
	Title       string   `json:"title"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
}

// ParsedResume is the structured extraction result. RawText always carries
// the original text so downstream prompts can fall back to it.
type ParsedResume struct {
	Contact        ContactInfo  `json:"contact"`
	Summary        string       `json:"summary,omitempty"`
	Experiences    []Experience `json:"experiences"`
	Education      []Education  `json:"education"`
	Skills         []string     `json:"skills"`
	Certifications []string     `json:"certifications,omitempty"`
	RawText        string       `json:"raw_text"`
}
