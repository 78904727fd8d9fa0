package dto

// PersonalInfo carries explicit contact details for cover letter
// generation. Empty fields fall back to the stored resume basics.
type PersonalInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
}

// CompanyInfo describes the target job for a cover letter.
type CompanyInfo struct {
	Position      string `json:"position"`
	CompanyName   string `json:"company_name"`
	Location      string `json:"location"`
	HiringManager string `json:"hiring_manager"`
	Department    string `json:"department"`
}

type CoverLetterRequest struct {
	FileID                        string         `json:"file_id"`
	ResumeJSON                    map[string]any `json:"resume_json"`
	JobDescription                string         `json:"job_description"`
	APIKey                        string         `json:"api_key"`
	ModelType                     string         `json:"model_type"`
	Model                         string         `json:"model"`
	IncludeAdditionalPersonalInfo bool           `json:"include_additional_personal_info"`
	PersonalInfo                  PersonalInfo   `json:"personal_info"`
	CompanyInfo                   CompanyInfo    `json:"company_info"`
}

type OptimizeResumeRequest struct {
	FileID          string         `json:"file_id"`
	ResumeJSON      map[string]any `json:"resume_json"`
	JobDescription  string         `json:"job_description"`
	APIKey          string         `json:"api_key"`
	ModelType       string         `json:"model_type"`
	Model           string         `json:"model"`
	Template        string         `json:"template"`
	SectionOrdering []string       `json:"section_ordering"`
	ImproveResume   *bool          `json:"improve_resume"`
}

// EnhanceRequest is the JSON form of the enhancement endpoint, used when the
// resume was already extracted instead of uploading a file again.
type EnhanceRequest struct {
	FileID         string         `json:"file_id"`
	ResumeJSON     map[string]any `json:"resume_json"`
	JobDescription string         `json:"job_description"`
	APIKey         string         `json:"api_key"`
	ModelType      string         `json:"model_type"`
	Model          string         `json:"model"`
}

// DefaultSectionOrdering is applied when an optimize request omits
// section_ordering.
var DefaultSectionOrdering = []string{"education", "work", "skills", "projects", "awards"}
