package dto

// BootcampRequest carries a create or partial-update payload. Nil fields are left untouched.
type BootcampRequest struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Website       *string   `json:"website"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	Address       *string   `json:"address"`
	Careers       *[]string `json:"careers"`
	Housing       *bool     `json:"housing"`
	JobAssistance *bool     `json:"job_assistance"`
	JobGuarantee  *bool     `json:"job_guarantee"`
	AcceptGI      *bool     `json:"accept_gi"`
}

// CourseRequest carries a create or partial-update payload. Nil fields are left untouched.
type CourseRequest struct {
	Title                *string  `json:"title"`
	Description          *string  `json:"description"`
	Weeks                *int     `json:"weeks"`
	Tuition              *float64 `json:"tuition"`
	MinimumSkill         *string  `json:"minimum_skill"`
	ScholarshipAvailable *bool    `json:"scholarship_available"`
}
