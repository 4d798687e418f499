package models

import "time"

// Skill levels accepted for Course.MinimumSkill.
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

// BootcampSummary is the subset of a bootcamp embedded in course listings.
type BootcampSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Course belongs to a bootcamp and is owned by the user who added it.
type Course struct {
	ID                   int64            `json:"id"`
	Title                string           `json:"title" validate:"required,max=100"`
	Description          string           `json:"description" validate:"required"`
	Weeks                int              `json:"weeks" validate:"required,gt=0"`
	Tuition              float64          `json:"tuition" validate:"gte=0"`
	MinimumSkill         string           `json:"minimum_skill" validate:"required,oneof=beginner intermediate advanced"`
	ScholarshipAvailable bool             `json:"scholarship_available"`
	BootcampID           int64            `json:"bootcamp_id"`
	Bootcamp             *BootcampSummary `json:"bootcamp,omitempty"`
	UserID               int64            `json:"user"`
	CreatedAt            time.Time        `json:"created_at"`
}

// OwnerID returns the id of the user that added the course.
func (c Course) OwnerID() int64 { return c.UserID }
