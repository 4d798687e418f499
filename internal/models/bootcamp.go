package models

import "time"

// Careers a bootcamp may advertise.
const (
	CareerWebDevelopment    = "Web Development"
	CareerMobileDevelopment = "Mobile Development"
	CareerUIUX              = "UI/UX"
	CareerDataScience       = "Data Science"
	CareerBusiness          = "Business"
	CareerOther             = "Other"
)

// Careers lists every career value a bootcamp may carry.
var Careers = []string{
	CareerWebDevelopment,
	CareerMobileDevelopment,
	CareerUIUX,
	CareerDataScience,
	CareerBusiness,
	CareerOther,
}

// Bootcamp is a published training provider owned by a single user.
type Bootcamp struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" validate:"required,max=50"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description" validate:"required,max=500"`
	Website       string    `json:"website,omitempty" validate:"omitempty,url"`
	Phone         string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email         string    `json:"email,omitempty" validate:"omitempty,email"`
	Address       string    `json:"address" validate:"required"`
	Careers       []string  `json:"careers" validate:"required,min=1,dive,career"`
	Housing       bool      `json:"housing"`
	JobAssistance bool      `json:"job_assistance"`
	JobGuarantee  bool      `json:"job_guarantee"`
	AcceptGI      bool      `json:"accept_gi"`
	UserID        int64     `json:"user"`
	OwnerRole     Role      `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// OwnerID returns the id of the user that created the bootcamp.
func (b Bootcamp) OwnerID() int64 { return b.UserID }
