package teacher

import "strings"

// Specializations match the four IELTS skills plus the all-rounder.
const (
	SpecListening = "Listening"
	SpecReading   = "Reading"
	SpecWriting   = "Writing"
	SpecSpeaking  = "Speaking"
	SpecAllSkills = "All Skills"
)

func ValidSpecialization(s string) bool {
	switch s {
	case SpecListening, SpecReading, SpecWriting, SpecSpeaking, SpecAllSkills:
		return true
	}
	return false
}

// Teacher is stored at teachers/<id>.
type Teacher struct {
	ID             string   `json:"id,omitempty"`
	Name           string   `json:"name"`
	Image          string   `json:"image"`
	Qualification  string   `json:"qualification"`
	Specialization string   `json:"specialization"`
	Experience     int      `json:"experience"`
	Bio            string   `json:"bio"`
	Achievements   []string `json:"achievements"`
	Email          string   `json:"email"`
	IsActive       bool     `json:"isActive"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
}

type CreateTeacherInput struct {
	Name           string   `json:"name"`
	Image          string   `json:"image,omitempty"`
	Qualification  string   `json:"qualification,omitempty"`
	Specialization string   `json:"specialization"`
	Experience     int      `json:"experience,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`
	Email          string   `json:"email,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
}

func (in *CreateTeacherInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Qualification = strings.TrimSpace(in.Qualification)
	in.Specialization = strings.TrimSpace(in.Specialization)
	in.Bio = strings.TrimSpace(in.Bio)
	in.Email = strings.TrimSpace(in.Email)
}

type UpdateTeacherInput struct {
	Name           *string   `json:"name,omitempty"`
	Image          *string   `json:"image,omitempty"`
	Qualification  *string   `json:"qualification,omitempty"`
	Specialization *string   `json:"specialization,omitempty"`
	Experience     *int      `json:"experience,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	Achievements   *[]string `json:"achievements,omitempty"`
	Email          *string   `json:"email,omitempty"`
	IsActive       *bool     `json:"isActive,omitempty"`
}

func (in UpdateTeacherInput) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.Name != nil {
		f["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Image != nil {
		f["image"] = strings.TrimSpace(*in.Image)
	}
	if in.Qualification != nil {
		f["qualification"] = strings.TrimSpace(*in.Qualification)
	}
	if in.Specialization != nil {
		f["specialization"] = strings.TrimSpace(*in.Specialization)
	}
	if in.Experience != nil {
		f["experience"] = *in.Experience
	}
	if in.Bio != nil {
		f["bio"] = strings.TrimSpace(*in.Bio)
	}
	if in.Achievements != nil {
		f["achievements"] = *in.Achievements
	}
	if in.Email != nil {
		f["email"] = strings.TrimSpace(*in.Email)
	}
	if in.IsActive != nil {
		f["isActive"] = *in.IsActive
	}
	return f
}
