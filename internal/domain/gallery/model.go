package gallery

import "strings"

const (
	CategoryClassroom    = "classroom"
	CategoryEvents       = "events"
	CategoryAchievements = "achievements"
	CategoryFacilities   = "facilities"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryClassroom, CategoryEvents, CategoryAchievements, CategoryFacilities:
		return true
	}
	return false
}

// Image is stored at homeContent/gallery/<id>.
type Image struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type CreateImageInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

func (in *CreateImageInput) Trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.URL = strings.TrimSpace(in.URL)
	in.Category = strings.TrimSpace(in.Category)
}

type UpdateImageInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (in UpdateImageInput) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.Title != nil {
		f["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		f["description"] = strings.TrimSpace(*in.Description)
	}
	if in.URL != nil {
		f["url"] = strings.TrimSpace(*in.URL)
	}
	if in.Category != nil {
		f["category"] = strings.TrimSpace(*in.Category)
	}
	if in.IsActive != nil {
		f["isActive"] = *in.IsActive
	}
	return f
}
