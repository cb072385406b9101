package testimonial

import (
	"net/url"
	"strings"
)

// Testimonial is a student review, stored at homeContent/testimonials/<id>.
// Band scores are conventionally 0-9 in 0.5 steps; the store does not
// enforce it.
type Testimonial struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Band      float64 `json:"band"`
	Comment   string  `json:"comment"`
	Image     string  `json:"image"`
	Course    string  `json:"course"`
	Date      string  `json:"date,omitempty"`
	IsActive  bool    `json:"isActive"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

type CreateTestimonialInput struct {
	Name     string  `json:"name"`
	Band     float64 `json:"band"`
	Comment  string  `json:"comment"`
	Image    string  `json:"image,omitempty"`
	Course   string  `json:"course,omitempty"`
	Date     string  `json:"date,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (in *CreateTestimonialInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Comment = strings.TrimSpace(in.Comment)
	in.Image = strings.TrimSpace(in.Image)
	in.Course = strings.TrimSpace(in.Course)
}

type UpdateTestimonialInput struct {
	Name     *string  `json:"name,omitempty"`
	Band     *float64 `json:"band,omitempty"`
	Comment  *string  `json:"comment,omitempty"`
	Image    *string  `json:"image,omitempty"`
	Course   *string  `json:"course,omitempty"`
	Date     *string  `json:"date,omitempty"`
	IsActive *bool    `json:"isActive,omitempty"`
}

func (in UpdateTestimonialInput) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.Name != nil {
		f["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Band != nil {
		f["band"] = *in.Band
	}
	if in.Comment != nil {
		f["comment"] = strings.TrimSpace(*in.Comment)
	}
	if in.Image != nil {
		f["image"] = strings.TrimSpace(*in.Image)
	}
	if in.Course != nil {
		f["course"] = strings.TrimSpace(*in.Course)
	}
	if in.Date != nil {
		f["date"] = *in.Date
	}
	if in.IsActive != nil {
		f["isActive"] = *in.IsActive
	}
	return f
}

// avatarURL is the fallback image for testimonials submitted without one.
func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name)
}
