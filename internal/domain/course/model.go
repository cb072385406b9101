package course

import "strings"

// Category values are part of the stored record contract.
const (
	CategoryFullCourses   = "full-courses"
	CategoryPracticeTests = "practice-tests"
	CategorySpecialized   = "specialized"
	CategoryAll           = "all"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryFullCourses, CategoryPracticeTests, CategorySpecialized, CategoryAll:
		return true
	}
	return false
}

// Course is stored at courses/<id>; the id is the store key, not part of the
// stored body.
type Course struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration,omitempty"`
	Schedule    string   `json:"schedule,omitempty"`
	Fee         string   `json:"fee"`
	Syllabus    []string `json:"syllabus"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Location    string   `json:"location,omitempty"`
	Contact     string   `json:"contact,omitempty"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

type CreateCourseInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration,omitempty"`
	Schedule    string   `json:"schedule,omitempty"`
	Fee         string   `json:"fee"`
	Syllabus    []string `json:"syllabus,omitempty"`
	Features    []string `json:"features,omitempty"`
	Popular     bool     `json:"popular,omitempty"`
	Image       string   `json:"image,omitempty"`
	Category    string   `json:"category"`
	Location    string   `json:"location,omitempty"`
	Contact     string   `json:"contact,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

func (in *CreateCourseInput) Trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Fee = strings.TrimSpace(in.Fee)
	in.Category = strings.TrimSpace(in.Category)
	in.Image = strings.TrimSpace(in.Image)
}

type UpdateCourseInput struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Duration    *string   `json:"duration,omitempty"`
	Schedule    *string   `json:"schedule,omitempty"`
	Fee         *string   `json:"fee,omitempty"`
	Syllabus    *[]string `json:"syllabus,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	Popular     *bool     `json:"popular,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Contact     *string   `json:"contact,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
}

func (in *UpdateCourseInput) Trim() {
	if in.Title != nil {
		*in.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}
	if in.Fee != nil {
		*in.Fee = strings.TrimSpace(*in.Fee)
	}
	if in.Category != nil {
		*in.Category = strings.TrimSpace(*in.Category)
	}
}

// Fields converts the patch to the merge map written to the store. Only the
// fields the caller actually sent are included.
func (in UpdateCourseInput) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.Title != nil {
		f["title"] = *in.Title
	}
	if in.Description != nil {
		f["description"] = *in.Description
	}
	if in.Duration != nil {
		f["duration"] = *in.Duration
	}
	if in.Schedule != nil {
		f["schedule"] = *in.Schedule
	}
	if in.Fee != nil {
		f["fee"] = *in.Fee
	}
	if in.Syllabus != nil {
		f["syllabus"] = *in.Syllabus
	}
	if in.Features != nil {
		f["features"] = *in.Features
	}
	if in.Popular != nil {
		f["popular"] = *in.Popular
	}
	if in.Image != nil {
		f["image"] = *in.Image
	}
	if in.Category != nil {
		f["category"] = *in.Category
	}
	if in.Location != nil {
		f["location"] = *in.Location
	}
	if in.Contact != nil {
		f["contact"] = *in.Contact
	}
	if in.IsActive != nil {
		f["isActive"] = *in.IsActive
	}
	return f
}
