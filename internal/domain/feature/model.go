package feature

import "strings"

// Feature is a home-page highlight card, stored at homeContent/features/<id>.
type Feature struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"isActive"`
	Order       int    `json:"order"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type CreateFeatureInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

func (in *CreateFeatureInput) Trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Icon = strings.TrimSpace(in.Icon)
}

type UpdateFeatureInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (in UpdateFeatureInput) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.Title != nil {
		f["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		f["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Icon != nil {
		f["icon"] = strings.TrimSpace(*in.Icon)
	}
	if in.Order != nil {
		f["order"] = *in.Order
	}
	if in.IsActive != nil {
		f["isActive"] = *in.IsActive
	}
	return f
}
