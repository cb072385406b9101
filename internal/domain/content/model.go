package content

import "strings"

// HomeContent and ContactInfo are singleton records: one per site, stored at
// a fixed path with no id.

type HomeContent struct {
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	AboutText    string `json:"aboutText"`
}

func (h *HomeContent) Trim() {
	h.HeroTitle = strings.TrimSpace(h.HeroTitle)
	h.HeroSubtitle = strings.TrimSpace(h.HeroSubtitle)
	h.AboutText = strings.TrimSpace(h.AboutText)
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Facebook string `json:"facebook,omitempty"`
}

func (c *ContactInfo) Trim() {
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.Facebook = strings.TrimSpace(c.Facebook)
}
