package model

// HeroSection is the landing-page banner managed under web-content.
type HeroSection struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTALabel string `json:"cta_label"`
	CTALink  string `json:"cta_link"`
	Image    string `json:"image"`
}

// CommonSection is a reorderable named content block on the public site.
type CommonSection struct {
	ID       uint   `json:"id"`
	Key      string `json:"key"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Position int    `json:"position"`
	IsActive bool   `json:"is_active"`
}
