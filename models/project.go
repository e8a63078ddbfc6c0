package models

import "github.com/google/uuid"

// Icon names one of the glyphs the portfolio UI knows how to draw.
type Icon string

const (
	IconCalendar      Icon = "calendar"
	IconBriefcase     Icon = "briefcase"
	IconRocket        Icon = "rocket"
	IconGem           Icon = "gem"
	IconRoute         Icon = "route"
	IconLeaf          Icon = "leaf"
	IconGraduationCap Icon = "graduation-cap"
	IconShield        Icon = "shield-alt"
)

var knownIcons = map[Icon]struct{}{
	IconCalendar:      {},
	IconBriefcase:     {},
	IconRocket:        {},
	IconGem:           {},
	IconRoute:         {},
	IconLeaf:          {},
	IconGraduationCap: {},
	IconShield:        {},
}

// Valid reports whether the icon is one the UI can render.
func (i Icon) Valid() bool {
	_, ok := knownIcons[i]
	return ok
}

// Project is a portfolio entry shown on the projects page.
// Projects are written once when the catalog is seeded and never changed afterwards.
// The color fields carry CSS utility classes consumed verbatim by the UI.
type Project struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	Category      string    `json:"category" db:"category"`
	Tags          []string  `json:"tags" db:"tags"`
	Details       string    `json:"details" db:"details"`
	Subject       string    `json:"subject" db:"subject"`
	Icon          Icon      `json:"icon" db:"icon"`
	BgColor       string    `json:"bgColor" db:"bg_color"`
	IconColor     string    `json:"iconColor" db:"icon_color"`
	CategoryColor string    `json:"categoryColor" db:"category_color"`
}
