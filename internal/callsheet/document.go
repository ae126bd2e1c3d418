// Package callsheet assembles the logistics document distributed to a
// production's crew and renders it as a paginated PDF.
package callsheet

import (
	"time"

	"shoot-planner-backend/internal/database/models"
	"shoot-planner-backend/internal/timefmt"
)

// TBD is the literal fallback shown for absent optional fields
const TBD = "TBD"

// Field is one labeled value in the document
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CrewRow is one line of the crew table
type CrewRow struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	CallTime string `json:"call_time"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// LookRow is one entry of the numbered look list
type LookRow struct {
	Number       int    `json:"number"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	StylingNotes string `json:"styling_notes,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

// Document is the assembled call sheet. Crew and Looks are omitted
// entirely when empty; every other optional field falls back to TBD.
type Document struct {
	ProductionName  string    `json:"production_name"`
	ShootDate       string    `json:"shoot_date"`
	CallTime        string    `json:"call_time"`
	WrapTime        string    `json:"wrap_time"`
	Info            []Field   `json:"info"`
	LocationName    string    `json:"location_name"`
	LocationAddress string    `json:"location_address"`
	Crew            []CrewRow `json:"crew,omitempty"`
	Looks           []LookRow `json:"looks,omitempty"`
	Emergency       []Field   `json:"emergency"`
	Notes           string    `json:"notes,omitempty"`
	Footer          string    `json:"footer,omitempty"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// Assemble composes a call sheet from current state. Assembly is pure
// presentation: no field of any input is modified.
func Assemble(production *models.Production, crew []models.CrewMember, looks []models.Look, footer string, now time.Time) *Document {
	doc := &Document{
		ProductionName:  production.Name,
		ShootDate:       orTBD(shootDateLabel(production.ShootDate)),
		CallTime:        orTBD(timefmt.TimeLabel(production.CallTime)),
		WrapTime:        orTBD(timefmt.TimeLabel(production.WrapTime)),
		LocationName:    orTBD(production.Location),
		LocationAddress: orTBD(production.LocationAddress),
		Notes:           production.Notes,
		Footer:          footer,
		GeneratedAt:     now,
	}

	doc.Info = []Field{
		{Label: "Production", Value: production.Name},
		{Label: "Shoot Date", Value: doc.ShootDate},
		{Label: "Call Time", Value: doc.CallTime},
		{Label: "Wrap Time", Value: doc.WrapTime},
		{Label: "Contact", Value: orTBD(production.ContactName)},
		{Label: "Contact Phone", Value: orTBD(production.ContactPhone)},
		{Label: "Contact Email", Value: orTBD(production.ContactEmail)},
	}

	for _, member := range crew {
		callTime := timefmt.TimeLabel(member.CallTime)
		if callTime == "" {
			callTime = orTBD(doc.CallTime)
		}
		doc.Crew = append(doc.Crew, CrewRow{
			Name:     member.Name,
			Role:     orTBD(member.Role),
			CallTime: callTime,
			Phone:    orTBD(member.Phone),
			Email:    orTBD(member.Email),
		})
	}

	for i, look := range looks {
		doc.Looks = append(doc.Looks, LookRow{
			Number:       i + 1,
			Name:         look.Name,
			Description:  look.Description,
			StylingNotes: look.StylingNotes,
			ImageURL:     look.ImageURL,
		})
	}

	doc.Emergency = []Field{
		{Label: "Emergency Contact", Value: orTBD(production.EmergencyName)},
		{Label: "Emergency Phone", Value: orTBD(production.EmergencyPhone)},
	}

	return doc
}

func shootDateLabel(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format("Monday, January 2, 2006")
}

func orTBD(value string) string {
	if value == "" {
		return TBD
	}
	return value
}
