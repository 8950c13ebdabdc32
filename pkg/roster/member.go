// Package roster fetches and decodes the current membership of the chamber
package roster

import (
	"context"
	"time"
)

// LifePeer is the MemberFrom value of members appointed for life
const LifePeer = "Life peer"

// Gender values as published in member records
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Member is one seated member at fetch time
type Member struct {
	Name        string
	Gender      string
	DateOfBirth time.Time
	Party       string
	MemberFrom  string
}

// IsLifePeer reports whether the member holds a life appointment
func (m *Member) IsLifePeer() bool {
	return m.MemberFrom == LifePeer
}

// Source provides the current list of members
type Source interface {
	// Members returns every member listed by the source
	Members(ctx context.Context) ([]Member, error)
}
