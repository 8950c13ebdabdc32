package roster

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

const dateOfBirthLayout = "2006-01-02"

// document is the top-level element. Every child element is a member.
type document struct {
	XMLName xml.Name
	Members []memberElement `xml:",any"`
}

type memberElement struct {
	XMLName     xml.Name
	Gender      *string `xml:"Gender"`
	DateOfBirth *string `xml:"DateOfBirth"`
	Party       *string `xml:"Party"`
	DisplayAs   *string `xml:"DisplayAs"`
	MemberFrom  *string `xml:"MemberFrom"`
}

// Decode parses a member document
func Decode(r io.Reader) ([]Member, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	members := make([]Member, 0, len(doc.Members))
	for i := range doc.Members {
		m, err := doc.Members[i].toMember()
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}

		members = append(members, m)
	}

	return members, nil
}

func (e *memberElement) toMember() (Member, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"Gender", e.Gender},
		{"DateOfBirth", e.DateOfBirth},
		{"Party", e.Party},
		{"DisplayAs", e.DisplayAs},
		{"MemberFrom", e.MemberFrom},
	}
	for _, f := range fields {
		if f.value == nil {
			return Member{}, fmt.Errorf("%w: %s", ErrMissingElement, f.name)
		}
	}

	dob, err := parseDateOfBirth(*e.DateOfBirth)
	if err != nil {
		return Member{}, fmt.Errorf("%s: %w", *e.DisplayAs, err)
	}

	return Member{
		Name:        *e.DisplayAs,
		Gender:      *e.Gender,
		DateOfBirth: dob,
		Party:       *e.Party,
		MemberFrom:  *e.MemberFrom,
	}, nil
}

// parseDateOfBirth reads the date prefix of a timestamp such as
// 1945-06-15T00:00:00.
func parseDateOfBirth(s string) (time.Time, error) {
	if len(s) < len(dateOfBirthLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateOfBirth, s)
	}

	dob, err := time.Parse(dateOfBirthLayout, s[:len(dateOfBirthLayout)])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateOfBirth, s)
	}

	return dob, nil
}
