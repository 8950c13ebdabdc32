// Package projection computes when each member would leave the chamber
// under the supported retirement rules.
package projection

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethpandaops/peerage/pkg/roster"
)

// Retirement ages for the fixed-age rules
const (
	RetirementAge75 = 75
	RetirementAge80 = 80
)

// ErrBornAfterRunDate is returned for a date of birth later than the run date
var ErrBornAfterRunDate = errors.New("date of birth is after the run date")

// Expectancy looks up expected remaining years of life
type Expectancy interface {
	Lookup(age int, gender string) (float64, error)
}

// Member is a roster member with derived age and exit years
type Member struct {
	roster.Member

	Age   int
	Age75 int
	Age80 int

	// Lifetime is only meaningful when HasLifetime is set
	Lifetime    int
	HasLifetime bool
}

// Calculator projects members relative to a fixed run date
type Calculator struct {
	today time.Time
	table Expectancy
}

// NewCalculator creates a calculator. A nil table skips lifetime projections.
func NewCalculator(today time.Time, table Expectancy) *Calculator {
	return &Calculator{
		today: today,
		table: table,
	}
}

// Age returns completed years between born and today
func Age(born, today time.Time) int {
	age := today.Year() - born.Year()

	if today.Month() < born.Month() || (today.Month() == born.Month() && today.Day() < born.Day()) {
		age--
	}

	return age
}

// Project derives the age and exit years of m
func (c *Calculator) Project(m roster.Member) (Member, error) {
	age := Age(m.DateOfBirth, c.today)
	if age < 0 {
		return Member{}, fmt.Errorf("%w: %s born %s", ErrBornAfterRunDate, m.Name, m.DateOfBirth.Format(time.DateOnly))
	}

	year := c.today.Year()
	p := Member{
		Member: m,
		Age:    age,
		Age75:  year + RetirementAge75 - age,
		Age80:  year + RetirementAge80 - age,
	}

	if c.table != nil {
		remaining, err := c.table.Lookup(age, m.Gender)
		if err != nil {
			return Member{}, fmt.Errorf("life expectancy for %s: %w", m.Name, err)
		}

		p.Lifetime = int(float64(year) + remaining)
		p.HasLifetime = true
	}

	return p, nil
}

// ProjectAll projects every member, failing on the first error
func (c *Calculator) ProjectAll(members []roster.Member) ([]Member, error) {
	projected := make([]Member, 0, len(members))

	for _, m := range members {
		p, err := c.Project(m)
		if err != nil {
			return nil, err
		}

		projected = append(projected, p)
	}

	return projected, nil
}
