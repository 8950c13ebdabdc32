// Package forecast tabulates projected membership by year and party
package forecast

import (
	"fmt"

	"github.com/ethpandaops/peerage/pkg/party"
	"github.com/ethpandaops/peerage/pkg/projection"
)

// Horizon is the number of years covered by a forecast, starting at the run year
const Horizon = 45

// Row is the projected membership for one year
type Row struct {
	Year  int
	Total int
	// Groups holds counts per tracked party in party display order
	Groups [party.Count]int
	Other  int
}

// Header returns the column labels matching Row
func Header() []string {
	return append([]string{"Year", "Total"}, party.Labels()...)
}

// Seated reports whether m still sits in year under factor. Only life peers
// are subject to the projection; every other member is always seated.
func Seated(m *projection.Member, year int, factor Factor) bool {
	return factor.Year(m) >= year || !m.IsLifePeer()
}

// Summarise counts the members seated in year
func Summarise(year int, members []projection.Member, factor Factor) (Row, error) {
	if err := factor.validate(members); err != nil {
		return Row{}, err
	}

	return summarise(year, members, factor)
}

func summarise(year int, members []projection.Member, factor Factor) (Row, error) {
	row := Row{Year: year}

	for i := range members {
		m := &members[i]
		if !Seated(m, year, factor) {
			continue
		}

		row.Total++

		if g, ok := party.Classify(m.Party); ok {
			row.Groups[g]++
		}
	}

	named := 0
	for _, count := range row.Groups {
		named += count
	}

	row.Other = row.Total - named
	if row.Other < 0 {
		return Row{}, fmt.Errorf("%w: year %d total %d named %d", ErrNegativeResidual, year, row.Total, named)
	}

	return row, nil
}

// Run produces one row per year from runYear through runYear+Horizon-1
func Run(runYear int, members []projection.Member, factor Factor) ([]Row, error) {
	if err := factor.validate(members); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, Horizon)

	for i := 0; i < Horizon; i++ {
		row, err := summarise(runYear+i, members, factor)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}
