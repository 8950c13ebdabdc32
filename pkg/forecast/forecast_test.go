package forecast

import (
	"testing"
	"time"

	"github.com/ethpandaops/peerage/pkg/party"
	"github.com/ethpandaops/peerage/pkg/projection"
	"github.com/ethpandaops/peerage/pkg/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lifePeer builds a life peer whose every projection ends in exitYear
func lifePeer(name, partyName string, exitYear int) projection.Member {
	return projection.Member{
		Member: roster.Member{
			Name:       name,
			Party:      partyName,
			MemberFrom: roster.LifePeer,
		},
		Age75:       exitYear,
		Age80:       exitYear,
		Lifetime:    exitYear,
		HasLifetime: true,
	}
}

func hereditaryPeer(name, partyName string, exitYear int) projection.Member {
	m := lifePeer(name, partyName, exitYear)
	m.MemberFrom = "Hereditary"

	return m
}

func TestHeader(t *testing.T) {
	assert.Equal(t,
		[]string{"Year", "Total", "Bishop", "XBench", "Cons", "Labour", "LibDem", "Oth"},
		Header())
}

func TestSummarise_TwoLabourLifePeers(t *testing.T) {
	members := []projection.Member{
		lifePeer("A", "Labour", 2030),
		lifePeer("B", "Labour", 2035),
	}

	row, err := Summarise(2031, members, FactorAge80)
	require.NoError(t, err)
	assert.Equal(t, 2031, row.Year)
	assert.Equal(t, 1, row.Total)
	assert.Equal(t, 1, row.Groups[party.Labour])
	assert.Equal(t, 0, row.Other)

	row, err = Summarise(2036, members, FactorAge80)
	require.NoError(t, err)
	assert.Equal(t, 0, row.Total)
	assert.Equal(t, [party.Count]int{}, row.Groups)
	assert.Equal(t, 0, row.Other)
}

func TestSummarise_ExitYearIsInclusive(t *testing.T) {
	members := []projection.Member{lifePeer("A", "Crossbench", 2030)}

	row, err := Summarise(2030, members, FactorAge75)
	require.NoError(t, err)
	assert.Equal(t, 1, row.Total)

	row, err = Summarise(2031, members, FactorAge75)
	require.NoError(t, err)
	assert.Equal(t, 0, row.Total)
}

func TestSeated_NonLifeMembersAlwaysSeated(t *testing.T) {
	members := []projection.Member{
		hereditaryPeer("H", "Conservative", 1990),
		{Member: roster.Member{Name: "Bishop", Party: "Bishops", MemberFrom: "Bishops"}},
	}

	for _, factor := range []Factor{FactorLifetime, FactorAge75, FactorAge80} {
		for year := 2000; year < 2100; year++ {
			for i := range members {
				assert.True(t, Seated(&members[i], year, factor), "%s in %d under %s", members[i].Name, year, factor)
			}
		}
	}
}

func TestSeated_FactorSelectsProjection(t *testing.T) {
	m := projection.Member{
		Member:      roster.Member{MemberFrom: roster.LifePeer},
		Age75:       2030,
		Age80:       2035,
		Lifetime:    2040,
		HasLifetime: true,
	}

	assert.False(t, Seated(&m, 2031, FactorAge75))
	assert.True(t, Seated(&m, 2031, FactorAge80))
	assert.False(t, Seated(&m, 2036, FactorAge80))
	assert.True(t, Seated(&m, 2036, FactorLifetime))
	assert.False(t, Seated(&m, 2041, FactorLifetime))
}

func TestSummarise_OtherIsResidual(t *testing.T) {
	members := []projection.Member{
		lifePeer("A", "Labour", 2050),
		lifePeer("B", "Labour (Co-op)", 2050),
		lifePeer("C", "Non-affiliated", 2050),
		lifePeer("D", "Bishops", 2050),
		lifePeer("E", "Liberal Democrat", 2050),
		hereditaryPeer("F", "Conservative", 2000),
		hereditaryPeer("G", "Democratic Unionist Party", 2000),
	}

	row, err := Summarise(2040, members, FactorAge80)
	require.NoError(t, err)

	assert.Equal(t, 7, row.Total)
	assert.Equal(t, [party.Count]int{1, 0, 1, 1, 1}, row.Groups)
	assert.Equal(t, 3, row.Other)
}

func TestSummarise_Errors(t *testing.T) {
	members := []projection.Member{
		{Member: roster.Member{Name: "A", Party: "Labour", MemberFrom: roster.LifePeer}, Age75: 2030, Age80: 2035},
	}

	_, err := Summarise(2030, members, FactorLifetime)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLifetimeNotProjected)

	_, err = Summarise(2030, members, Factor(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFactor)
}

func TestRun(t *testing.T) {
	members := []projection.Member{
		lifePeer("A", "Labour", 2030),
		lifePeer("B", "Crossbench", 2050),
		lifePeer("C", "Conservative", 2070),
		lifePeer("D", "Green Party", 2026),
		hereditaryPeer("E", "Crossbench", 2000),
		hereditaryPeer("F", "UKIP", 2000),
	}

	for _, factor := range []Factor{FactorLifetime, FactorAge75, FactorAge80} {
		t.Run(factor.String(), func(t *testing.T) {
			rows, err := Run(2024, members, factor)
			require.NoError(t, err)
			require.Len(t, rows, Horizon)

			assert.Equal(t, 2024, rows[0].Year)
			assert.Equal(t, 2068, rows[len(rows)-1].Year)

			for i, row := range rows {
				assert.Equal(t, 2024+i, row.Year)

				sum := row.Other
				for _, count := range row.Groups {
					sum += count
				}
				assert.Equal(t, row.Total, sum, "year %d", row.Year)
				assert.GreaterOrEqual(t, row.Other, 0, "year %d", row.Year)

				if i > 0 {
					assert.LessOrEqual(t, row.Total, rows[i-1].Total, "year %d", row.Year)
				}
			}

			assert.Equal(t, 6, rows[0].Total)
			// Non-life members remain at the end of the horizon.
			last := rows[len(rows)-1]
			assert.Equal(t, 3, last.Total)
			assert.Equal(t, 1, last.Groups[party.Crossbench])
			assert.Equal(t, 1, last.Groups[party.Conservative])
			assert.Equal(t, 1, last.Other)
		})
	}
}

func TestRun_FromCalculator(t *testing.T) {
	today := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	calc := projection.NewCalculator(today, nil)

	members, err := calc.ProjectAll([]roster.Member{
		{Name: "Old", Party: "Labour", MemberFrom: roster.LifePeer, DateOfBirth: time.Date(1945, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{Name: "Young", Party: "Labour", MemberFrom: roster.LifePeer, DateOfBirth: time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	rows, err := Run(today.Year(), members, FactorAge75)
	require.NoError(t, err)

	// The older peer passed 75 before the run year.
	assert.Equal(t, 1, rows[0].Total)

	rows, err = Run(today.Year(), members, FactorAge80)
	require.NoError(t, err)
	assert.Equal(t, 2, rows[2].Total)
	assert.Equal(t, 1, rows[3].Total)
}

func TestRun_Errors(t *testing.T) {
	rows, err := Run(2024, []projection.Member{lifePeer("A", "Labour", 2030)}, Factor(-1))
	require.Error(t, err)
	assert.Nil(t, rows)
}

func TestParseFactor(t *testing.T) {
	for _, f := range []Factor{FactorLifetime, FactorAge75, FactorAge80} {
		got, err := ParseFactor(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFactor("age90")
	assert.ErrorIs(t, err, ErrUnknownFactor)

	assert.True(t, FactorLifetime.NeedsLifeTable())
	assert.False(t, FactorAge75.NeedsLifeTable())
	assert.False(t, FactorAge80.NeedsLifeTable())
}
