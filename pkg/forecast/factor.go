package forecast

import (
	"fmt"

	"github.com/ethpandaops/peerage/pkg/projection"
)

// Factor selects which projected exit year decides whether a member is seated
type Factor int

// Supported factors
const (
	FactorLifetime Factor = iota
	FactorAge75
	FactorAge80
)

// String returns the factor name used in logs and metrics
func (f Factor) String() string {
	switch f {
	case FactorLifetime:
		return "lifetime"
	case FactorAge75:
		return "age75"
	case FactorAge80:
		return "age80"
	default:
		return fmt.Sprintf("factor(%d)", int(f))
	}
}

// ParseFactor maps a factor name to a Factor
func ParseFactor(s string) (Factor, error) {
	for _, f := range []Factor{FactorLifetime, FactorAge75, FactorAge80} {
		if f.String() == s {
			return f, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFactor, s)
}

// NeedsLifeTable reports whether the factor reads life expectancy data
func (f Factor) NeedsLifeTable() bool {
	return f == FactorLifetime
}

// Year returns the exit year the factor selects for m
func (f Factor) Year(m *projection.Member) int {
	switch f {
	case FactorLifetime:
		return m.Lifetime
	case FactorAge75:
		return m.Age75
	default:
		return m.Age80
	}
}

func (f Factor) validate(members []projection.Member) error {
	switch f {
	case FactorAge75, FactorAge80:
		return nil
	case FactorLifetime:
		for i := range members {
			if !members[i].HasLifetime {
				return fmt.Errorf("%w: %s", ErrLifetimeNotProjected, members[i].Name)
			}
		}

		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFactor, int(f))
	}
}
