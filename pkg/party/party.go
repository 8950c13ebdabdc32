// Package party classifies member affiliations into the tracked groups
package party

// Group is one of the tracked affiliation groups
type Group int

// Tracked groups in display order
const (
	Bishops Group = iota
	Crossbench
	Conservative
	Labour
	LiberalDemocrat
)

// Count is the number of tracked groups
const Count = 5

// OtherLabel is the column label for members outside the tracked groups
const OtherLabel = "Oth"

//nolint:gochecknoglobals // Fixed lookup table
var groups = [Count]struct {
	name  string
	label string
}{
	Bishops:         {name: "Bishops", label: "Bishop"},
	Crossbench:      {name: "Crossbench", label: "XBench"},
	Conservative:    {name: "Conservative", label: "Cons"},
	Labour:          {name: "Labour", label: "Labour"},
	LiberalDemocrat: {name: "Liberal Democrat", label: "LibDem"},
}

// All returns the tracked groups in display order
func All() []Group {
	return []Group{Bishops, Crossbench, Conservative, Labour, LiberalDemocrat}
}

// Name returns the party name as it appears in member records
func (g Group) Name() string {
	if !g.valid() {
		return ""
	}

	return groups[g].name
}

// Label returns the short column label
func (g Group) Label() string {
	if !g.valid() {
		return OtherLabel
	}

	return groups[g].label
}

func (g Group) String() string {
	return g.Label()
}

func (g Group) valid() bool {
	return g >= 0 && int(g) < Count
}

// Classify maps a party name to a tracked group. The match is exact; any
// other name reports false and belongs to the Other bucket.
func Classify(name string) (Group, bool) {
	for i := range groups {
		if groups[i].name == name {
			return Group(i), true
		}
	}

	return 0, false
}

// Labels returns the group labels in display order followed by OtherLabel
func Labels() []string {
	labels := make([]string, 0, Count+1)
	for _, g := range All() {
		labels = append(labels, g.Label())
	}

	return append(labels, OtherLabel)
}
