package projection

// MockExpectancy is a mock implementation of Expectancy for testing
type MockExpectancy struct {
	// Control behavior
	LookupFunc func(age int, gender string) (float64, error)

	// Track calls for assertions
	LookupCalls []LookupCall
}

// LookupCall records a Lookup method call
type LookupCall struct {
	Age    int
	Gender string
}

// Lookup implements Expectancy
func (m *MockExpectancy) Lookup(age int, gender string) (float64, error) {
	m.LookupCalls = append(m.LookupCalls, LookupCall{Age: age, Gender: gender})

	if m.LookupFunc != nil {
		return m.LookupFunc(age, gender)
	}

	return 0, nil
}
