package sellbook

// LocationStats aggregates order counts by buyer state and city. It is
// an explicit keyed structure built fresh per report run; insertion
// order is kept so that ties resolve deterministically to the first
// location encountered.
type LocationStats struct {
	states map[string]*stateCount
	order  []string
}

type stateCount struct {
	total  int
	cities map[string]int
	order  []string
}

// NewLocationStats returns an empty aggregation.
func NewLocationStats() *LocationStats {
	return &LocationStats{states: make(map[string]*stateCount)}
}

// Visit counts one row's buyer location. Rows without location data are
// skipped.
func (s *LocationStats) Visit(row Row) {
	if row.BuyerState == "" {
		return
	}
	st := s.states[row.BuyerState]
	if st == nil {
		st = &stateCount{cities: make(map[string]int)}
		s.states[row.BuyerState] = st
		s.order = append(s.order, row.BuyerState)
	}
	st.total++
	if row.BuyerCity == "" {
		return
	}
	if _, seen := st.cities[row.BuyerCity]; !seen {
		st.order = append(st.order, row.BuyerCity)
	}
	st.cities[row.BuyerCity]++
}

// Orders returns the number of orders shipped to a state.
func (s *LocationStats) Orders(state string) int {
	if st := s.states[state]; st != nil {
		return st.total
	}
	return 0
}

// TopState returns the state receiving the most orders. Ties go to the
// first state encountered. Empty stats return "" and 0.
func (s *LocationStats) TopState() (state string, count int) {
	for _, st := range s.order {
		if s.states[st].total > count {
			state, count = st, s.states[st].total
		}
	}
	return state, count
}

// TopCity returns the busiest city and its state. Ties go to the first
// city encountered within the first state encountered.
func (s *LocationStats) TopCity() (state, city string, count int) {
	for _, st := range s.order {
		sc := s.states[st]
		for _, c := range sc.order {
			if sc.cities[c] > count {
				state, city, count = st, c, sc.cities[c]
			}
		}
	}
	return state, city, count
}
