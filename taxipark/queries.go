package taxipark

import (
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FakeDrivers returns the drivers who performed no trips.
func (p *Park) FakeDrivers() []Driver {
	var out []Driver
	for _, d := range p.AllDrivers {
		if !p.drove(d) {
			out = append(out, d)
		}
	}
	return out
}

func (p *Park) drove(d Driver) bool {
	for _, t := range p.Trips {
		if t.Driver == d {
			return true
		}
	}
	return false
}

// FaithfulPassengers returns the passengers with at least minTrips trips.
func (p *Park) FaithfulPassengers(minTrips int) []Passenger {
	return p.passengersWhere(func(trips []Trip) bool {
		return len(trips) >= minTrips
	})
}

// FrequentPassengers returns the passengers driven by d more than once.
func (p *Park) FrequentPassengers(d Driver) []Passenger {
	return p.passengersWhere(func(trips []Trip) bool {
		count := 0
		for _, t := range trips {
			if t.Driver == d {
				count++
			}
		}
		return count > 1
	})
}

// SmartPassengers returns the passengers who had a discount on most of their trips.
func (p *Park) SmartPassengers() []Passenger {
	return p.passengersWhere(func(trips []Trip) bool {
		discounted := 0
		for _, t := range trips {
			if t.HasDiscount() {
				discounted++
			}
		}
		return discounted > len(trips)-discounted
	})
}

// passengersWhere keeps the passengers whose trips satisfy keep.
func (p *Park) passengersWhere(keep func(trips []Trip) bool) []Passenger {
	var out []Passenger
	for _, ps := range p.AllPassengers {
		var trips []Trip
		for _, t := range p.Trips {
			if t.carried(ps) {
				trips = append(trips, t)
			}
		}
		if keep(trips) {
			out = append(out, ps)
		}
	}
	return out
}

// Period is an inclusive range of trip minutes.
type Period struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (p Period) String() string {
	return fmt.Sprintf("%d..%d", p.Start, p.End)
}

// MostFrequentTripDurationPeriod finds the ten-minute period (0..9, 10..19,
// ...) holding the most trips. Ties go to the period seen first in trip
// order. It reports false when there are no trips.
func (p *Park) MostFrequentTripDurationPeriod() (Period, bool) {
	counts := orderedmap.New[Period, int]()
	for _, t := range p.Trips {
		start := t.Duration / 10 * 10
		period := Period{Start: start, End: start + 9}
		n, _ := counts.Get(period)
		counts.Set(period, n+1)
	}

	var best Period
	bestCount := 0
	for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value > bestCount {
			best, bestCount = pair.Key, pair.Value
		}
	}
	return best, bestCount > 0
}

// Income returns the total trip cost per driver, in AllDrivers order.
func (p *Park) Income() *orderedmap.OrderedMap[Driver, float64] {
	income := orderedmap.New[Driver, float64](len(p.AllDrivers))
	for _, d := range p.AllDrivers {
		income.Set(d, 0)
	}
	for _, t := range p.Trips {
		total, _ := income.Get(t.Driver)
		income.Set(t.Driver, total+t.Cost())
	}
	return income
}

// CheckParetoPrinciple reports whether the top 20% of drivers by income
// earned at least 80% of the total. It is false when there are no trips.
func (p *Park) CheckParetoPrinciple() bool {
	if len(p.Trips) == 0 {
		return false
	}

	var total float64
	incomes := make([]float64, 0, len(p.AllDrivers))
	for pair := p.Income().Oldest(); pair != nil; pair = pair.Next() {
		incomes = append(incomes, pair.Value)
		total += pair.Value
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(incomes)))

	top := int(float64(len(p.AllDrivers)) * 0.2)
	var topIncome float64
	for _, v := range incomes[:min(top, len(incomes))] {
		topIncome += v
	}
	return topIncome >= total*0.8
}
