package taxipark

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"go.uber.org/multierr"
)

type Driver string

type Passenger string

// Trip is a single ride. Discount is nil when none was given.
type Trip struct {
	Driver     Driver      `json:"driver"`
	Passengers []Passenger `json:"passengers"`
	Duration   int         `json:"duration"`
	Distance   float64     `json:"distance"`
	Discount   *float64    `json:"discount,omitempty"`
}

// Cost is (1 - discount) * (duration + distance).
func (t Trip) Cost() float64 {
	discount := 0.0
	if t.Discount != nil {
		discount = *t.Discount
	}
	return (1 - discount) * (float64(t.Duration) + t.Distance)
}

// HasDiscount reports whether the trip had a positive discount.
func (t Trip) HasDiscount() bool {
	return t.Discount != nil && *t.Discount > 0
}

func (t Trip) carried(p Passenger) bool {
	return slices.Contains(t.Passengers, p)
}

// Park holds every driver and passenger, including those without trips.
type Park struct {
	AllDrivers    []Driver    `json:"drivers"`
	AllPassengers []Passenger `json:"passengers"`
	Trips         []Trip      `json:"trips"`
}

// LoadPark decodes a park from r and validates it.
func LoadPark(r io.Reader) (*Park, error) {
	var park Park
	if err := json.NewDecoder(r).Decode(&park); err != nil {
		return nil, fmt.Errorf("failed to decode taxi park: %w", err)
	}
	if err := park.Validate(); err != nil {
		return nil, fmt.Errorf("invalid taxi park: %w", err)
	}
	return &park, nil
}

// Validate returns every inconsistency in p, combined.
func (p *Park) Validate() error {
	var err error

	drivers := make(map[Driver]bool, len(p.AllDrivers))
	for _, d := range p.AllDrivers {
		if drivers[d] {
			err = multierr.Append(err, fmt.Errorf("driver %q listed twice", d))
		}
		drivers[d] = true
	}
	passengers := make(map[Passenger]bool, len(p.AllPassengers))
	for _, ps := range p.AllPassengers {
		if passengers[ps] {
			err = multierr.Append(err, fmt.Errorf("passenger %q listed twice", ps))
		}
		passengers[ps] = true
	}

	for i, t := range p.Trips {
		if !drivers[t.Driver] {
			err = multierr.Append(err, fmt.Errorf("trip %d: unknown driver %q", i, t.Driver))
		}
		for _, ps := range t.Passengers {
			if !passengers[ps] {
				err = multierr.Append(err, fmt.Errorf("trip %d: unknown passenger %q", i, ps))
			}
		}
		if t.Duration < 0 {
			err = multierr.Append(err, fmt.Errorf("trip %d: negative duration %d", i, t.Duration))
		}
		if t.Distance < 0 {
			err = multierr.Append(err, fmt.Errorf("trip %d: negative distance %g", i, t.Distance))
		}
		if t.Discount != nil && (*t.Discount < 0 || *t.Discount > 1) {
			err = multierr.Append(err, fmt.Errorf("trip %d: discount %g outside 0..1", i, *t.Discount))
		}
	}
	return err
}
