// Package taxipark answers questions about the drivers, passengers and trips
// of a taxi park.
//
// The taxipark package implements:
//   - Loading a park from JSON with referential checks
//   - Fake drivers, faithful, frequent and smart passengers
//   - The most frequent trip duration period
//   - The Pareto check on driver income
//
// Usage:
//
//	park, err := taxipark.LoadPark(f)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, d := range park.FakeDrivers() {
//		fmt.Println(d)
//	}
//
// Queries returning drivers or passengers keep the order of AllDrivers and
// AllPassengers.
package taxipark
