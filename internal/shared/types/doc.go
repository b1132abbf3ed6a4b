// Package types provides small shared value types used across the backend.
//
// Optional[T] models a value that may be absent. Catalog fields such as a
// departure's price override or an itinerary day's meals use it so callers
// have to handle the "not present" case explicitly instead of relying on
// zero values.
//
// Example Usage:
//
//	override := types.Some(19999.0)
//	if price, ok := override.Get(); ok {
//	    fmt.Println(price)
//	}
package types
