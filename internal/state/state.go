// Package state holds the reactive containers: in-memory caches of an
// entity collection plus loading/error flags, kept in sync with storage via
// explicit mutation methods. Containers are constructed with an injected
// service; no ambient singletons.
//
// Every failure is caught at the container boundary and stored as the error
// message; nothing is rethrown. The mutex guards in-memory state only and is
// never held across a service call, so concurrent operations on one
// container interleave just like the cooperative model they mirror.
package state

// SortOption selects the ordering of the expense container's derived view.
type SortOption string

const (
	SortByDate  SortOption = "date"
	SortByTitle SortOption = "title"
	SortByCost  SortOption = "cost"
)
