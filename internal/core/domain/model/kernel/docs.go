// Package kernel contains the shared value objects of the domain model:
// the UUID identifier wrapper and the GeoPoint coordinate pair. Both are
// immutable, validated at construction, and safe for concurrent use.
package kernel
