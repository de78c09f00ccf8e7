// Package projector walks a winning parse tree, depth-first and
// left-to-right, and recovers the literal address components by slicing
// the normalized input's surface tokens. It never invents characters:
// every field it produces is a contiguous, single-space-joined
// concatenation of surface tokens.
package projector

// AddressResult is the public shape of a parsed address, fixed by the
// external wire contract: kind is "simple", "intersection", "between", or
// "" when the pipeline could not resolve an address at all.
type AddressResult struct {
	Kind        string      `json:"kind"`
	StreetNames []string    `json:"street_names"`
	DoorNumber  *DoorNumber `json:"door_number,omitempty"`
	Floor       *string     `json:"floor,omitempty"`
}

// DoorNumber is the numeric component identifying a specific address on a
// street. Unit is absent when the input carried no unit keyword (N°, Km,
// nro, ...); Value is never empty when DoorNumber itself is present.
type DoorNumber struct {
	Unit  *string `json:"unit,omitempty"`
	Value string  `json:"value"`
}
