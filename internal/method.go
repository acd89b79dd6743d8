package shortpath

// Method selects how short paths are obtained.
type Method int

//go:generate go run github.com/dmarkham/enumer -type=Method -trimprefix Method -transform snake-upper -text
const (
	// Reconstruct short names from directory listings and validate them against the filesystem.
	MethodGenerate Method = iota
	// Ask the operating system for the exact short path.
	MethodExact
)
