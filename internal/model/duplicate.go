package model

// DuplicateSet is a group of two or more paths sharing one fingerprint.
// Paths are kept in discovery order.
type DuplicateSet struct {
	Fingerprint Fingerprint
	Paths       []Path
}

// Resolution is the outcome of applying a Strategy to a DuplicateSet.
type Resolution struct {
	Fingerprint Fingerprint
	Keep        Path
	Remove      []Path
}
