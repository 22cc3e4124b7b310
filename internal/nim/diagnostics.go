package nim

import "strings"

// Classification buckets a failed command by the diagnostic code found in its
// stderr.
type Classification int

const (
	// ClassFatal is any failure with no recognized diagnostic code. A code
	// outside the known set is conservatively fatal.
	ClassFatal Classification = iota
	// ClassNotFound means the named NIM object does not exist.
	ClassNotFound
	// ClassAlreadyExists means the resource is already defined on the master.
	ClassAlreadyExists
)

// diagnosticCodes maps known NIM message numbers to their classification.
// Adding a newly recoverable diagnostic is a data change here, not a new
// control path.
var diagnosticCodes = []struct {
	code  string
	class Classification
}{
	{"0042-053", ClassNotFound},      // object is not a NIM object
	{"0042-081", ClassAlreadyExists}, // resource already exists on "master"
}

// ClassifyStderr scans stderr for a known diagnostic code. Substring search,
// first match wins; no match is fatal.
func ClassifyStderr(stderr string) Classification {
	for _, diag := range diagnosticCodes {
		if strings.Contains(stderr, diag.code) {
			return diag.class
		}
	}
	return ClassFatal
}
