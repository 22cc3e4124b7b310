package model

// OperationOutcome is the stable contract returned to callers for one
// invocation. Request-scoped; each invocation constructs its own.
type OperationOutcome struct {
	Changed    bool
	Message    string
	Catalog    *ResourceCatalog
	Found      *bool
	Raw        CommandResult
	FatalError string
}

// Fatal reports whether the outcome must abort the invocation.
func (o *OperationOutcome) Fatal() bool {
	return o != nil && o.FatalError != ""
}
