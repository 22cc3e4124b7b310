package model

// Attribute is one attribute-value pair of a NIM resource definition. Pairs
// are kept as a slice because some resource definitions are order-sensitive.
type Attribute struct {
	Key   string
	Value string
}

// ResourceRequest describes one NIM resource operation as supplied by the
// caller. Validation happens before it reaches the command builder.
type ResourceRequest struct {
	Name       string
	ObjectType string
	Attributes []Attribute
	Preview    bool
}
