package model

// Scope carries the authenticated caller of a request.
type Scope struct {
	Address string
}

// IsZero reports whether no caller identity is attached.
func (sc Scope) IsZero() bool {
	return sc.Address == ""
}
