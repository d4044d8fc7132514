package schema

// Float returns a pointer to v. Convenience for building nullable metrics.
func Float(v float64) *float64 {
	return &v
}

// FloatVal dereferences p, returning fallback when p is nil.
func FloatVal(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

// Coalesce returns the first non-nil pointer, or nil if all are nil.
// Used for metric fallbacks such as total debt defaulting to total liabilities.
func Coalesce(ps ...*float64) *float64 {
	for _, p := range ps {
		if p != nil {
			return p
		}
	}
	return nil
}
