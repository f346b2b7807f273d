package aleph

// Pool collects String handles for bulk release. It mirrors the
// register-then-release lifetime bundler of the C original: code that
// builds many short-lived strings registers each with Collect and drops
// them all with one Free at the end of the scope.
type Pool struct {
	items []*String
}

// NewPool creates an empty pool.
func NewPool() *Pool { return &Pool{} }

// Collect registers s with the pool and returns it, so that calls wrap
// expressions in place: p.Collect(aleph.New("x")).ToUpper().
func (p *Pool) Collect(s *String) *String {
	if p != nil && s != nil {
		p.items = append(p.items, s)
	}
	return s
}

// Size returns the number of collected strings.
func (p *Pool) Size() int {
	if p == nil {
		return 0
	}
	return len(p.items)
}

// Free releases every collected string and empties the pool.
func (p *Pool) Free() {
	if p == nil {
		return
	}
	for _, s := range p.items {
		s.Release()
	}
	p.items = nil
}
