package fft

// Planner creates engines on demand and keeps the engine for the most
// recently planned length. Planning a different length replaces it, so a
// caller that varies its frame length holds at most one engine.
//
// A Planner is not safe for concurrent use.
type Planner struct {
	backend Backend
	engine  Engine
}

// NewPlanner returns a planner that builds engines with backend.
func NewPlanner(backend Backend) *Planner {
	return &Planner{backend: backend}
}

// Backend returns the backend requested at construction.
func (p *Planner) Backend() Backend { return p.backend }

// Plan returns an engine of length n, reusing the current one when the
// length matches. A failed plan leaves the current engine in place.
func (p *Planner) Plan(n int) (Engine, error) {
	if p.engine != nil && p.engine.Len() == n {
		return p.engine, nil
	}
	eng, err := NewEngine(p.backend, n)
	if err != nil {
		return nil, err
	}
	p.engine = eng
	return eng, nil
}

// Len reports the length of the held engine, or 0 when nothing has been
// planned yet.
func (p *Planner) Len() int {
	if p.engine == nil {
		return 0
	}
	return p.engine.Len()
}
