// SPDX-License-Identifier: MIT

package parameter

// Set is the per-owner parameter registry. Names are qualified as
// "<owner>.<name>" and registered at most once.
type Set struct {
	owner  string
	order  []*Parameter
	byName map[string]*Parameter
}

// NewSet creates an empty registry for owner.
func NewSet(owner string) *Set {
	return &Set{owner: owner, byName: make(map[string]*Parameter)}
}

// Owner returns the owner prefix.
func (s *Set) Owner() string { return s.owner }

// Register binds p under name. It fails with ErrDuplicate when name is
// taken and with ErrNil on a nil parameter.
func (s *Set) Register(name string, p *Parameter) error {
	if p == nil {
		return parameterErrorf(name, ErrNil)
	}
	if _, ok := s.byName[name]; ok {
		return parameterErrorf(s.qualify(name), ErrDuplicate)
	}
	p.name = s.qualify(name)
	s.byName[name] = p
	s.order = append(s.order, p)

	return nil
}

func (s *Set) qualify(name string) string {
	if s.owner == "" {
		return name
	}

	return s.owner + "." + name
}

// Get looks a parameter up by its bare name.
func (s *Set) Get(name string) (*Parameter, bool) {
	p, ok := s.byName[name]

	return p, ok
}

// All returns the parameters in registration order.
func (s *Set) All() []*Parameter { return append([]*Parameter(nil), s.order...) }

// Len is the number of registered parameters.
func (s *Set) Len() int { return len(s.order) }
