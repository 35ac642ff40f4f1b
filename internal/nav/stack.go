package nav

import "github.com/NeuralMobile/event-cascade/internal/cascade"

// Stack is a push/pop navigation container. The top page is the
// foreground location; popping re-activates the page it exposes, so
// back-navigation restores the exposed page's first-refusal position.
type Stack struct {
	reg   *cascade.Registry
	pages []*Page
}

// NewStack creates an empty navigation stack feeding the registry.
func NewStack(reg *cascade.Registry) *Stack {
	return &Stack{reg: reg}
}

// Push creates a page, registers its slot, and makes it the foreground
// location. Registration seeds the recency entry, so no separate
// activation is needed on initial display.
func (s *Stack) Push(title string) *Page {
	p := newPage(s.reg, title)
	s.pages = append(s.pages, p)
	return p
}

// Pop destroys the top page: it is detached, unregistered (clearing every
// handler it held), and the newly exposed page - if any - is re-activated.
// Returns the popped page, or nil on an empty stack.
func (s *Stack) Pop() *Page {
	if len(s.pages) == 0 {
		return nil
	}

	top := s.pages[len(s.pages)-1]
	s.pages = s.pages[:len(s.pages)-1]

	top.detach()
	s.reg.Unregister(top.slot)

	if next := s.Top(); next != nil {
		s.reg.Activate(next.slot)
	}
	return top
}

// Top returns the foreground page, or nil on an empty stack.
func (s *Stack) Top() *Page {
	if len(s.pages) == 0 {
		return nil
	}
	return s.pages[len(s.pages)-1]
}

// Len returns the stack depth.
func (s *Stack) Len() int {
	return len(s.pages)
}
