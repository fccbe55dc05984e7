package liar

// Cycler walks the seats in table order, wrapping around and skipping
// seats that are no longer active.
type Cycler struct {
	elements []string
	active   map[string]bool
	current  int
}

func NewCycler(elements []string) *Cycler {
	active := make(map[string]bool, len(elements))
	for _, element := range elements {
		active[element] = true
	}
	return &Cycler{
		elements: elements,
		active:   active,
	}
}

func (c *Cycler) Current() string {
	return c.elements[c.current]
}

func (c *Cycler) Next() string {
	elementCount := len(c.elements)
	for i := 1; i <= elementCount; i++ {
		idx := (c.current + i) % elementCount
		if c.active[c.elements[idx]] {
			c.current = idx
			break
		}
	}
	return c.elements[c.current]
}

// After returns the first active seat following element.
func (c *Cycler) After(element string) string {
	current := c.current
	defer func() { c.current = current }()
	for idx, e := range c.elements {
		if e == element {
			c.current = idx
			return c.Next()
		}
	}
	return c.elements[current]
}

func (c *Cycler) Deactivate(element string) {
	c.active[element] = false
}

func (c *Cycler) IsActive(element string) bool {
	return c.active[element]
}

func (c *Cycler) Active() []string {
	active := make([]string, 0, len(c.elements))
	for _, element := range c.elements {
		if c.active[element] {
			active = append(active, element)
		}
	}
	return active
}
