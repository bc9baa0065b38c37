package search

// Cursor walks a result list forwards and backwards, wrapping at both ends.
type Cursor struct {
	results []Result
	index   int
}

func NewCursor(results []Result) *Cursor {
	return &Cursor{results: results, index: -1}
}

func (c *Cursor) Len() int {
	return len(c.results)
}

func (c *Cursor) Current() (Result, bool) {
	if c.index < 0 || c.index >= len(c.results) {
		return Result{}, false
	}
	return c.results[c.index], true
}

func (c *Cursor) Next() (Result, bool) {
	if len(c.results) == 0 {
		return Result{}, false
	}

	c.index = (c.index + 1) % len(c.results)
	return c.results[c.index], true
}

func (c *Cursor) Previous() (Result, bool) {
	if len(c.results) == 0 {
		return Result{}, false
	}

	if c.index <= 0 {
		c.index = len(c.results) - 1
	} else {
		c.index--
	}
	return c.results[c.index], true
}
