package errors

import "sort"

// Sink receives diagnostics. Implementations are append-only; reporters never
// read back what they reported.
type Sink interface {
	Report(err CompilerError)
}

// Collector is a Sink that keeps diagnostics in memory.
type Collector struct {
	diagnostics []CompilerError
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Report(err CompilerError) {
	c.diagnostics = append(c.diagnostics, err)
}

// Diagnostics returns a copy of everything reported so far, in report order.
func (c *Collector) Diagnostics() []CompilerError {
	out := make([]CompilerError, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

func (c *Collector) Len() int {
	return len(c.diagnostics)
}

// HasErrors reports whether anything above warning level was reported.
func (c *Collector) HasErrors() bool {
	for _, d := range c.diagnostics {
		if d.Level == Error {
			return true
		}
	}
	return false
}

// SortByPosition orders diagnostics by line and column, keeping report order
// for diagnostics at the same position.
func SortByPosition(diags []CompilerError) {
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Position.Before(diags[j].Position)
	})
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(err CompilerError)

func (f SinkFunc) Report(err CompilerError) { f(err) }
