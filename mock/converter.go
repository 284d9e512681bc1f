package mock

import "github.com/fwojciec/webmd"

var _ webmd.Converter = (*Converter)(nil)

// Converter is a mock implementation of webmd.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
