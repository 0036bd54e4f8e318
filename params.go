// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

// Param is a single matrix parameter attached to a path segment, such as the
// color=red in /cars;color=red.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered collection of matrix parameters. A key may appear more
// than once; insertion order is preserved.
type Params []Param

// Get the first value associated with the given name.
func (p Params) Get(name string) string {
	for i := range p {
		if p[i].Key == name {
			return p[i].Value
		}
	}
	return ""
}

// Has checks whether the parameter exists by name.
func (p Params) Has(name string) bool {
	for i := range p {
		if p[i].Key == name {
			return true
		}
	}

	return false
}

// Values returns all values associated with the given name, in insertion order.
func (p Params) Values(name string) []string {
	var values []string
	for i := range p {
		if p[i].Key == name {
			values = append(values, p[i].Value)
		}
	}
	return values
}

// Clone make a copy of Params.
func (p Params) Clone() Params {
	cloned := make(Params, len(p))
	copy(cloned, p)
	return cloned
}
