// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import "fmt"

type Option interface {
	apply(*Parser) error
}

type optionFunc func(*Parser) error

func (o optionFunc) apply(p *Parser) error {
	return o(p)
}

// WithSeparator sets the separator character used when parsing patterns and paths.
// The default separator is '/'. The separator cannot be one of the reserved pattern
// characters '?', '*', '{' or '}'.
func WithSeparator(sep byte) Option {
	return optionFunc(func(p *Parser) error {
		switch sep {
		case '?', '*', '{', '}':
			return fmt.Errorf("%w: %q is not a valid separator", ErrInvalidConfig, sep)
		}
		p.separator = sep
		return nil
	})
}

// WithCaseInsensitive configures the parser to produce patterns whose literal text
// matches candidate paths without regard to ASCII letter case. Embedded capture
// constraints are compiled with the regexp (?i) flag.
func WithCaseInsensitive() Option {
	return optionFunc(func(p *Parser) error {
		p.caseSensitive = false
		return nil
	})
}

// WithOptionalTrailingSeparator configures the parser to produce patterns which,
// when they have no trailing separator, still match a candidate path carrying
// exactly one. By default matching is strict: /foo/bar and /foo/bar/ are distinct.
func WithOptionalTrailingSeparator() Option {
	return optionFunc(func(p *Parser) error {
		p.optionalTrailingSep = true
		return nil
	})
}
