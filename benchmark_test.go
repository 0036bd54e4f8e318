// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import (
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("/customers/{id:[0-9]+}/orders/{*rest}")
	}
}

func BenchmarkParsePath(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ParsePath("/customers/42/orders/2024/invoice.pdf")
	}
}

func BenchmarkMatchLiteral(b *testing.B) {
	p := MustParse("/customers/orders/invoice")
	path := ParsePath("/customers/orders/invoice")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !p.Matches(path) {
			b.Fatal("expected a match")
		}
	}
}

func BenchmarkMatchWildcard(b *testing.B) {
	p := MustParse("/customers/*/orders/*.pdf")
	path := ParsePath("/customers/42/orders/invoice.pdf")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !p.Matches(path) {
			b.Fatal("expected a match")
		}
	}
}

func BenchmarkMatchCatchAll(b *testing.B) {
	p := MustParse("/customers/**")
	path := ParsePath("/customers/42/orders/2024/invoice.pdf")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !p.Matches(path) {
			b.Fatal("expected a match")
		}
	}
}

func BenchmarkMatchAndExtract(b *testing.B) {
	p := MustParse("/customers/{id:[0-9]+}/orders/{*rest}")
	path := ParsePath("/customers/42/orders/2024/invoice.pdf")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if p.MatchAndExtract(path) == nil {
			b.Fatal("expected a match")
		}
	}
}

func BenchmarkDoublestarWildcard(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ok, err := doublestar.Match("/customers/*/orders/*.pdf", "/customers/42/orders/invoice.pdf")
		if err != nil || !ok {
			b.Fatal("expected a match")
		}
	}
}

func BenchmarkDoublestarCatchAll(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ok, err := doublestar.Match("/customers/**", "/customers/42/orders/2024/invoice.pdf")
		if err != nil || !ok {
			b.Fatal("expected a match")
		}
	}
}
