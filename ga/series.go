// SPDX-License-Identifier: MIT

// Package ga - truncated power series.
//
// Exp, Sinh and Cosh sum the terms a^n / n! for n = 0..order, building each
// term from the previous one with one geometric product:
//
//	t_0 = 1,  t_n = (t_{n-1} * a) / n
//
// Exp keeps every term, Cosh the even ones, Sinh the odd ones, so the three
// share their truncation and Exp == Sinh + Cosh up to rounding. Accuracy is
// bounded by the first dropped term, |a|^(order+1) / (order+1)!; the intended
// generators are bivectors and sums of bivectors of moderate norm.

package ga

// DefaultSeriesOrder is the highest power summed by the *Default helpers.
const DefaultSeriesOrder = 12

type seriesParity uint8

const (
	seriesAll seriesParity = iota
	seriesOdd
	seriesEven
)

// series sums the selected terms of the exponential series of a.
// Complexity: order geometric products.
func series(a Multivector, order int, parity seriesParity) Multivector {
	if order < 0 {
		order = 0
	}
	var sum Multivector
	term := Scalar(1)
	if parity != seriesOdd {
		sum = term
	}
	for n := 1; n <= order; n++ {
		term = Scale(GP(term, a), 1/float64(n))
		switch {
		case parity == seriesAll,
			parity == seriesOdd && n%2 == 1,
			parity == seriesEven && n%2 == 0:
			sum = Add(sum, term)
		}
	}
	return sum
}

// Exp returns the exponential series of a truncated after power order.
func Exp(a Multivector, order int) Multivector { return series(a, order, seriesAll) }

// Sinh returns the odd terms of the exponential series of a up to power order.
func Sinh(a Multivector, order int) Multivector { return series(a, order, seriesOdd) }

// Cosh returns the even terms of the exponential series of a up to power order.
func Cosh(a Multivector, order int) Multivector { return series(a, order, seriesEven) }

// ExpDefault is Exp(a, DefaultSeriesOrder).
func ExpDefault(a Multivector) Multivector { return Exp(a, DefaultSeriesOrder) }

// SinhDefault is Sinh(a, DefaultSeriesOrder).
func SinhDefault(a Multivector) Multivector { return Sinh(a, DefaultSeriesOrder) }

// CoshDefault is Cosh(a, DefaultSeriesOrder).
func CoshDefault(a Multivector) Multivector { return Cosh(a, DefaultSeriesOrder) }
