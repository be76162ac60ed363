// Package cbessel evaluates cylindrical Bessel functions of the first
// kind, orders 0 and 1, for complex arguments.
//
// Small arguments use the ascending power series, large arguments the
// Hankel asymptotic expansion. The J1/J0 ratio is additionally available
// through a continued fraction, which stays well conditioned where the
// individual functions grow like exp(|Im z|).
package cbessel

import (
	"math"
	"math/cmplx"
)

// seriesLimit is the |z| crossover between the ascending series and the
// asymptotic expansion. Both are accurate to ~1e-10 at the boundary.
const seriesLimit = 12.0

// J0 computes the Bessel function of the first kind of order zero.
func J0(z complex128) complex128 {
	if cmplx.Abs(z) <= seriesLimit {
		return j0Series(z)
	}
	return jAsymptotic(0, z)
}

// J1 computes the Bessel function of the first kind of order one.
func J1(z complex128) complex128 {
	if cmplx.Abs(z) <= seriesLimit {
		return j1Series(z)
	}
	return jAsymptotic(1, z)
}

// RatioJ1J0 computes J1(z)/J0(z) using a continued fraction derived from
// the three-term recurrence (modified Lentz algorithm). It avoids the
// overflow of the individual functions for arguments with a large
// imaginary part and converges for every z that is not a zero of J0.
func RatioJ1J0(z complex128) complex128 {
	if z == 0 {
		return 0
	}

	const (
		tiny    = 1e-30
		tol     = 1e-15
		maxIter = 10000
	)

	f := complex(tiny, 0)
	c := f
	d := complex(0, 0)

	for j := 1; j <= maxIter; j++ {
		a := complex(-1, 0)
		if j == 1 {
			a = 1
		}
		b := complex(2*float64(j), 0) / z

		d = b + a*d
		if d == 0 {
			d = complex(tiny, 0)
		}
		c = b + a/c
		if c == 0 {
			c = complex(tiny, 0)
		}
		d = 1 / d

		delta := c * d
		f *= delta
		if cmplx.Abs(delta-1) < tol {
			break
		}
	}

	return f
}

// j0Series sums the ascending series J0(z) = sum (-1)^k (z^2/4)^k / (k!)^2.
func j0Series(z complex128) complex128 {
	q := z * z / 4
	term := complex(1, 0)
	sum := term
	for k := 1; k <= 40; k++ {
		term *= -q / complex(float64(k)*float64(k), 0)
		sum += term
		if cmplx.Abs(term) < 1e-17*cmplx.Abs(sum) {
			break
		}
	}
	return sum
}

// j1Series sums the ascending series
// J1(z) = (z/2) sum (-1)^k (z^2/4)^k / (k! (k+1)!).
func j1Series(z complex128) complex128 {
	q := z * z / 4
	term := z / 2
	sum := term
	for k := 1; k <= 40; k++ {
		term *= -q / complex(float64(k)*float64(k+1), 0)
		sum += term
		if cmplx.Abs(term) < 1e-17*cmplx.Abs(sum) {
			break
		}
	}
	return sum
}

// jAsymptotic evaluates the Hankel expansion
//
//	Jnu(z) ~ sqrt(2/(pi z)) (P cos(chi) - Q sin(chi)),
//	chi = z - (nu/2 + 1/4) pi,
//
// with the P and Q series generated from the coefficient recurrence
// a_k = a_{k-1} (mu - (2k-1)^2) / (8k), mu = 4 nu^2. The series is
// truncated when terms stop decreasing.
func jAsymptotic(nu int, z complex128) complex128 {
	mu := 4 * float64(nu) * float64(nu)
	zinv := 1 / z

	p := complex(1, 0)
	q := complex(0, 0)

	a := complex(1, 0)
	zpow := complex(1, 0)
	sign := 1.0
	prev := math.Inf(1)

	for k := 1; k <= 18; k++ {
		m := float64(2*k - 1)
		a *= complex((mu-m*m)/(8*float64(k)), 0)
		zpow *= zinv

		term := a * zpow
		size := cmplx.Abs(term)
		if size > prev {
			break
		}
		prev = size

		if k%2 == 1 {
			// Odd k contributes to Q: (-1)^((k-1)/2) a_k / z^k.
			if ((k-1)/2)%2 == 0 {
				q += term
			} else {
				q -= term
			}
		} else {
			// Even k contributes to P with alternating sign.
			if sign > 0 {
				p -= term
			} else {
				p += term
			}
			sign = -sign
		}
	}

	chi := z - complex((float64(nu)/2+0.25)*math.Pi, 0)
	pref := cmplx.Sqrt(2 / (math.Pi * z))

	return pref * (p*cmplx.Cos(chi) - q*cmplx.Sin(chi))
}
