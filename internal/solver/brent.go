package solver

import "math"

// Status reports how a root search ended.
type Status string

const (
	// Found means a sign change was bracketed and X is within XTol of a root.
	Found Status = "FOUND"
	// NotBracketed means f(lo) and f(hi) share a sign. X is the endpoint
	// whose |f| is smaller (hi on ties).
	NotBracketed Status = "NOT_BRACKETED"
	// DomainError means f produced NaN or Inf somewhere during the search.
	DomainError Status = "DOMAIN_ERROR"
)

const (
	DefaultXTol    = 1e-6
	DefaultMaxIter = 100
)

type Options struct {
	XTol    float64
	MaxIter int
}

type Result struct {
	X          float64
	Status     Status
	Iterations int
}

func (r Result) OK() bool { return r.Status == Found }

// Brent locates a root of f in [lo, hi] using Brent's method
// (inverse quadratic interpolation with a bisection safeguard).
//
// It never panics on bad input; failure modes are reported via Status so
// callers can apply their own fallback rule.
func Brent(f func(float64) float64, lo, hi float64, opts Options) Result {
	if opts.XTol <= 0 {
		opts.XTol = DefaultXTol
	}
	if opts.MaxIter <= 0 {
		opts.MaxIter = DefaultMaxIter
	}

	a, b := lo, hi
	fa, fb := f(a), f(b)
	if !finite(fa) || !finite(fb) {
		return Result{Status: DomainError}
	}
	if fa == 0 {
		return Result{X: a, Status: Found}
	}
	if fb == 0 {
		return Result{X: b, Status: Found}
	}
	if math.Signbit(fa) == math.Signbit(fb) {
		x := hi
		if math.Abs(fa) < math.Abs(fb) {
			x = lo
		}
		return Result{X: x, Status: NotBracketed}
	}

	c, fc := a, fa
	d := b - a
	e := d

	for iter := 1; iter <= opts.MaxIter; iter++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*epsilon*math.Abs(b) + 0.5*opts.XTol
		m := 0.5 * (c - b)
		if math.Abs(m) <= tol || fb == 0 {
			return Result{X: b, Status: Found, Iterations: iter}
		}

		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			d, e = m, m
		} else {
			var p, q float64
			s := fb / fa
			if a == c {
				// secant
				p = 2 * m * s
				q = 1 - s
			} else {
				// inverse quadratic interpolation
				qa := fa / fc
				r := fb / fc
				p = s * (2*m*qa*(qa-r) - (b-a)*(r-1))
				q = (qa - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d, e = m, m
			}
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, m)
		}
		fb = f(b)
		if !finite(fb) {
			return Result{Status: DomainError, Iterations: iter}
		}
	}

	return Result{X: b, Status: Found, Iterations: opts.MaxIter}
}

const epsilon = 2.220446049250313e-16

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
