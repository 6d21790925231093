package wire

import "fmt"

// CheckedMulInt multiplies a and b, returning an error instead of silently
// overflowing int, per spec.md §4.1's "checked_mul ... failing the
// operation on overflow". Used for shape products (numel) and offset math.
func CheckedMulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	p := a * b
	if p/b != a || p < 0 {
		return 0, fmt.Errorf("integer overflow computing %d * %d", a, b)
	}

	return p, nil
}

// CheckedAddInt adds a and b, returning an error on overflow.
func CheckedAddInt(a, b int) (int, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, fmt.Errorf("integer overflow computing %d + %d", a, b)
	}

	return s, nil
}

// NumElements computes numel = ∏ shape_i with overflow checking, per
// spec.md §3.2 ("numel = ∏ shape_i"; empty shape ⇒ numel = 0).
func NumElements(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, nil
	}

	n := 1
	for _, dim := range shape {
		if dim < 0 {
			return 0, fmt.Errorf("negative shape dimension %d", dim)
		}

		var err error
		n, err = CheckedMulInt(n, dim)
		if err != nil {
			return 0, err
		}
	}

	return n, nil
}
