package field

import "github.com/smallyu/go-ecfield/pkg/num"

// modPow computes base^exp mod prime by right-to-left square-and-multiply:
// the lowest bit of exp is tested, then the base is squared and exp shifted,
// until exp is exhausted. Every product is reduced immediately.
func modPow[T num.Number[T]](base, exp, prime T) T {
	one := num.One[T]()
	acc := one.Rem(prime)
	base = base.Rem(prime)

	for !exp.IsZero() {
		if exp.And(one).Cmp(one) == 0 {
			acc = acc.MulMod(base, prime)
		}
		base = base.MulMod(base, prime)
		exp = exp.Rsh(1)
	}
	return acc
}
