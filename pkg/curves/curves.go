// Package curves provides concrete field and curve descriptors and a registry
// to look them up by name.
package curves

import (
	"math/big"
	"sort"
	"strings"

	"github.com/smallyu/go-ecfield/pkg/ec"
	"github.com/smallyu/go-ecfield/pkg/field"
	"github.com/smallyu/go-ecfield/pkg/num"
)

// Info describes a registered curve with plain big.Int values, for callers
// that select a curve at runtime (e.g. from a configuration string).
type Info struct {
	Name   string
	Prime  *big.Int
	A, B   *big.Int
	Gx, Gy *big.Int
	Bits   int
}

type entry struct {
	info Info
	add  func(a, b Affine) (Affine, error)
	mul  func(a Affine, k *big.Int) (Affine, error)
}

var registry = map[string]entry{}

func register[P field.Params[T], T num.Number[T]](g ec.Point[P, T]) {
	var desc P
	x, y, _ := g.XY()
	registry[strings.ToLower(desc.Name())] = entry{
		info: Info{
			Name:  desc.Name(),
			Prime: desc.Prime().BigInt(),
			A:     desc.A().BigInt(),
			B:     desc.B().BigInt(),
			Gx:    x.BigInt(),
			Gy:    y.BigInt(),
			Bits:  desc.Prime().BigInt().BitLen(),
		},
		add: addAffine[P, T],
		mul: mulAffine[P, T],
	}
}

func init() {
	register(F101Generator())
	register(BN254Generator())
	register(Secp256k1Generator())
	register(Wei25519Generator())
}

// Lookup returns the curve registered under name. The match is
// case-insensitive.
func Lookup(name string) (Info, bool) {
	e, ok := lookup(name)
	if !ok {
		return Info{}, false
	}
	info := e.info
	// Hand out copies so the registry stays immutable.
	return Info{
		Name:  info.Name,
		Prime: new(big.Int).Set(info.Prime),
		A:     new(big.Int).Set(info.A),
		B:     new(big.Int).Set(info.B),
		Gx:    new(big.Int).Set(info.Gx),
		Gy:    new(big.Int).Set(info.Gy),
		Bits:  info.Bits,
	}, true
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.info.Name)
	}
	sort.Strings(names)
	return names
}

func lookup(name string) (entry, bool) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}
