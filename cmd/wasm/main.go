//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecfield/pkg/curves"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go ECField WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECField", map[string]interface{}{
		"Curves":        js.FuncOf(Curves),
		"Add":           js.FuncOf(Add),
		"ScalarMul":     js.FuncOf(ScalarMul),
		"ScalarBaseMul": js.FuncOf(ScalarBaseMul),
	})

	<-c
}

// PointDTO carries coordinates as decimal strings so JS does not lose
// precision. An empty X is the point at infinity.
type PointDTO struct {
	X string `json:"x,omitempty"`
	Y string `json:"y,omitempty"`
}

// CurveDTO is the JSON form of curves.Info.
type CurveDTO struct {
	Name  string   `json:"name"`
	Prime string   `json:"prime"`
	A     string   `json:"a"`
	B     string   `json:"b"`
	G     PointDTO `json:"g"`
	Bits  int      `json:"bits"`
}

// Curves returns the registered curves.
// Returns:
// JSON array of curve descriptions
func Curves(this js.Value, args []js.Value) interface{} {
	out := make([]CurveDTO, 0, len(curves.Names()))
	for _, name := range curves.Names() {
		info, _ := curves.Lookup(name)
		out = append(out, CurveDTO{
			Name:  info.Name,
			Prime: info.Prime.String(),
			A:     info.A.String(),
			B:     info.B.String(),
			G:     PointDTO{X: info.Gx.String(), Y: info.Gy.String()},
			Bits:  info.Bits,
		})
	}
	return marshal(out)
}

// Add adds two points.
// Arguments:
// 0: curve name
// 1: JSON point
// 2: JSON point
// Returns:
// JSON point or error string
func Add(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, jsonPoint, jsonPoint)"
	}
	a, err := decodePoint(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	b, err := decodePoint(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	r, err := curves.Add(args[0].String(), a, b)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshal(encodePoint(r))
}

// ScalarMul multiplies a point by a scalar.
// Arguments:
// 0: curve name
// 1: JSON point
// 2: decimal scalar
// Returns:
// JSON point or error string
func ScalarMul(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, jsonPoint, scalar)"
	}
	a, err := decodePoint(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, ok := new(big.Int).SetString(args[2].String(), 10)
	if !ok {
		return "error: invalid scalar"
	}
	r, err := curves.ScalarMul(args[0].String(), a, k)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshal(encodePoint(r))
}

// ScalarBaseMul multiplies the curve generator by a scalar.
// Arguments:
// 0: curve name
// 1: decimal scalar
// Returns:
// JSON point or error string
func ScalarBaseMul(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, scalar)"
	}
	k, ok := new(big.Int).SetString(args[1].String(), 10)
	if !ok {
		return "error: invalid scalar"
	}
	r, err := curves.ScalarBaseMul(args[0].String(), k)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshal(encodePoint(r))
}

// Helpers

func decodePoint(s string) (curves.Affine, error) {
	var dto PointDTO
	if err := json.Unmarshal([]byte(s), &dto); err != nil {
		return curves.Affine{}, fmt.Errorf("invalid point json: %w", err)
	}
	if dto.X == "" {
		return curves.Affine{}, nil
	}
	x, okX := new(big.Int).SetString(dto.X, 10)
	y, okY := new(big.Int).SetString(dto.Y, 10)
	if !okX || !okY {
		return curves.Affine{}, fmt.Errorf("invalid coordinates (%q, %q)", dto.X, dto.Y)
	}
	return curves.Affine{X: x, Y: y}, nil
}

func encodePoint(a curves.Affine) PointDTO {
	if a.IsInfinity() {
		return PointDTO{}
	}
	return PointDTO{X: a.X.String(), Y: a.Y.String()}
}

func marshal(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}
