package soi

import "fmt"

// Kind is the set of column types the SOI table supports.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindFloat
	KindInt
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Vector is a typed column of data. The backing slice is one of
// []float64, []int or []string.
type Vector struct {
	kind Kind

	data any
}

func NewVector(data any) (*Vector, error) {
	switch data.(type) {
	case []float64:
		return &Vector{kind: KindFloat, data: data}, nil
	case []int:
		return &Vector{kind: KindInt, data: data}, nil
	case []string:
		return &Vector{kind: KindString, data: data}, nil
	default:
		return nil, fmt.Errorf("unsupported data type in NewVector")
	}
}

func MakeVector(kind Kind, n int) *Vector {
	switch kind {
	case KindFloat:
		return &Vector{kind: kind, data: make([]float64, n)}
	case KindInt:
		return &Vector{kind: kind, data: make([]int, n)}
	case KindString:
		return &Vector{kind: kind, data: make([]string, n)}
	default:
		panic(fmt.Errorf("cannot make Vector of kind %s", kind))
	}
}

func (v *Vector) Kind() Kind {
	return v.kind
}

func (v *Vector) Len() int {
	switch v.kind {
	case KindFloat:
		return len(v.data.([]float64))
	case KindInt:
		return len(v.data.([]int))
	case KindString:
		return len(v.data.([]string))
	default:
		panic(fmt.Errorf("unexpected error in Vector.Len"))
	}
}

// Floats returns the backing slice. KindInt vectors are widened.
func (v *Vector) Floats() []float64 {
	switch v.kind {
	case KindFloat:
		return v.data.([]float64)
	case KindInt:
		xOut := make([]float64, v.Len())
		for ind, xx := range v.data.([]int) {
			xOut[ind] = float64(xx)
		}

		return xOut
	default:
		panic(fmt.Errorf("vector of kind %s isn't float-able", v.kind))
	}
}

func (v *Vector) Ints() []int {
	if v.kind != KindInt {
		panic(fmt.Errorf("vector isn't KindInt"))
	}

	return v.data.([]int)
}

func (v *Vector) Strs() []string {
	if v.kind != KindString {
		panic(fmt.Errorf("vector isn't KindString"))
	}

	return v.data.([]string)
}

func (v *Vector) Element(indx int) any {
	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	switch v.kind {
	case KindFloat:
		return v.data.([]float64)[indx]
	case KindInt:
		return v.data.([]int)[indx]
	case KindString:
		return v.data.([]string)[indx]
	default:
		panic(fmt.Errorf("unexpected error in Vector.Element"))
	}
}

func (v *Vector) SetFloat(val float64, indx int) {
	if v.kind != KindFloat {
		panic(fmt.Errorf("vector isn't KindFloat"))
	}

	v.data.([]float64)[indx] = val
}

func (v *Vector) SetInt(val, indx int) {
	if v.kind != KindInt {
		panic(fmt.Errorf("vector isn't KindInt"))
	}

	v.data.([]int)[indx] = val
}

func (v *Vector) SetString(val string, indx int) {
	if v.kind != KindString {
		panic(fmt.Errorf("vector isn't KindString"))
	}

	v.data.([]string)[indx] = val
}

// Where returns a new vector holding the elements where mask is true.
func (v *Vector) Where(mask []bool) *Vector {
	if len(mask) != v.Len() {
		panic(fmt.Errorf("mask length mismatch in Vector.Where"))
	}

	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}

	vOut := MakeVector(v.kind, n)
	at := 0
	for ind := 0; ind < v.Len(); ind++ {
		if !mask[ind] {
			continue
		}

		switch v.kind {
		case KindFloat:
			vOut.SetFloat(v.data.([]float64)[ind], at)
		case KindInt:
			vOut.SetInt(v.data.([]int)[ind], at)
		case KindString:
			vOut.SetString(v.data.([]string)[ind], at)
		}

		at++
	}

	return vOut
}

func (v *Vector) Copy() *Vector {
	vCopy := MakeVector(v.kind, v.Len())
	switch v.kind {
	case KindFloat:
		copy(vCopy.data.([]float64), v.data.([]float64))
	case KindInt:
		copy(vCopy.data.([]int), v.data.([]int))
	case KindString:
		copy(vCopy.data.([]string), v.data.([]string))
	}

	return vCopy
}

func (v *Vector) Swap(i, j int) {
	switch v.kind {
	case KindFloat:
		v.data.([]float64)[i], v.data.([]float64)[j] = v.data.([]float64)[j], v.data.([]float64)[i]
	case KindInt:
		v.data.([]int)[i], v.data.([]int)[j] = v.data.([]int)[j], v.data.([]int)[i]
	case KindString:
		v.data.([]string)[i], v.data.([]string)[j] = v.data.([]string)[j], v.data.([]string)[i]
	default:
		panic(fmt.Errorf("unexpected error in Vector.Swap"))
	}
}

func (v *Vector) Less(i, j int) bool {
	switch v.kind {
	case KindFloat:
		return v.data.([]float64)[i] < v.data.([]float64)[j]
	case KindInt:
		return v.data.([]int)[i] < v.data.([]int)[j]
	case KindString:
		return v.data.([]string)[i] < v.data.([]string)[j]
	default:
		panic(fmt.Errorf("unexpected error in Vector.Less"))
	}
}
