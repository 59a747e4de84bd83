package util

import (
	"golang.org/x/exp/constraints"
)

// Vector2 is a 2 component vector. Used for chromaticity pairs.
type Vector2[T constraints.Float] struct {
	X T
	Y T
}

func NewVector2[T constraints.Float](x T, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{X: v.X * s, Y: v.Y * s}
}

func (v Vector2[T]) Dot(o Vector2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// Vector3 is a 3 component vector. All tristimulus and RGB maths go through it.
type Vector3[T constraints.Float] struct {
	X T
	Y T
	Z T
}

func NewVector3[T constraints.Float](x T, y T, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale multiplies every component by s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// MulElem is the element-wise (Hadamard) product.
func (v Vector3[T]) MulElem(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Sum of the components.
func (v Vector3[T]) Sum() T {
	return v.X + v.Y + v.Z
}

// MaxComponent returns the largest component.
func (v Vector3[T]) MaxComponent() T {
	return Max(v.X, v.Y, v.Z)
}

// ToSlice is for interop with the slice based helpers and tests.
func (v Vector3[T]) ToSlice() []T {
	return []T{v.X, v.Y, v.Z}
}

// ApproxEqual reports whether each component differs by no more than tol.
func (v Vector3[T]) ApproxEqual(o Vector3[T], tol T) bool {
	return Abs(v.X-o.X) <= tol && Abs(v.Y-o.Y) <= tol && Abs(v.Z-o.Z) <= tol
}
