package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMax(t *testing.T) {
	tests := []struct {
		input    []float32
		expected float32
	}{
		{[]float32{1, 2, 3}, 3},
		{[]float32{3, 2, 1}, 3},
		{[]float32{-1, -2, -3}, -1},
		{[]float32{0.5}, 0.5},
	}

	for _, tt := range tests {
		result := Max(tt.input...)
		if result != tt.expected {
			t.Errorf("Max(%v) = %f; want %f", tt.input, result, tt.expected)
		}
	}
}

func TestMaxEmpty(t *testing.T) {
	assert.Equal(t, 0, Max[int]())
}

func TestMaxNaN(t *testing.T) {
	result := Max(1.0, math.NaN(), 3.0)
	assert.True(t, math.IsNaN(result))
}

func TestMin(t *testing.T) {
	tests := []struct {
		input    []float64
		expected float64
	}{
		{[]float64{1, 2, 3}, 1},
		{[]float64{3, 2, 1}, 1},
		{[]float64{-1, -2, -3}, -3},
	}

	for _, tt := range tests {
		result := Min(tt.input...)
		if result != tt.expected {
			t.Errorf("Min(%v) = %f; want %f", tt.input, result, tt.expected)
		}
	}
}

func TestMinNaN(t *testing.T) {
	result := Min(math.NaN(), 3.0)
	assert.True(t, math.IsNaN(result))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v        float32
		lo       float32
		hi       float32
		expected float32
	}{
		{0.5, 0, 1, 0.5},
		{-0.5, 0, 1, 0},
		{1.5, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		result := Clamp(tt.v, tt.lo, tt.hi)
		if result != tt.expected {
			t.Errorf("Clamp(%f, %f, %f) = %f; want %f", tt.v, tt.lo, tt.hi, result, tt.expected)
		}
	}
	assert.True(t, math.IsNaN(Clamp(math.NaN(), 0, 1)))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, float32(2), Abs(float32(-2)))
	assert.Equal(t, 2.5, Abs(2.5))
	assert.Equal(t, 0.0, Abs(0.0))
}

func TestVector3(t *testing.T) {
	a := NewVector3[float32](1, 2, 3)
	b := NewVector3[float32](4, 5, 6)

	assert.Equal(t, NewVector3[float32](5, 7, 9), a.Add(b))
	assert.Equal(t, NewVector3[float32](3, 3, 3), b.Sub(a))
	assert.Equal(t, NewVector3[float32](2, 4, 6), a.Scale(2))
	assert.Equal(t, NewVector3[float32](4, 10, 18), a.MulElem(b))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, float32(6), a.Sum())
	assert.Equal(t, float32(6), b.MaxComponent())
	assert.Equal(t, []float32{1, 2, 3}, a.ToSlice())
	assert.True(t, a.ApproxEqual(NewVector3[float32](1.00001, 2, 2.99999), 0.0001))
	assert.False(t, a.ApproxEqual(b, 0.0001))
}

func TestVector2(t *testing.T) {
	a := NewVector2(0.25, 0.5)
	b := NewVector2(0.5, 0.25)

	assert.Equal(t, NewVector2(0.75, 0.75), a.Add(b))
	assert.Equal(t, NewVector2(0.5, 1.0), a.Scale(2))
	assert.Equal(t, 0.25, a.Dot(b))
}
