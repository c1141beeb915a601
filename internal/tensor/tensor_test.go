package tensor

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/ffnet/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustFromSlice(t *testing.T, data []float64, shape Shape) *Tensor {
	t.Helper()
	x, err := FromSlice(data, shape)
	require.NoError(t, err)
	return x
}

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		wantErr bool
	}{
		{"vector", Shape{3}, false},
		{"matrix", Shape{2, 3}, false},
		{"scalar", Shape{}, true},
		{"rank3", Shape{1, 2, 3}, true},
		{"zero dim", Shape{2, 0}, true},
		{"negative dim", Shape{-1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidShape)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "(4, 3)", Shape{4, 3}.String())
	assert.Equal(t, "(2)", Shape{2}.String())
}

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	x := mustFromSlice(t, data, Shape{2, 3})

	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, data, x.Data())
	assert.Equal(t, 6.0, x.At(1, 2))

	// The input slice is copied.
	data[0] = 100
	assert.Equal(t, 1.0, x.At(0, 0))

	v := mustFromSlice(t, []float64{7, 8}, Shape{2})
	assert.Equal(t, 1, v.Rank())
	assert.Equal(t, 8.0, v.At(1))
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	require.ErrorIs(t, err, ErrShapeMismatch)

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "from_slice", shapeErr.Op)
}

func TestCloneIsIndependent(t *testing.T) {
	x := mustFromSlice(t, []float64{1, 2}, Shape{2})
	y := x.Clone()
	require.True(t, AllClose(x, y, 0))

	shape := y.Shape()
	shape[0] = 99
	assert.Equal(t, Shape{2}, y.Shape())
}

func TestZerosAndFull(t *testing.T) {
	z, err := Zeros(Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, z.Data())

	f, err := Full(Shape{3}, 1.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 1.5, 1.5}, f.Data())

	_, err = Zeros(Shape{0, 2})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestRandn_Deterministic(t *testing.T) {
	a, err := Randn(Shape{3, 4}, rand.NewSource(42))
	require.NoError(t, err)
	b, err := Randn(Shape{3, 4}, rand.NewSource(42))
	require.NoError(t, err)

	assert.True(t, AllClose(a, b, 0))
	assert.Equal(t, Shape{3, 4}, a.Shape())
}

func TestRandn_Moments(t *testing.T) {
	x, err := Randn(Shape{100, 100}, rand.NewSource(7))
	require.NoError(t, err)

	data := x.Data()
	var mean float64
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	var variance float64
	for _, v := range data {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(data))

	assert.InDelta(t, 0, mean, 0.05)
	assert.InDelta(t, 1, math.Sqrt(variance), 0.05)
}

func TestUniform_Bounds(t *testing.T) {
	x, err := Uniform(Shape{50}, -0.5, 0.5, rand.NewSource(1))
	require.NoError(t, err)
	for _, v := range x.Data() {
		assert.GreaterOrEqual(t, v, -0.5)
		assert.Less(t, v, 0.5)
	}
}

func TestMatMul(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, Shape{2, 2})
	b := mustFromSlice(t, []float64{5, 6, 7, 8}, Shape{2, 2})

	c, err := MatMul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{19, 22, 43, 50}, c.Data())

	// [2,3] @ [3,1]
	d := mustFromSlice(t, []float64{1, 0, 2, 0, 1, 3}, Shape{2, 3})
	e := mustFromSlice(t, []float64{1, 1, 1}, Shape{3, 1})
	f, err := MatMul(d, e)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 1}, f.Shape())
	assert.Equal(t, []float64{3, 4}, f.Data())
}

func TestMatMul_ShapeMismatch(t *testing.T) {
	a := mustFromSlice(t, make([]float64, 6), Shape{2, 3})
	b := mustFromSlice(t, make([]float64, 4), Shape{2, 2})
	v := mustFromSlice(t, make([]float64, 3), Shape{3})

	tests := []struct {
		name string
		a, b *Tensor
	}{
		{"inner dims", a, b},
		{"rank 1 operand", a, v},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MatMul(tt.a, tt.b)
			require.ErrorIs(t, err, ErrShapeMismatch)

			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, "matmul", shapeErr.Op)
			assert.Len(t, shapeErr.Shapes, 2)
			assert.Contains(t, err.Error(), tt.a.Shape().String())
		})
	}
}

func TestAddRowVector(t *testing.T) {
	m := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{3, 2})
	v := mustFromSlice(t, []float64{10, 20}, Shape{2})

	out, err := AddRowVector(m, v)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 13, 24, 15, 26}, out.Data())

	// Operands are untouched.
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())
}

func TestAddRowVector_ShapeMismatch(t *testing.T) {
	m := mustFromSlice(t, make([]float64, 6), Shape{3, 2})
	v := mustFromSlice(t, make([]float64, 3), Shape{3})

	_, err := AddRowVector(m, v)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = AddRowVector(m, m)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestTranspose(t *testing.T) {
	m := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	tr, err := Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, tr.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Data())

	_, err = Transpose(mustFromSlice(t, []float64{1}, Shape{1}))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSum(t *testing.T) {
	m := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	rows, err := Sum(m, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{3}, rows.Shape())
	assert.Equal(t, []float64{5, 7, 9}, rows.Data())

	cols, err := Sum(m, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2}, cols.Shape())
	assert.Equal(t, []float64{6, 15}, cols.Data())

	_, err = Sum(m, 2)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAllClose(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2}, Shape{2})
	b := mustFromSlice(t, []float64{1, 2.0005}, Shape{2})
	c := mustFromSlice(t, []float64{1, 2}, Shape{1, 2})

	assert.True(t, AllClose(a, b, 1e-3))
	assert.False(t, AllClose(a, b, 1e-6))
	assert.False(t, AllClose(a, c, 1))
}

func TestRowKernels_SplitMatchesSequential(t *testing.T) {
	m, err := Randn(Shape{1024, 300}, rand.NewSource(11))
	require.NoError(t, err)
	v, err := Randn(Shape{300}, rand.NewSource(12))
	require.NoError(t, err)

	run := func(cfg parallel.Config) []*Tensor {
		saved := rowLoop
		rowLoop = cfg
		defer func() { rowLoop = saved }()

		added, err := AddRowVector(m, v)
		require.NoError(t, err)
		s0, err := Sum(m, 0)
		require.NoError(t, err)
		s1, err := Sum(m, 1)
		require.NoError(t, err)
		return []*Tensor{added, s0, s1}
	}

	split := run(parallel.Config{Enabled: true, Workers: 8, MinChunk: 16})
	serial := run(parallel.Sequential())
	for i := range serial {
		assert.Equal(t, serial[i].Data(), split[i].Data())
	}
}
