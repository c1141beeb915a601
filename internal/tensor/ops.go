package tensor

import (
	"fmt"

	"github.com/born-ml/ffnet/internal/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// rowLoop splits the per-row kernels below. Every output element is still
// produced by a single serial reduction, so results do not depend on it.
var rowLoop = parallel.DefaultConfig()

// MatMul computes the matrix product a @ b.
//
// Both operands must be rank 2 and a's column count must equal b's row
// count: [n, k] @ [k, m] = [n, m].
func MatMul(a, b *Tensor) (*Tensor, error) {
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, NewShapeError("matmul", "both operands must be rank 2", a.shape, b.shape)
	}
	if a.shape[1] != b.shape[0] {
		return nil, NewShapeError("matmul",
			fmt.Sprintf("inner dimensions %d and %d differ", a.shape[1], b.shape[0]), a.shape, b.shape)
	}

	out := mat.NewDense(a.shape[0], b.shape[1], nil)
	out.Mul(a.dense, b.dense)
	return newTensor(Shape{a.shape[0], b.shape[1]}, out), nil
}

// AddRowVector adds the rank-1 tensor v to every row of the rank-2 tensor m.
//
// [n, k] + [k] = [n, k]. This is the only broadcast this package performs.
func AddRowVector(m, v *Tensor) (*Tensor, error) {
	if m.Rank() != 2 || v.Rank() != 1 {
		return nil, NewShapeError("add", "want a rank-2 matrix and a rank-1 vector", m.shape, v.shape)
	}
	if m.shape[1] != v.shape[0] {
		return nil, NewShapeError("add",
			fmt.Sprintf("vector length %d does not match %d columns", v.shape[0], m.shape[1]), m.shape, v.shape)
	}

	out := mat.DenseCopyOf(m.dense)
	row := v.dense.RawRowView(0)
	parallel.For(m.shape[0], rowLoop, func(i int) {
		floats.Add(out.RawRowView(i), row)
	})
	return newTensor(m.shape, out), nil
}

// Transpose returns the transpose of a rank-2 tensor: [n, m] -> [m, n].
func Transpose(t *Tensor) (*Tensor, error) {
	if t.Rank() != 2 {
		return nil, NewShapeError("transpose", "operand must be rank 2", t.shape)
	}
	return newTensor(Shape{t.shape[1], t.shape[0]}, mat.DenseCopyOf(t.dense.T())), nil
}

// Sum reduces a rank-2 tensor over the given axis.
//
// Axis 0 sums over rows and yields [cols]; axis 1 sums over columns and
// yields [rows].
func Sum(t *Tensor, axis int) (*Tensor, error) {
	if t.Rank() != 2 {
		return nil, NewShapeError("sum", "operand must be rank 2", t.shape)
	}

	switch axis {
	case 0:
		rows, cols := t.shape[0], t.shape[1]
		out := make([]float64, cols)
		parallel.Range(cols, rowLoop, func(lo, hi int) {
			col := make([]float64, rows)
			for j := lo; j < hi; j++ {
				mat.Col(col, j, t.dense)
				out[j] = floats.Sum(col)
			}
		})
		return newTensor(Shape{cols}, mat.NewDense(1, cols, out)), nil
	case 1:
		rows := t.shape[0]
		out := make([]float64, rows)
		parallel.For(rows, rowLoop, func(i int) {
			out[i] = floats.Sum(t.dense.RawRowView(i))
		})
		return newTensor(Shape{rows}, mat.NewDense(1, rows, out)), nil
	default:
		return nil, NewShapeError("sum", fmt.Sprintf("axis %d out of range for rank 2", axis), t.shape)
	}
}
