package main

import (
	"bytes"
	"testing"

	"github.com/born-ml/ffnet/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShapesArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		sizes   []int
		batch   int
		wantErr bool
	}{
		{name: "default batch", args: []string{"3", "4", "2"}, sizes: []int{3, 4, 2}, batch: defaultBatch},
		{name: "explicit batch", args: []string{"3", "-b", "5", "2"}, sizes: []int{3, 2}, batch: 5},
		{name: "one size", args: []string{"3"}, wantErr: true},
		{name: "not a number", args: []string{"3", "x"}, wantErr: true},
		{name: "missing batch", args: []string{"3", "2", "-b"}, wantErr: true},
		{name: "zero batch", args: []string{"3", "2", "-b", "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizes, batch, err := parseShapesArgs(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sizes, sizes)
			assert.Equal(t, tt.batch, batch)
		})
	}
}

func TestRunShapes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runShapes(&buf, []string{"3", "4", "2", "-b", "5"}))

	out := buf.String()
	assert.Contains(t, out, "forward:  (5, 3) -> (5, 2)")
	assert.Contains(t, out, "backward: (5, 2) -> (5, 3)")
	assert.Contains(t, out, "Linear(in=3, out=4)")
	assert.Contains(t, out, "pair 3: (4, 2) (2)")
}

func TestRunShapesInvalidSize(t *testing.T) {
	err := runShapes(&bytes.Buffer{}, []string{"3", "0"})
	assert.ErrorIs(t, err, nn.ErrInvalidConstruction)
}
