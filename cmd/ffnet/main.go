// Package main provides the ffnet CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/born-ml/ffnet/nn"
	"github.com/born-ml/ffnet/tensor"
	"golang.org/x/exp/rand"
)

const version = "v0.0.1-dev"

const defaultBatch = 4

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("ffnet %s\n", version)
			return
		case "shapes":
			if err := runShapes(os.Stdout, os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("ffnet - Feed-forward networks for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                      Show version")
	fmt.Println("  shapes <sizes...> [-b N]     Trace forward/backward shapes, e.g. shapes 3 4 2 -b 5")
}

// runShapes builds a network of Linear layers from consecutive sizes and
// prints the shape of every tensor produced by one forward and backward pass.
func runShapes(w io.Writer, args []string) error {
	sizes, batch, err := parseShapesArgs(args)
	if err != nil {
		return err
	}

	layers := make([]nn.Layer, 0, len(sizes)-1)
	for i := 0; i+1 < len(sizes); i++ {
		l, err := nn.NewLinear(sizes[i], sizes[i+1], nn.WithSeed(uint64(i+1)))
		if err != nil {
			return err
		}
		layers = append(layers, l)
	}
	net, err := nn.NewNetwork(layers...)
	if err != nil {
		return err
	}

	x, err := tensor.Randn(tensor.Shape{batch, sizes[0]}, rand.NewSource(0))
	if err != nil {
		return err
	}
	y, err := net.Forward(x)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "forward:  %v -> %v\n", x.Shape(), y.Shape())

	grad, err := tensor.Full(y.Shape(), 1)
	if err != nil {
		return err
	}
	gradIn, err := net.Backward(grad, x)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "backward: %v -> %v\n", grad.Shape(), gradIn.Shape())

	for i := 0; i < net.Len(); i++ {
		fmt.Fprintf(w, "  [%d] %v\n", i, net.Layer(i))
	}
	pairs := net.ParamsAndGrads()
	for i, p := range pairs {
		fmt.Fprintf(w, "  pair %d: %v %v\n", i, p.First.Shape(), p.Second.Shape())
	}
	return nil
}

func parseShapesArgs(args []string) ([]int, int, error) {
	batch := defaultBatch
	var sizes []int
	for i := 0; i < len(args); i++ {
		if args[i] == "-b" {
			if i+1 >= len(args) {
				return nil, 0, fmt.Errorf("-b requires a value")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n <= 0 {
				return nil, 0, fmt.Errorf("invalid batch size %q", args[i+1])
			}
			batch = n
			i++
			continue
		}
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, 0, fmt.Errorf("invalid layer size %q", args[i])
		}
		sizes = append(sizes, n)
	}
	if len(sizes) < 2 {
		return nil, 0, fmt.Errorf("need at least two sizes, got %d", len(sizes))
	}
	return sizes, batch, nil
}
