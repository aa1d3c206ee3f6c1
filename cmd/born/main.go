// Package main provides the Born autodiff engine CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Born autodiff engine %s\n", version)
		return
	}

	fmt.Println("Born - a small reverse-mode autodiff engine for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Example programs (run directly, e.g. `go run ./examples/karpathy`):")
	fmt.Println("  examples/karpathy      scalar micrograd-style backprop")
	fmt.Println("  examples/andgate       linear unit trained on the AND truth table")
	fmt.Println("  examples/matrixvector  matrix-vector product with a bias")
	fmt.Println("  examples/nerf          positional encoding fitting a 2D image")
}
