// Command mf evaluates a dense MNIST classifier whose weights are stored in a
// Keras HDF5 file.
//
// Usage:
//
//	mf eval --images t10k-images-idx3-ubyte --labels t10k-labels-idx1-ubyte \
//	        --weights model.h5 --vendor xilinx --device u250
//	mf dataset --images ... --labels ...
//	mf weights --weights model.h5
//	mf version
//
// Every flag can also be given through the environment or a .env file.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run(newApp(os.Stdout, os.Stderr), os.Args[1:]))
}

// run executes the command line and returns the process exit code.
func run(a *app, args []string) int {
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(a.stderr, "mf: %v\n", err)
		return exitCode(err)
	}
	return 0
}
