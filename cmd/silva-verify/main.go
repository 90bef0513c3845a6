// Command silva-verify checks whether a trained decision tree or forest
// classifies a dataset's adversarial neighborhoods stably.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
