//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The seat viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/seats-view -layout <file>` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless runs use ./cmd/seats.")
	os.Exit(2)
}
