//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of cellsnake requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/snake-gui` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "The terminal version is `go run ./cmd/snake`.")
	os.Exit(2)
}
