// Command carparking prints the length of the shortest roof that covers
// k of the parked cars.
//
// Input on stdin: n, then n car positions, then k.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	interview "github.com/caio/go-interview"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("carparking: ")

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(in io.Reader, out io.Writer) error {
	r := interview.NewReader(in)

	n, err := r.Count("n")
	if err != nil {
		return err
	}
	cars, err := r.Int64s("cars", n)
	if err != nil {
		return err
	}
	k, err := r.Int("k")
	if err != nil {
		return err
	}

	length, err := interview.MinCoveringWindow(cars, k)
	if err != nil {
		return fmt.Errorf("roof length: %w", err)
	}

	w := bufio.NewWriter(out)
	fmt.Fprintln(w, length)
	return w.Flush()
}
