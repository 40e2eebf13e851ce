// Command maxinversions prints the number of strictly decreasing index
// triples in an array.
//
// Input on stdin: n, then n integers.
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
	log.SetPrefix("maxinversions: ")

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
	arr, err := r.Int64s("arr", n)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	fmt.Fprintln(w, interview.WeightedInversions(arr))
	return w.Flush()
}
