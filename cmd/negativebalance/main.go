// Command negativebalance prints the identities left with the most
// negative balance after settling a list of debts, one per line.
//
// Input on stdin: n, the column count (always 3), then n records of
// borrower, lender and amount.
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
	log.SetPrefix("negativebalance: ")

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
	cols, err := r.Int("cols")
	if err != nil {
		return err
	}
	if cols != 3 {
		return &interview.InputError{Field: "cols", Message: fmt.Sprintf("expected 3, got %d", cols)}
	}
	debts, err := r.Debts(n)
	if err != nil {
		return err
	}

	names, err := interview.SmallestNegativeBalance(debts)
	if err != nil {
		return fmt.Errorf("balances: %w", err)
	}

	w := bufio.NewWriter(out)
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return w.Flush()
}
