package interview

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Reader reads whitespace-separated tokens, the input format shared by
// all of the commands.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	return &Reader{scanner: s}
}

// Token returns the next token. field names the value being read and is
// only used in error messages.
func (r *Reader) Token(field string) (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", field, err)
	}
	return "", &InputError{Field: field, Err: io.ErrUnexpectedEOF}
}

// Int64 reads the next token as a base-10 int64.
func (r *Reader) Int64(field string) (int64, error) {
	tok, err := r.Token(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, numberError(field, tok, err)
	}
	return n, nil
}

// Int reads the next token as a base-10 int.
func (r *Reader) Int(field string) (int, error) {
	tok, err := r.Token(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, numberError(field, tok, err)
	}
	return n, nil
}

// Count reads a non-negative element count.
func (r *Reader) Count(field string) (int, error) {
	n, err := r.Int(field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, invalidf(field, "must not be negative, got %d", n)
	}
	return n, nil
}

// Int64s reads n int64 values.
func (r *Reader) Int64s(field string, n int) ([]int64, error) {
	xs := make([]int64, 0, min(n, 1<<16))
	for i := 0; i < n; i++ {
		x, err := r.Int64(fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, nil
}

// Debts reads n records of three tokens each.
func (r *Reader) Debts(n int) ([]Debt, error) {
	debts := make([]Debt, 0, min(n, 1<<16))
	fields := make([]string, 3)
	for i := 0; i < n; i++ {
		for c := range fields {
			tok, err := r.Token(fmt.Sprintf("debts[%d][%d]", i, c))
			if err != nil {
				return nil, err
			}
			fields[c] = tok
		}
		d, err := ParseDebt(fields)
		if err != nil {
			return nil, fmt.Errorf("debts[%d]: %w", i, err)
		}
		debts = append(debts, d)
	}
	return debts, nil
}
