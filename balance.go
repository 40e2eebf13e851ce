package interview

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
)

// NobodyNegative is returned by SmallestNegativeBalance when no identity
// ends up with a negative balance.
const NobodyNegative = "Nobody has a negative balance"

// Debt records that Borrower owes Lender Amount.
type Debt struct {
	Borrower string
	Lender   string
	Amount   int64
}

func (d Debt) String() string {
	return fmt.Sprintf("%s->%s:%d", d.Borrower, d.Lender, d.Amount)
}

// ParseDebt builds a Debt from a raw [borrower, lender, amount] record.
func ParseDebt(fields []string) (Debt, error) {
	if len(fields) != 3 {
		return Debt{}, invalidf("debt", "expected 3 fields, got %d", len(fields))
	}

	amount, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Debt{}, numberError("amount", fields[2], err)
	}
	if amount < 0 {
		return Debt{}, invalidf("amount", "must not be negative, got %d", amount)
	}

	return Debt{Borrower: fields[0], Lender: fields[1], Amount: amount}, nil
}

// Balances nets every debt into a per-identity balance: borrowers are
// debited and lenders credited. Any identity named in a record is present
// in the result, even when it nets to zero. Only the final net balances
// must fit in an int64, so the order of the records never matters.
func Balances(debts []Debt) (map[string]int64, error) {
	net := make(map[string]*big.Int)
	account := func(name string) *big.Int {
		b, ok := net[name]
		if !ok {
			b = new(big.Int)
			net[name] = b
		}
		return b
	}

	var amount big.Int
	for i, d := range debts {
		if d.Amount < 0 {
			return nil, invalidf("amount", "record %d (%s) must not be negative", i, d)
		}
		amount.SetInt64(d.Amount)
		account(d.Borrower).Sub(account(d.Borrower), &amount)
		account(d.Lender).Add(account(d.Lender), &amount)
	}

	balance := make(map[string]int64, len(net))
	for name, b := range net {
		if !b.IsInt64() {
			return nil, invalidf("amount", "net balance %s of %q overflows int64", b, name)
		}
		balance[name] = b.Int64()
	}

	return balance, nil
}

// SmallestNegativeBalance returns, in ascending order, every identity
// whose net balance is the minimum, provided that minimum is negative.
// Otherwise it returns a single NobodyNegative entry.
func SmallestNegativeBalance(debts []Debt) ([]string, error) {
	balance, err := Balances(debts)
	if err != nil {
		return nil, err
	}

	var minBalance int64
	for _, b := range balance {
		if b < minBalance {
			minBalance = b
		}
	}

	if minBalance >= 0 {
		return []string{NobodyNegative}, nil
	}

	var result []string
	for name, b := range balance {
		if b == minBalance {
			result = append(result, name)
		}
	}
	sort.Strings(result)

	return result, nil
}
