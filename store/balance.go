package store

import (
	"github.com/MixinNetwork/uniques/uniques"
	"github.com/shopspring/decimal"
)

// The balance ledger lives in the same transaction as every other record,
// so a failed command rolls its reservations back with the rest of its
// writes. Amounts are stored as decimal strings.

func (s *StateTxn) readAmount(prefix, account string) (decimal.Decimal, error) {
	val, err := s.get([]byte(prefix + account))
	if err != nil || val == nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(string(val))
}

func (s *StateTxn) writeAmount(prefix, account string, amount decimal.Decimal) error {
	return s.txn.Set([]byte(prefix+account), []byte(amount.String()))
}

func (s *StateTxn) FreeBalance(account string) (decimal.Decimal, error) {
	return s.readAmount(prefixBalanceFree, account)
}

func (s *StateTxn) ReservedBalance(account string) (decimal.Decimal, error) {
	return s.readAmount(prefixBalanceReserved, account)
}

func (s *StateTxn) Reserve(account string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return nil
	}
	free, err := s.FreeBalance(account)
	if err != nil {
		return err
	}
	if free.Cmp(amount) < 0 {
		return uniques.ErrInsufficientBalance
	}
	reserved, err := s.ReservedBalance(account)
	if err != nil {
		return err
	}
	err = s.writeAmount(prefixBalanceFree, account, free.Sub(amount))
	if err != nil {
		return err
	}
	return s.writeAmount(prefixBalanceReserved, account, reserved.Add(amount))
}

func (s *StateTxn) Unreserve(account string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, nil
	}
	reserved, err := s.ReservedBalance(account)
	if err != nil {
		return decimal.Zero, err
	}
	actual := amount
	if reserved.Cmp(actual) < 0 {
		actual = reserved
	}
	free, err := s.FreeBalance(account)
	if err != nil {
		return decimal.Zero, err
	}
	err = s.writeAmount(prefixBalanceReserved, account, reserved.Sub(actual))
	if err != nil {
		return decimal.Zero, err
	}
	err = s.writeAmount(prefixBalanceFree, account, free.Add(actual))
	if err != nil {
		return decimal.Zero, err
	}
	return actual, nil
}

func (s *StateTxn) Transfer(from, to string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 || from == to {
		return nil
	}
	src, err := s.FreeBalance(from)
	if err != nil {
		return err
	}
	if src.Cmp(amount) < 0 {
		return uniques.ErrInsufficientBalance
	}
	dst, err := s.FreeBalance(to)
	if err != nil {
		return err
	}
	err = s.writeAmount(prefixBalanceFree, from, src.Sub(amount))
	if err != nil {
		return err
	}
	return s.writeAmount(prefixBalanceFree, to, dst.Add(amount))
}

// Credit funds an account's free balance, used for genesis allocations.
func (s *StateTxn) Credit(account string, amount decimal.Decimal) error {
	free, err := s.FreeBalance(account)
	if err != nil {
		return err
	}
	return s.writeAmount(prefixBalanceFree, account, free.Add(amount))
}
