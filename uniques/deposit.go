package uniques

import "github.com/shopspring/decimal"

// The deposit helpers are the only code path that reserves or releases
// balances. Everything a command reserves rides inside the same State, so
// a failed command never leaves a reservation dangling.

func holdDeposit(s State, account string, amount decimal.Decimal) (Deposit, error) {
	if amount.Sign() <= 0 {
		return Deposit{Account: account, Amount: decimal.Zero}, nil
	}
	err := s.Reserve(account, amount)
	if err != nil {
		return Deposit{}, err
	}
	return Deposit{Account: account, Amount: amount}, nil
}

func releaseDeposit(s State, d Deposit) error {
	if d.Amount.Sign() <= 0 {
		return nil
	}
	_, err := s.Unreserve(d.Account, d.Amount)
	return err
}

// moveDeposit re-homes a deposit onto a new payer or amount. On the same
// payer only the difference is reserved or released. Across payers the new
// reservation is taken before the old one is released, so an insufficient
// payer fails the command instead of leaking the old deposit.
func moveDeposit(s State, old Deposit, account string, amount decimal.Decimal) (Deposit, error) {
	if old.Account == account {
		diff := amount.Sub(old.Amount)
		switch {
		case diff.Sign() > 0:
			err := s.Reserve(account, diff)
			if err != nil {
				return Deposit{}, err
			}
		case diff.Sign() < 0:
			_, err := s.Unreserve(account, diff.Neg())
			if err != nil {
				return Deposit{}, err
			}
		}
		return Deposit{Account: account, Amount: amount}, nil
	}
	nd, err := holdDeposit(s, account, amount)
	if err != nil {
		return Deposit{}, err
	}
	err = releaseDeposit(s, old)
	if err != nil {
		return Deposit{}, err
	}
	return nd, nil
}
