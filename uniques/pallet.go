package uniques

import "github.com/shopspring/decimal"

// DepositParams is the deposit schedule charged for collections, items,
// metadata and attributes.
type DepositParams struct {
	CollectionDeposit    decimal.Decimal
	ItemDeposit          decimal.Decimal
	MetadataDepositBase  decimal.Decimal
	AttributeDepositBase decimal.Decimal
	DepositPerByte       decimal.Decimal
}

// Pallet is the command surface over a deposit-accounted registry of
// unique-item collections. Commands take the transactional State they run
// in and return the events to emit once that State commits.
type Pallet struct {
	params DepositParams
}

func NewPallet(params DepositParams) *Pallet {
	return &Pallet{params: params}
}

func (p *Pallet) Params() DepositParams {
	return p.params
}

func (p *Pallet) bytesDeposit(base decimal.Decimal, size int) decimal.Decimal {
	return base.Add(p.params.DepositPerByte.Mul(decimal.NewFromInt(int64(size))))
}

func readCollection(s State, c CollectionID) (*Collection, error) {
	col, err := s.ReadCollection(c)
	if err != nil {
		return nil, err
	}
	if col == nil {
		return nil, ErrUnknownCollection
	}
	return col, nil
}

func readItem(s State, c CollectionID, i ItemID) (*Item, error) {
	item, err := s.ReadItem(c, i)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrUnknownItem
	}
	return item, nil
}
