package uniques

import "github.com/shopspring/decimal"

// SetPrice lists an item for sale, optionally to a single whitelisted
// buyer. A nil price clears the listing. Item owner only.
func (p *Pallet) SetPrice(s State, o Origin, c CollectionID, i ItemID, price *decimal.Decimal, buyer string) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	item, err := readItem(s, c, i)
	if err != nil {
		return nil, err
	}
	if !o.Force {
		if !o.valid() {
			return nil, ErrBadOrigin
		}
		if o.Account != item.Owner {
			return nil, ErrNoPermission
		}
	}
	if price == nil {
		listing, err := s.ReadPrice(c, i)
		if err != nil {
			return nil, err
		}
		if listing == nil {
			return nil, nil
		}
		err = s.DeletePrice(c, i)
		if err != nil {
			return nil, err
		}
		evs := []Event{{Kind: EventItemPriceRemoved, Collection: c, Item: &i}}
		return evs, nil
	}
	if col.Settings.Has(SettingLockedTransfers) {
		return nil, ErrItemsNonTransferable
	}
	if item.TransferLocked {
		return nil, ErrItemLocked
	}
	err = s.WritePrice(&PriceListing{Collection: c, Item: i, Price: *price, Buyer: buyer})
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventItemPriceSet, Collection: c, Item: &i, Amount: price.String(), Peer: buyer}}
	return evs, nil
}

// BuyItem matches a listing. The buyer pays the listed price, not the bid,
// and ownership, funds and the listing move in the same transaction or not
// at all.
func (p *Pallet) BuyItem(s State, o Origin, c CollectionID, i ItemID, bid decimal.Decimal) ([]Event, error) {
	if !o.valid() || o.Force {
		return nil, ErrBadOrigin
	}
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	item, err := readItem(s, c, i)
	if err != nil {
		return nil, err
	}
	listing, err := s.ReadPrice(c, i)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrNotForSale
	}
	if bid.Cmp(listing.Price) < 0 {
		return nil, ErrBidTooLow
	}
	if listing.Buyer != "" && listing.Buyer != o.Account {
		return nil, ErrNoPermission
	}
	if o.Account == item.Owner {
		return nil, ErrNoPermission
	}
	if col.Settings.Has(SettingLockedTransfers) {
		return nil, ErrItemsNonTransferable
	}
	if item.TransferLocked {
		return nil, ErrItemLocked
	}
	seller := item.Owner
	err = s.Transfer(o.Account, seller, listing.Price)
	if err != nil {
		return nil, err
	}
	err = p.moveItem(s, col, item, o.Account)
	if err != nil {
		return nil, err
	}
	evs := []Event{{
		Kind:       EventItemBought,
		Collection: c,
		Item:       &i,
		Account:    o.Account,
		Peer:       seller,
		Amount:     listing.Price.String(),
	}}
	return evs, nil
}
