package uniques_test

import (
	"context"
	"testing"

	"github.com/MixinNetwork/uniques/store"
	"github.com/MixinNetwork/uniques/uniques"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "4b188942-9fb0-4b99-b4be-e741a06eb1af"
	bob   = "38aaa0e1-b911-4a3e-9c88-0a9bb101aadb"
	carol = "c91eb626-eb89-4fbd-991a-bd0cdfc3fcc0"
)

func amt(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(s)
	}
	return d
}

func testParams() uniques.DepositParams {
	return uniques.DepositParams{
		CollectionDeposit:    amt("10"),
		ItemDeposit:          amt("1"),
		MetadataDepositBase:  amt("2"),
		AttributeDepositBase: amt("2"),
		DepositPerByte:       amt("0.1"),
	}
}

func testLedger(t *testing.T) (*store.BadgerStore, *uniques.Pallet) {
	db, err := store.OpenBadger(context.Background(), "")
	require.Nil(t, err)
	t.Cleanup(func() { db.Close() })

	err = db.Update(func(s uniques.State) error {
		for _, a := range []string{alice, bob, carol} {
			err := s.Credit(a, amt("100"))
			if err != nil {
				return err
			}
		}
		return nil
	})
	require.Nil(t, err)
	return db, uniques.NewPallet(testParams())
}

func mustUpdate(t *testing.T, db *store.BadgerStore, fn func(s uniques.State) error) {
	require.Nil(t, db.Update(fn))
}

func balances(t *testing.T, db *store.BadgerStore, account string) (free, reserved decimal.Decimal) {
	err := db.View(func(s uniques.State) error {
		var err error
		free, err = s.FreeBalance(account)
		if err != nil {
			return err
		}
		reserved, err = s.ReservedBalance(account)
		return err
	})
	require.Nil(t, err)
	return free, reserved
}

func createCollection(t *testing.T, db *store.BadgerStore, p *uniques.Pallet, owner, admin string, cfg uniques.CollectionConfig) uniques.CollectionID {
	var id uniques.CollectionID
	mustUpdate(t, db, func(s uniques.State) error {
		var err error
		id, _, err = p.Create(s, uniques.SignedOrigin(owner), admin, cfg)
		return err
	})
	return id
}

func publicConfig() uniques.CollectionConfig {
	return uniques.CollectionConfig{Mint: uniques.MintSettings{Type: uniques.MintTypePublic}}
}

func TestCreateDestroyDepositRoundTrip(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	free, reserved := balances(t, db, alice)
	require.Equal("90", free.String())
	require.Equal("10", reserved.String())

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Destroy(s, uniques.SignedOrigin(alice), id, uniques.DestroyWitness{})
		return err
	})
	free, reserved = balances(t, db, alice)
	require.Equal("100", free.String())
	require.Equal("0", reserved.String())

	err := db.View(func(s uniques.State) error {
		col, err := s.ReadCollection(id)
		require.Nil(err)
		require.Nil(col)
		return nil
	})
	require.Nil(err)
}

func TestDestroyWitnessAndEmptiness(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 1, alice, nil)
		return err
	})

	err := db.Update(func(s uniques.State) error {
		_, err := p.Destroy(s, uniques.SignedOrigin(alice), id, uniques.DestroyWitness{})
		return err
	})
	require.Equal(uniques.ErrCollectionNotEmpty, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Burn(s, uniques.SignedOrigin(alice), id, 1)
		return err
	})
	err = db.Update(func(s uniques.State) error {
		_, err := p.Destroy(s, uniques.SignedOrigin(alice), id, uniques.DestroyWitness{Attributes: 7})
		return err
	})
	require.Equal(uniques.ErrBadWitness, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Destroy(s, uniques.SignedOrigin(alice), id, uniques.DestroyWitness{})
		return err
	})
}

func TestMintBurnDepositRoundTrip(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	_, before := balances(t, db, alice)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 7, alice, nil)
		return err
	})
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetItemMetadata(s, uniques.SignedOrigin(alice), id, 7, []byte("meta"))
		return err
	})
	item := uniques.ItemID(7)
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetAttribute(s, uniques.SignedOrigin(alice), id, &item, uniques.ItemOwnerNamespace(), []byte("k"), []byte("v"))
		return err
	})

	_, during := balances(t, db, alice)
	require.True(during.Cmp(before) > 0)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Burn(s, uniques.SignedOrigin(alice), id, 7)
		return err
	})
	_, after := balances(t, db, alice)
	require.True(after.Equal(before))

	err := db.View(func(s uniques.State) error {
		col, err := s.ReadCollection(id)
		require.Nil(err)
		require.Equal(uint32(0), col.Items)
		require.Equal(uint32(0), col.ItemMetadatas)
		require.Equal(uint32(0), col.Attributes)
		return nil
	})
	require.Nil(err)
}

func TestLockCollectionMonotonic(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	lock := func(bits uniques.CollectionSettings) {
		mustUpdate(t, db, func(s uniques.State) error {
			_, err := p.LockCollection(s, uniques.SignedOrigin(alice), id, bits)
			return err
		})
	}
	lock(uniques.SettingLockedMetadata | uniques.SettingLockedAttributes)
	lock(uniques.SettingLockedMetadata)
	lock(0)

	err := db.View(func(s uniques.State) error {
		col, err := s.ReadCollection(id)
		require.Nil(err)
		require.True(col.Settings.Has(uniques.SettingLockedMetadata))
		require.True(col.Settings.Has(uniques.SettingLockedAttributes))
		require.False(col.Settings.Has(uniques.SettingLockedMaxSupply))
		return nil
	})
	require.Nil(err)

	err = db.Update(func(s uniques.State) error {
		_, err := p.SetAttribute(s, uniques.SignedOrigin(alice), id, nil, uniques.CollectionOwnerNamespace(), []byte("k"), []byte("v"))
		return err
	})
	require.Equal(uniques.ErrAttributesLocked, err)
}

func TestAttributeDepositDelta(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	set := func(value []byte) {
		mustUpdate(t, db, func(s uniques.State) error {
			_, err := p.SetAttribute(s, uniques.SignedOrigin(alice), id, nil, uniques.CollectionOwnerNamespace(), []byte("kk"), value)
			return err
		})
	}

	_, base := balances(t, db, alice)
	set([]byte("12345"))
	_, r1 := balances(t, db, alice)
	// base 2 + 0.1 * (2 + 5)
	require.Equal("2.7", r1.Sub(base).String())

	set([]byte("123456789"))
	_, r2 := balances(t, db, alice)
	require.Equal("0.4", r2.Sub(r1).String())

	set([]byte("1"))
	_, r3 := balances(t, db, alice)
	require.Equal("2.3", r3.Sub(base).String())

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.ClearAttribute(s, uniques.SignedOrigin(alice), id, nil, uniques.CollectionOwnerNamespace(), []byte("kk"))
		return err
	})
	_, r4 := balances(t, db, alice)
	require.True(r4.Equal(base))
}

func TestMaxSupplyScenario(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	max := uint32(1)
	cfg := publicConfig()
	cfg.MaxSupply = &max
	id := createCollection(t, db, p, alice, alice, cfg)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 1, alice, nil)
		return err
	})
	err := db.Update(func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 2, alice, nil)
		return err
	})
	require.Equal(uniques.ErrMaxSupplyReached, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Transfer(s, uniques.SignedOrigin(alice), id, 1, bob)
		return err
	})

	err = db.Update(func(s uniques.State) error {
		_, err := p.Burn(s, uniques.SignedOrigin(alice), id, 1)
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Burn(s, uniques.SignedOrigin(bob), id, 1)
		return err
	})
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Destroy(s, uniques.SignedOrigin(alice), id, uniques.DestroyWitness{})
		return err
	})
}

func TestItemOwnerAttributeFollowsOwner(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 1, alice, nil)
		return err
	})
	item := uniques.ItemID(1)
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetAttribute(s, uniques.SignedOrigin(alice), id, &item, uniques.ItemOwnerNamespace(), []byte("k"), []byte("value"))
		return err
	})

	_, aliceReserved := balances(t, db, alice)
	bobFreeBefore, _ := balances(t, db, bob)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Transfer(s, uniques.SignedOrigin(alice), id, 1, bob)
		return err
	})
	// the attribute deposit moved from alice to bob with the item
	_, aliceAfter := balances(t, db, alice)
	_, bobReserved := balances(t, db, bob)
	attrDeposit := amt("2").Add(amt("0.1").Mul(amt("6")))
	require.True(aliceReserved.Sub(aliceAfter).Equal(attrDeposit))
	require.True(bobReserved.Equal(attrDeposit))

	err := db.Update(func(s uniques.State) error {
		_, err := p.ClearAttribute(s, uniques.SignedOrigin(alice), id, &item, uniques.ItemOwnerNamespace(), []byte("k"))
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.ClearAttribute(s, uniques.SignedOrigin(bob), id, &item, uniques.ItemOwnerNamespace(), []byte("k"))
		return err
	})
	bobFree, bobReservedAfter := balances(t, db, bob)
	require.Equal("0", bobReservedAfter.String())
	require.True(bobFree.Equal(bobFreeBefore))
}

func TestBuyItemAtomicity(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 1, alice, nil)
		return err
	})
	price := amt("25")
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetPrice(s, uniques.SignedOrigin(alice), id, 1, &price, "")
		return err
	})

	aliceFree, _ := balances(t, db, alice)
	bobFree, _ := balances(t, db, bob)

	err := db.View(func(s uniques.State) error {
		listed, err := uniques.ItemPrice(s, id, 1)
		require.Nil(err)
		require.True(listed.Equal(price))
		return nil
	})
	require.Nil(err)

	err = db.Update(func(s uniques.State) error {
		_, err := p.BuyItem(s, uniques.SignedOrigin(alice), id, 1, price)
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)

	err = db.Update(func(s uniques.State) error {
		_, err := p.BuyItem(s, uniques.SignedOrigin(bob), id, 1, amt("20"))
		return err
	})
	require.Equal(uniques.ErrBidTooLow, err)

	// nothing moved
	f, _ := balances(t, db, alice)
	assert.True(f.Equal(aliceFree))
	f, _ = balances(t, db, bob)
	assert.True(f.Equal(bobFree))
	err = db.View(func(s uniques.State) error {
		item, err := s.ReadItem(id, 1)
		require.Nil(err)
		assert.Equal(alice, item.Owner)
		listing, err := s.ReadPrice(id, 1)
		require.Nil(err)
		require.NotNil(listing)
		return nil
	})
	require.Nil(err)

	// a higher bid still pays the listed price only
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.BuyItem(s, uniques.SignedOrigin(bob), id, 1, amt("30"))
		return err
	})
	f, _ = balances(t, db, alice)
	assert.True(f.Equal(aliceFree.Add(price)))
	f, _ = balances(t, db, bob)
	assert.True(f.Equal(bobFree.Sub(price)))
	err = db.View(func(s uniques.State) error {
		item, err := s.ReadItem(id, 1)
		require.Nil(err)
		assert.Equal(bob, item.Owner)
		listing, err := s.ReadPrice(id, 1)
		require.Nil(err)
		assert.Nil(listing)
		return nil
	})
	require.Nil(err)
}

func TestBuyItemWhitelist(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 1, alice, nil)
		return err
	})
	price := amt("5")
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetPrice(s, uniques.SignedOrigin(alice), id, 1, &price, carol)
		return err
	})

	err := db.Update(func(s uniques.State) error {
		_, err := p.BuyItem(s, uniques.SignedOrigin(bob), id, 1, price)
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.BuyItem(s, uniques.SignedOrigin(carol), id, 1, price)
		return err
	})
}

func TestTwoPhaseOwnershipTransfer(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())

	err := db.Update(func(s uniques.State) error {
		_, err := p.TransferOwnership(s, uniques.SignedOrigin(alice), id, bob)
		return err
	})
	require.Equal(uniques.ErrUnaccepted, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetAcceptOwnership(s, uniques.SignedOrigin(bob), id, false)
		return err
	})
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.TransferOwnership(s, uniques.SignedOrigin(alice), id, bob)
		return err
	})

	_, aliceReserved := balances(t, db, alice)
	_, bobReserved := balances(t, db, bob)
	require.Equal("0", aliceReserved.String())
	require.Equal("10", bobReserved.String())

	err = db.View(func(s uniques.State) error {
		col, err := s.ReadCollection(id)
		require.Nil(err)
		require.Equal(bob, col.Owner)
		require.Equal("", col.PendingOwner)
		return nil
	})
	require.Nil(err)
}

func TestRolePermissions(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	// bob holds admin, issuer and freezer
	cfg := publicConfig()
	cfg.Mint.Type = uniques.MintTypeIssuer
	id := createCollection(t, db, p, alice, bob, cfg)

	err := db.Update(func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(carol), id, 1, carol, nil)
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(bob), id, 1, carol, nil)
		return err
	})

	// only the freezer may lock transfers
	err = db.Update(func(s uniques.State) error {
		_, err := p.LockItemTransfer(s, uniques.SignedOrigin(carol), id, 1)
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.LockItemTransfer(s, uniques.SignedOrigin(bob), id, 1)
		return err
	})

	err = db.Update(func(s uniques.State) error {
		_, err := p.Transfer(s, uniques.SignedOrigin(carol), id, 1, alice)
		return err
	})
	require.Equal(uniques.ErrItemLocked, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.UnlockItemTransfer(s, uniques.SignedOrigin(bob), id, 1)
		return err
	})
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Transfer(s, uniques.SignedOrigin(carol), id, 1, alice)
		return err
	})

	// property locks are one-way
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.LockItemProperties(s, uniques.SignedOrigin(bob), id, 1, true, false)
		return err
	})
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.LockItemProperties(s, uniques.SignedOrigin(bob), id, 1, false, false)
		return err
	})
	err = db.Update(func(s uniques.State) error {
		_, err := p.SetItemMetadata(s, uniques.SignedOrigin(bob), id, 1, []byte("m"))
		return err
	})
	require.Equal(uniques.ErrMetadataLocked, err)
}

func TestMintHolderOfAndPrice(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	gate := createCollection(t, db, p, alice, alice, publicConfig())
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(bob), gate, 5, bob, nil)
		return err
	})

	price := amt("3")
	cfg := uniques.CollectionConfig{Mint: uniques.MintSettings{
		Type:     uniques.MintTypeHolderOf,
		HolderOf: gate,
		Price:    &price,
	}}
	id := createCollection(t, db, p, alice, alice, cfg)

	err := db.Update(func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(bob), id, 1, bob, nil)
		return err
	})
	require.Equal(uniques.ErrBadWitness, err)

	owned := uniques.ItemID(5)
	err = db.Update(func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(bob), id, 1, bob, &uniques.MintWitness{OwnedItem: &owned})
		return err
	})
	require.Equal(uniques.ErrBadWitness, err)

	aliceFree, _ := balances(t, db, alice)
	offered := amt("3")
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(bob), id, 1, bob, &uniques.MintWitness{OwnedItem: &owned, MintPrice: &offered})
		return err
	})
	f, _ := balances(t, db, alice)
	require.True(f.Equal(aliceFree.Add(price)))
}

func TestMintRollbackOnUnfundedPrice(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	price := amt("500")
	cfg := uniques.CollectionConfig{Mint: uniques.MintSettings{Type: uniques.MintTypePublic, Price: &price}}
	id := createCollection(t, db, p, alice, alice, cfg)

	_, bobReservedBefore := balances(t, db, bob)
	err := db.Update(func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(bob), id, 1, bob, &uniques.MintWitness{MintPrice: &price})
		return err
	})
	require.Equal(uniques.ErrInsufficientBalance, err)

	// the item deposit reserved before the price transfer failed must not
	// survive the rollback
	_, bobReserved := balances(t, db, bob)
	require.True(bobReserved.Equal(bobReservedBefore))
	err = db.View(func(s uniques.State) error {
		item, err := s.ReadItem(id, 1)
		require.Nil(err)
		require.Nil(item)
		col, err := s.ReadCollection(id)
		require.Nil(err)
		require.Equal(uint32(0), col.Items)
		return nil
	})
	require.Nil(err)
}

func TestRedepositBestEffort(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	for i := uniques.ItemID(1); i <= 2; i++ {
		mustUpdate(t, db, func(s uniques.State) error {
			_, err := p.Mint(s, uniques.SignedOrigin(bob), id, i, bob, nil)
			return err
		})
	}

	err := db.Update(func(s uniques.State) error {
		_, err := p.Redeposit(s, uniques.SignedOrigin(bob), id, []uniques.ItemID{1})
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)

	err = db.Update(func(s uniques.State) error {
		_, err := p.Redeposit(s, uniques.SignedOrigin(alice), 999, []uniques.ItemID{1})
		return err
	})
	require.Equal(uniques.ErrUnknownCollection, err)

	// unknown items are skipped, known ones move onto the collection owner
	var evs []uniques.Event
	mustUpdate(t, db, func(s uniques.State) error {
		var err error
		evs, err = p.Redeposit(s, uniques.SignedOrigin(alice), id, []uniques.ItemID{1, 42, 2})
		return err
	})
	require.Len(evs, 1)
	require.Equal([]uniques.ItemID{1, 2}, evs[0].Items)

	_, bobReserved := balances(t, db, bob)
	require.Equal("0", bobReserved.String())
	_, aliceReserved := balances(t, db, alice)
	require.Equal("12", aliceReserved.String())
}

func TestApprovalsAndDelegatedTransfer(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 1, alice, nil)
		return err
	})

	err := db.Update(func(s uniques.State) error {
		_, err := p.Transfer(s, uniques.SignedOrigin(carol), id, 1, carol)
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.ApproveTransfer(s, uniques.SignedOrigin(alice), id, 1, carol, nil)
		return err
	})
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Transfer(s, uniques.SignedOrigin(carol), id, 1, bob)
		return err
	})

	// approvals are cleared by the transfer
	err = db.View(func(s uniques.State) error {
		item, err := s.ReadItem(id, 1)
		require.Nil(err)
		require.Equal(bob, item.Owner)
		require.Len(item.Approvals, 0)
		return nil
	})
	require.Nil(err)
}

func TestForceOriginBypass(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 1, alice, nil)
		return err
	})
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Transfer(s, uniques.ForceOrigin(), id, 1, bob)
		return err
	})
	err := db.View(func(s uniques.State) error {
		item, err := s.ReadItem(id, 1)
		require.Nil(err)
		require.Equal(bob, item.Owner)
		return nil
	})
	require.Nil(err)

	// unset roles can only be filled back by force
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetTeam(s, uniques.SignedOrigin(alice), id, "", "", "")
		return err
	})
	err = db.Update(func(s uniques.State) error {
		_, err := p.SetTeam(s, uniques.SignedOrigin(alice), id, bob, bob, bob)
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetTeam(s, uniques.ForceOrigin(), id, bob, bob, bob)
		return err
	})
}

func TestMaxSupplyLocks(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 1, alice, nil)
		return err
	})

	err := db.Update(func(s uniques.State) error {
		_, err := p.SetCollectionMaxSupply(s, uniques.SignedOrigin(alice), id, 0)
		return err
	})
	require.Equal(uniques.ErrMaxSupplyAlreadySet, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetCollectionMaxSupply(s, uniques.SignedOrigin(alice), id, 5)
		return err
	})
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.LockCollection(s, uniques.SignedOrigin(alice), id, uniques.SettingLockedMaxSupply)
		return err
	})
	err = db.Update(func(s uniques.State) error {
		_, err := p.SetCollectionMaxSupply(s, uniques.SignedOrigin(alice), id, 9)
		return err
	})
	require.Equal(uniques.ErrMaxSupplyLocked, err)
}

func TestAttributeNamespaces(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, bob, publicConfig())

	// item-owner namespace requires an item
	err := db.Update(func(s uniques.State) error {
		_, err := p.SetAttribute(s, uniques.SignedOrigin(alice), id, nil, uniques.ItemOwnerNamespace(), []byte("k"), []byte("v"))
		return err
	})
	require.Equal(uniques.ErrWrongNamespace, err)

	// collection-owner namespace writes go through the admin
	err = db.Update(func(s uniques.State) error {
		_, err := p.SetAttribute(s, uniques.SignedOrigin(alice), id, nil, uniques.CollectionOwnerNamespace(), []byte("k"), []byte("v"))
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetAttribute(s, uniques.SignedOrigin(bob), id, nil, uniques.CollectionOwnerNamespace(), []byte("k"), []byte("v"))
		return err
	})
	// and the deposit lands on the collection owner, not the admin
	_, aliceReserved := balances(t, db, alice)
	require.Equal("12.2", aliceReserved.String())

	// account namespace is writable by the named account only
	err = db.Update(func(s uniques.State) error {
		_, err := p.SetAttribute(s, uniques.SignedOrigin(bob), id, nil, uniques.AccountNamespace(carol), []byte("c"), []byte("v"))
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetAttribute(s, uniques.SignedOrigin(carol), id, nil, uniques.AccountNamespace(carol), []byte("c"), []byte("v"))
		return err
	})
	_, carolReserved := balances(t, db, carol)
	require.Equal("2.2", carolReserved.String())

	err = db.Update(func(s uniques.State) error {
		_, err := p.ClearAttribute(s, uniques.SignedOrigin(carol), id, nil, uniques.AccountNamespace(carol), []byte("missing"))
		return err
	})
	require.Equal(uniques.ErrAttributeNotFound, err)
}

func bumpHeight(t *testing.T, db *store.BadgerStore, to uint64) {
	mustUpdate(t, db, func(s uniques.State) error {
		for {
			height, err := s.IncrementHeight()
			if err != nil {
				return err
			}
			if height >= to {
				return nil
			}
		}
	})
}

func TestMintWindow(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	cfg := publicConfig()
	cfg.Mint.StartAt = 3
	cfg.Mint.EndAt = 5
	id := createCollection(t, db, p, alice, alice, cfg)

	err := db.Update(func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 1, alice, nil)
		return err
	})
	require.Equal(uniques.ErrMintNotStarted, err)

	bumpHeight(t, db, 3)
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 1, alice, nil)
		return err
	})

	bumpHeight(t, db, 6)
	err = db.Update(func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 2, alice, nil)
		return err
	})
	require.Equal(uniques.ErrMintEnded, err)

	// the window only gates minting, the issued item still moves
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Transfer(s, uniques.SignedOrigin(alice), id, 1, bob)
		return err
	})
}

func TestMintAllowList(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	cfg := uniques.CollectionConfig{Mint: uniques.MintSettings{
		Type:      uniques.MintTypeAllowList,
		AllowList: []string{bob},
	}}
	id := createCollection(t, db, p, alice, alice, cfg)

	err := db.Update(func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(carol), id, 1, carol, nil)
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)
	// the collection owner is not listed either
	err = db.Update(func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(alice), id, 1, alice, nil)
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.SignedOrigin(bob), id, 1, carol, nil)
		return err
	})
	err = db.View(func(s uniques.State) error {
		item, err := s.ReadItem(id, 1)
		require.Nil(err)
		require.Equal(carol, item.Owner)
		return nil
	})
	require.Nil(err)

	// a force origin mints regardless of the list
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.Mint(s, uniques.ForceOrigin(), id, 2, carol, nil)
		return err
	})
}

func TestCollectionMetadataRoundTrip(t *testing.T) {
	require := require.New(t)
	db, p := testLedger(t)

	id := createCollection(t, db, p, alice, alice, publicConfig())
	_, base := balances(t, db, alice)

	err := db.Update(func(s uniques.State) error {
		_, err := p.ClearCollectionMetadata(s, uniques.SignedOrigin(alice), id)
		return err
	})
	require.Equal(uniques.ErrMetadataNotFound, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetCollectionMetadata(s, uniques.SignedOrigin(alice), id, []byte("hello"))
		return err
	})
	_, r1 := balances(t, db, alice)
	// base 2 + 0.1 * 5
	require.Equal("2.5", r1.Sub(base).String())

	// resizing adjusts by the byte delta only
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetCollectionMetadata(s, uniques.SignedOrigin(alice), id, []byte("hi"))
		return err
	})
	_, r2 := balances(t, db, alice)
	require.Equal("2.2", r2.Sub(base).String())

	err = db.Update(func(s uniques.State) error {
		_, err := p.SetCollectionMetadata(s, uniques.SignedOrigin(bob), id, []byte("x"))
		return err
	})
	require.Equal(uniques.ErrNoPermission, err)

	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.ClearCollectionMetadata(s, uniques.SignedOrigin(alice), id)
		return err
	})
	_, r3 := balances(t, db, alice)
	require.True(r3.Equal(base))

	// the metadata lock gates both set and clear
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.SetCollectionMetadata(s, uniques.SignedOrigin(alice), id, []byte("m"))
		return err
	})
	mustUpdate(t, db, func(s uniques.State) error {
		_, err := p.LockCollection(s, uniques.SignedOrigin(alice), id, uniques.SettingLockedMetadata)
		return err
	})
	err = db.Update(func(s uniques.State) error {
		_, err := p.SetCollectionMetadata(s, uniques.SignedOrigin(alice), id, []byte("n"))
		return err
	})
	require.Equal(uniques.ErrMetadataLocked, err)
	err = db.Update(func(s uniques.State) error {
		_, err := p.ClearCollectionMetadata(s, uniques.SignedOrigin(alice), id)
		return err
	})
	require.Equal(uniques.ErrMetadataLocked, err)
}

func TestResolveRole(t *testing.T) {
	require := require.New(t)

	col := &uniques.Collection{Owner: alice, Issuer: bob, Admin: bob, Freezer: carol}
	require.Equal(uniques.RoleOwner, uniques.ResolveRole(col, alice))
	require.Equal(uniques.RoleAdmin, uniques.ResolveRole(col, bob))
	require.Equal(uniques.RoleFreezer, uniques.ResolveRole(col, carol))
	require.Equal(uniques.RoleNone, uniques.ResolveRole(col, "d77ad0ec-3587-4a62-b07c-78b1b1a1b1c1"))
	require.Equal(uniques.RoleNone, uniques.ResolveRole(col, ""))

	// an owner holding every role resolves to the strongest one
	col = &uniques.Collection{Owner: alice, Issuer: alice, Admin: alice, Freezer: alice}
	require.Equal(uniques.RoleOwner, uniques.ResolveRole(col, alice))
}
