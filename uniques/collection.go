package uniques

// Create reserves the collection deposit from the caller, makes the caller
// owner and hands the admin account the admin, issuer and freezer roles.
func (p *Pallet) Create(s State, o Origin, admin string, cfg CollectionConfig) (CollectionID, []Event, error) {
	if !o.valid() || o.Force {
		return 0, nil, ErrBadOrigin
	}
	if admin == "" {
		return 0, nil, ErrBadOrigin
	}
	id, err := s.NextCollectionID()
	if err != nil {
		return 0, nil, err
	}
	deposit, err := holdDeposit(s, o.Account, p.params.CollectionDeposit)
	if err != nil {
		return 0, nil, err
	}
	col := &Collection{
		ID:           id,
		Owner:        o.Account,
		Issuer:       admin,
		Admin:        admin,
		Freezer:      admin,
		TotalDeposit: deposit.Amount,
		MaxSupply:    cfg.MaxSupply,
		Settings:     cfg.Settings,
		Mint:         cfg.Mint,
	}
	err = s.WriteCollection(col)
	if err != nil {
		return 0, nil, err
	}
	evs := []Event{{Kind: EventCreated, Collection: id, Account: o.Account, Peer: admin}}
	return id, evs, nil
}

// Destroy removes an empty collection. The witness counters must match the
// registry's bookkeeping exactly so every remaining deposit is accounted
// for before it is released.
func (p *Pallet) Destroy(s State, o Origin, c CollectionID, w DestroyWitness) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	err = ensureRole(o, col, RoleOwner)
	if err != nil {
		return nil, err
	}
	if col.Items != 0 {
		return nil, ErrCollectionNotEmpty
	}
	if w.ItemMetadatas != col.ItemMetadatas || w.ItemConfigs != col.Items || w.Attributes != col.Attributes {
		return nil, ErrBadWitness
	}

	attrs, err := s.ListCollectionAttributes(c)
	if err != nil {
		return nil, err
	}
	for _, attr := range attrs {
		err = releaseDeposit(s, attr.Deposit)
		if err != nil {
			return nil, err
		}
		err = s.DeleteAttribute(c, attr.Item, attr.Namespace, attr.Key)
		if err != nil {
			return nil, err
		}
	}
	meta, err := s.ReadCollectionMetadata(c)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		err = releaseDeposit(s, meta.Deposit)
		if err != nil {
			return nil, err
		}
		err = s.DeleteCollectionMetadata(c)
		if err != nil {
			return nil, err
		}
	}
	err = releaseDeposit(s, Deposit{Account: col.Owner, Amount: col.TotalDeposit})
	if err != nil {
		return nil, err
	}
	err = s.DeleteCollection(c)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventDestroyed, Collection: c, Account: col.Owner}}
	return evs, nil
}

// SetTeam reassigns the issuer, admin and freezer roles. An empty account
// unsets the role, and an unset role can only be filled again by a force
// origin.
func (p *Pallet) SetTeam(s State, o Origin, c CollectionID, issuer, admin, freezer string) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	err = ensureRole(o, col, RoleOwner)
	if err != nil {
		return nil, err
	}
	if !o.Force {
		if col.Issuer == "" && issuer != "" {
			return nil, ErrNoPermission
		}
		if col.Admin == "" && admin != "" {
			return nil, ErrNoPermission
		}
		if col.Freezer == "" && freezer != "" {
			return nil, ErrNoPermission
		}
	}
	col.Issuer = issuer
	col.Admin = admin
	col.Freezer = freezer
	err = s.WriteCollection(col)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventTeamChanged, Collection: c}}
	return evs, nil
}

// SetAcceptOwnership records the caller as the collection's pending owner,
// the first half of a two-phase ownership transfer. Accepting again
// overwrites a previous pending owner, accepting with withdraw clears it.
func (p *Pallet) SetAcceptOwnership(s State, o Origin, c CollectionID, withdraw bool) ([]Event, error) {
	if !o.valid() || o.Force {
		return nil, ErrBadOrigin
	}
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	if withdraw {
		if col.PendingOwner != o.Account {
			return nil, ErrNoPermission
		}
		col.PendingOwner = ""
	} else {
		col.PendingOwner = o.Account
	}
	err = s.WriteCollection(col)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventOwnershipAcceptanceChanged, Collection: c, Account: o.Account}}
	return evs, nil
}

// TransferOwnership moves a collection to a new owner who has accepted it
// beforehand, carrying the base collection deposit over to them.
func (p *Pallet) TransferOwnership(s State, o Origin, c CollectionID, newOwner string) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	err = ensureRole(o, col, RoleOwner)
	if err != nil {
		return nil, err
	}
	if newOwner == col.Owner {
		return nil, nil
	}
	if col.PendingOwner != newOwner {
		return nil, ErrUnaccepted
	}
	old := Deposit{Account: col.Owner, Amount: col.TotalDeposit}
	_, err = moveDeposit(s, old, newOwner, col.TotalDeposit)
	if err != nil {
		return nil, err
	}
	prev := col.Owner
	col.Owner = newOwner
	col.PendingOwner = ""
	err = s.WriteCollection(col)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventOwnerChanged, Collection: c, Account: newOwner, Peer: prev}}
	return evs, nil
}

// LockCollection unions lock bits into the collection settings. Bits are
// never cleared, relocking an already locked bit is a no-op.
func (p *Pallet) LockCollection(s State, o Origin, c CollectionID, settings CollectionSettings) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	err = ensureRole(o, col, RoleOwner)
	if err != nil {
		return nil, err
	}
	col.Settings = col.Settings.Union(settings)
	err = s.WriteCollection(col)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventCollectionLocked, Collection: c}}
	return evs, nil
}

// SetCollectionMaxSupply caps how many items the collection may hold. The
// cap cannot go below the current item count and cannot change once the
// max-supply lock bit is set.
func (p *Pallet) SetCollectionMaxSupply(s State, o Origin, c CollectionID, max uint32) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	err = ensureRole(o, col, RoleOwner)
	if err != nil {
		return nil, err
	}
	if col.Settings.Has(SettingLockedMaxSupply) {
		return nil, ErrMaxSupplyLocked
	}
	if max < col.Items {
		return nil, ErrMaxSupplyAlreadySet
	}
	col.MaxSupply = &max
	err = s.WriteCollection(col)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventCollectionMaxSupplySet, Collection: c}}
	return evs, nil
}

// UpdateMintSettings replaces the collection's mint settings.
func (p *Pallet) UpdateMintSettings(s State, o Origin, c CollectionID, ms MintSettings) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	err = ensureRole(o, col, RoleOwner)
	if err != nil {
		return nil, err
	}
	col.Mint = ms
	err = s.WriteCollection(col)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventCollectionMintSettingsUpdated, Collection: c}}
	return evs, nil
}
