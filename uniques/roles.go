package uniques

const (
	RoleNone = 10 + iota
	RoleOwner
	RoleIssuer
	RoleAdmin
	RoleFreezer
)

// Origin is the resolved caller identity. A force origin bypasses every
// ordinary role check, it is reserved for the governance path.
type Origin struct {
	Account string
	Force   bool
}

func SignedOrigin(account string) Origin {
	return Origin{Account: account}
}

func ForceOrigin() Origin {
	return Origin{Force: true}
}

func (o Origin) valid() bool {
	return o.Force || o.Account != ""
}

// ResolveRole returns the strongest role the account holds on the
// collection. A role whose holder is unset can only be exercised by a
// force origin.
func ResolveRole(col *Collection, account string) int {
	if account == "" {
		return RoleNone
	}
	switch account {
	case col.Owner:
		return RoleOwner
	case col.Admin:
		return RoleAdmin
	case col.Issuer:
		return RoleIssuer
	case col.Freezer:
		return RoleFreezer
	}
	return RoleNone
}

func hasRole(col *Collection, account string, roles ...int) bool {
	for _, r := range roles {
		switch r {
		case RoleOwner:
			if account != "" && account == col.Owner {
				return true
			}
		case RoleAdmin:
			if account != "" && account == col.Admin {
				return true
			}
		case RoleIssuer:
			if account != "" && account == col.Issuer {
				return true
			}
		case RoleFreezer:
			if account != "" && account == col.Freezer {
				return true
			}
		}
	}
	return false
}

// ensureRole admits a force origin, otherwise the caller must hold one of
// the listed roles on the collection.
func ensureRole(o Origin, col *Collection, roles ...int) error {
	if !o.valid() {
		return ErrBadOrigin
	}
	if o.Force {
		return nil
	}
	if hasRole(col, o.Account, roles...) {
		return nil
	}
	return ErrNoPermission
}

// attributeAuthority resolves who may write under a namespace and who pays
// the deposit: the collection admin for the collection-owner namespace, the
// current item owner for the item-owner namespace, the named account for an
// account namespace. The returned payer is charged regardless of a force
// origin writing on their behalf.
func attributeAuthority(ns Namespace, col *Collection, item *Item) (authorized, payer string, err error) {
	switch ns.Kind {
	case NamespaceKindCollectionOwner:
		return col.Admin, col.Owner, nil
	case NamespaceKindItemOwner:
		if item == nil {
			return "", "", ErrWrongNamespace
		}
		return item.Owner, item.Owner, nil
	case NamespaceKindAccount:
		return ns.Account, ns.Account, nil
	}
	return "", "", ErrWrongNamespace
}
