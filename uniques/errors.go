package uniques

import "errors"

// Command errors are surfaced to the caller verbatim, a failed command
// leaves no state behind.
var (
	ErrBadOrigin         = errors.New("bad origin")
	ErrNoPermission      = errors.New("no permission")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnknownItem       = errors.New("unknown item")
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrMetadataNotFound  = errors.New("metadata not found")
	ErrNotForSale        = errors.New("not for sale")

	ErrCollectionNotEmpty = errors.New("collection not empty")
	ErrBadWitness         = errors.New("bad witness")
	ErrAlreadyExists      = errors.New("item already exists")
	ErrNoFreeCollectionID = errors.New("no free collection id")

	ErrMaxSupplyReached    = errors.New("max supply reached")
	ErrMaxSupplyAlreadySet = errors.New("max supply already set")
	ErrMaxSupplyLocked     = errors.New("max supply locked")
	ErrMintNotStarted      = errors.New("mint not started")
	ErrMintEnded           = errors.New("mint ended")

	ErrItemLocked           = errors.New("item locked")
	ErrItemsNonTransferable = errors.New("items non transferable")
	ErrAttributesLocked     = errors.New("attributes locked")
	ErrMetadataLocked       = errors.New("metadata locked")

	ErrBidTooLow      = errors.New("bid too low")
	ErrWrongNamespace = errors.New("wrong namespace")
	ErrUnaccepted     = errors.New("ownership transfer not accepted")

	ErrInsufficientBalance = errors.New("insufficient balance")
)
