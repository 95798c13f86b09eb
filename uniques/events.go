package uniques

const (
	EventCreated = 10 + iota
	EventDestroyed
	EventIssued
	EventBurned
	EventTransferred
	EventRedeposited
	EventAttributeSet
	EventAttributeCleared
	EventItemPriceSet
	EventItemPriceRemoved
	EventItemBought
	EventTeamChanged
	EventOwnerChanged
	EventOwnershipAcceptanceChanged
	EventCollectionLocked
	EventItemPropertiesLocked
	EventItemTransferLocked
	EventItemTransferUnlocked
	EventTransferApproved
	EventApprovalCancelled
	EventCollectionMaxSupplySet
	EventCollectionMintSettingsUpdated
	EventCollectionMetadataSet
	EventCollectionMetadataCleared
	EventItemMetadataSet
	EventItemMetadataCleared
)

// Event records a committed state change. Events are buffered while a
// command runs and handed to sinks only after the command commits.
type Event struct {
	Kind       int
	Collection CollectionID
	Item       *ItemID
	Account    string
	Peer       string
	Amount     string
	Key        []byte
	Items      []ItemID
}

func (e *Event) KindName() string {
	switch e.Kind {
	case EventCreated:
		return "Created"
	case EventDestroyed:
		return "Destroyed"
	case EventIssued:
		return "Issued"
	case EventBurned:
		return "Burned"
	case EventTransferred:
		return "Transferred"
	case EventRedeposited:
		return "Redeposited"
	case EventAttributeSet:
		return "AttributeSet"
	case EventAttributeCleared:
		return "AttributeCleared"
	case EventItemPriceSet:
		return "ItemPriceSet"
	case EventItemPriceRemoved:
		return "ItemPriceRemoved"
	case EventItemBought:
		return "ItemBought"
	case EventTeamChanged:
		return "TeamChanged"
	case EventOwnerChanged:
		return "OwnerChanged"
	case EventOwnershipAcceptanceChanged:
		return "OwnershipAcceptanceChanged"
	case EventCollectionLocked:
		return "CollectionLocked"
	case EventItemPropertiesLocked:
		return "ItemPropertiesLocked"
	case EventItemTransferLocked:
		return "ItemTransferLocked"
	case EventItemTransferUnlocked:
		return "ItemTransferUnlocked"
	case EventTransferApproved:
		return "TransferApproved"
	case EventApprovalCancelled:
		return "ApprovalCancelled"
	case EventCollectionMaxSupplySet:
		return "CollectionMaxSupplySet"
	case EventCollectionMintSettingsUpdated:
		return "CollectionMintSettingsUpdated"
	case EventCollectionMetadataSet:
		return "CollectionMetadataSet"
	case EventCollectionMetadataCleared:
		return "CollectionMetadataCleared"
	case EventItemMetadataSet:
		return "ItemMetadataSet"
	case EventItemMetadataCleared:
		return "ItemMetadataCleared"
	}
	panic(e.Kind)
}
