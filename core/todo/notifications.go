package todo

// Notification kinds stamped by the service, one per mutating operation.
const (
	KindCreateList = "createList"
	KindDeleteList = "deleteList"
	KindAddItem    = "addItem"
	KindRemoveItem = "removeItem"
	KindMoveItem   = "moveItem"
	KindEditItem   = "editItem"
)

// Notification payloads. Each carries enough information to replay the
// mutation on a read-only mirror of the store. All embedded lists and items
// are value copies, never references into the store.

// ListCreated is dispatched after a new empty list is appended to the store.
type ListCreated struct {
	List List `json:"list"`
}

// ListDeleted is dispatched after the list at ListIndex is removed.
type ListDeleted struct {
	ListIndex int `json:"listIndex"`
}

// ItemAdded is dispatched after Item is appended to the list at ListIndex.
type ItemAdded struct {
	ListIndex int  `json:"listIndex"`
	Item      Item `json:"item"`
}

// ItemRemoved is dispatched after the item at ItemIndex is removed from the
// list at ListIndex.
type ItemRemoved struct {
	ListIndex int `json:"listIndex"`
	ItemIndex int `json:"itemIndex"`
}

// ItemMoved is dispatched after an item moves within the list at ListIndex.
// SourceIndex and DestIndex are the caller's original arguments, not the
// adjusted insertion position.
type ItemMoved struct {
	ListIndex   int `json:"listIndex"`
	SourceIndex int `json:"sourceIndex"`
	DestIndex   int `json:"destIndex"`
}

// ItemEdited is dispatched after the item at ItemIndex is replaced with Item.
type ItemEdited struct {
	ListIndex int  `json:"listIndex"`
	ItemIndex int  `json:"itemIndex"`
	Item      Item `json:"item"`
}
