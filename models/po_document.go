package models

// PODocument is everything the printable purchase order is rendered from.
type PODocument struct {
	Header      *POHeader
	Items       []*POItem
	Costs       []*POCost
	GeneratedAt string
}
