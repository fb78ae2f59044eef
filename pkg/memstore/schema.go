package memstore

import "github.com/hashicorp/go-memdb"

// Table names within a tenant's database.
const (
	tableItems      = "items"
	tableOrders     = "orders"
	tableHistory    = "history"
	tableCategories = "categories"
)

// categoryRow wraps a category name so it can live in its own table.
// Categories survive the deletion of every item that references them.
type categoryRow struct {
	Name string
}

// schema defines one tenant's database layout. Items are indexed by id and by
// lowercased name, so the case-insensitive name matching the inventory rules
// require is an index lookup, not a scan. Orders and history are indexed by
// their monotonically assigned ids, which also makes iteration order stable.
func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableItems: {
				Name: tableItems,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					"name": {
						Name:    "name",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Name", Lowercase: true},
					},
				},
			},
			tableOrders: {
				Name: tableOrders,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
			tableHistory: {
				Name: tableHistory,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "Seq"},
					},
				},
			},
			tableCategories: {
				Name: tableCategories,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Name", Lowercase: true},
					},
				},
			},
		},
	}
}
