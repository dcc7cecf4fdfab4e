package model

type Warehouse struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Location struct {
	ID          uint64 `db:"id" json:"id"`
	WarehouseID uint64 `db:"warehouse_id" json:"warehouse_id"`
	Code        string `db:"code" json:"code"`
	Name        string `db:"name" json:"name"`
}
