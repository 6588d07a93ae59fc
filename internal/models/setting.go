package models

// Setting is the persistence row behind the typed settings service: a
// shared key-value table, not per-owner, since this is a single-operator
// deployment.
type Setting struct {
	Key   string `gorm:"type:varchar(100);primarykey" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
