package registry

import "time"

// Roles an entry can have within an account.
const (
	RoleReference = "reference"
	RoleTarget    = "target"
)

// Entry is one stored player UID for an account. An account has at most one
// reference entry and any number of target entries; a UID appears at most
// once per account.
type Entry struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"-"`
	Account   string    `gorm:"column:account;size:64;uniqueIndex:idx_account_uid" json:"account"`
	UID       string    `gorm:"column:uid;size:64;uniqueIndex:idx_account_uid" json:"uid"`
	Role      string    `gorm:"column:role;size:16" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the default table name.
func (Entry) TableName() string {
	return "registry_entries"
}

// AccountUIDs is the resolved view of one account's stored UIDs.
type AccountUIDs struct {
	// Reference is the baseline player UID, empty if none is stored.
	Reference string `json:"reference"`
	// Targets are the comparison target UIDs in insertion order.
	Targets []string `json:"targets"`
}
