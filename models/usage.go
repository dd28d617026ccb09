package models

import (
	"encoding/json"
	"time"
)

// UsageDay groups everything logged for one calendar date. Date is
// truncated to local midnight before storage; the unique index keeps
// concurrent saves from splitting a day across two rows.
type UsageDay struct {
	ID        uint         `gorm:"primarykey" json:"-"`
	Date      time.Time    `gorm:"uniqueIndex;not null" json:"date"`
	Entries   []UsageEntry `gorm:"foreignKey:DayID" json:"usage"`
	CreatedAt time.Time    `json:"-"`
	UpdatedAt time.Time    `json:"-"`
}

// MarshalJSON emits the date as plain YYYY-MM-DD, the one canonical
// form clients see everywhere else (history keys, available-dates).
func (d UsageDay) MarshalJSON() ([]byte, error) {
	type alias UsageDay
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(d), d.Date.Format("2006-01-02")})
}

// UsageEntry is one logged activity within a day. EntryID is the stable
// identifier handed to clients. Activity is a plain string copy of the
// catalog name — no foreign key — so renames and deletes in the catalog
// have to be propagated here explicitly.
type UsageEntry struct {
	ID       uint    `gorm:"primarykey" json:"-"`
	EntryID  string  `gorm:"type:varchar(36);uniqueIndex;not null" json:"entryId"`
	DayID    uint    `gorm:"index;not null" json:"-"`
	Activity string  `gorm:"index;not null" json:"activity"`
	Minutes  float64 `gorm:"not null" json:"minutes"`
}
