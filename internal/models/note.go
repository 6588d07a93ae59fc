package models

import (
	"strings"
	"time"
)

type Note struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Owner     string    `gorm:"type:varchar(200);index;not null" json:"-"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Tags      string    `gorm:"type:varchar(300)" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagList splits the stored comma-joined tags back into the ordered list
// the API exposes.
func (n *Note) TagList() []string {
	if n.Tags == "" {
		return []string{}
	}
	return strings.Split(n.Tags, ",")
}

// SetTags stores an ordered list of tag labels.
func (n *Note) SetTags(tags []string) {
	n.Tags = strings.Join(tags, ",")
}
