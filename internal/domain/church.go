// File: internal/domain/church.go
package domain

// Church is the top-level tenant. Every branch belongs to one church.
type Church struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"not null"`
}

// Branch is a physical campus of a church. Users, groups and events are
// scoped to a branch.
type Branch struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	ChurchID uint   `json:"church_id" gorm:"not null"`
	Name     string `json:"name" gorm:"not null"`
	Location string `json:"location"`
}
