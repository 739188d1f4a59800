package model

import (
	"strings"
	"time"
)

// Task title and description bounds, enforced before any write reaches the
// database and mirrored by the API client.
const (
	TitleMinLen       = 3
	TitleMaxLen       = 200
	DescriptionMaxLen = 1000
)

// RecentWindow is how far back a task still counts as recent.
const RecentWindow = 24 * time.Hour

// Task is a to-do item owned by exactly one user. The owner is set from the
// authenticated identity at creation time and never changes afterwards.
type Task struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"size:1000" json:"description"`
	UserID      uint      `gorm:"index;not null" json:"-"`
	User        User      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// WordCount returns the number of words across title and description.
func (t Task) WordCount() int {
	total := len(strings.Fields(t.Title))
	if t.Description != "" {
		total += len(strings.Fields(t.Description))
	}
	return total
}

// IsRecent reports whether the task was created within the last 24 hours.
func (t Task) IsRecent() bool {
	return time.Since(t.CreatedAt) < RecentWindow
}
