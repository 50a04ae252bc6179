// Package entity defines the persistent domain records.
package entity

import "time"

// Watch is one loaded-video entry in the watch history.
type Watch struct {
	ID        int64     `json:"id"`
	VideoID   string    `json:"video_id"`
	WatchedAt time.Time `json:"watched_at"`
	// Completed marks sessions that ran to natural expiry (the host was
	// suspended at the end), as opposed to loads that were cancelled or
	// abandoned.
	Completed bool `json:"completed"`
}
