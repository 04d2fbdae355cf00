package model

import "time"

// Video is a published catalog entry.
type Video struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Thumbnail string    `json:"thumbnail"`
	VideoURL  string    `json:"videoUrl"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
}

// VideoUpdate carries a partial admin edit. Nil fields are left untouched.
type VideoUpdate struct {
	Title     *string `json:"title"`
	Category  *string `json:"category"`
	Thumbnail *string `json:"thumbnail"`
	VideoURL  *string `json:"videoUrl"`
}

// Apply merges the non-nil fields onto v.
func (u VideoUpdate) Apply(v *Video) {
	if u.Title != nil {
		v.Title = *u.Title
	}
	if u.Category != nil {
		v.Category = *u.Category
	}
	if u.Thumbnail != nil {
		v.Thumbnail = *u.Thumbnail
	}
	if u.VideoURL != nil {
		v.VideoURL = *u.VideoURL
	}
}
