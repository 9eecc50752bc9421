package domain

import "time"

// Like is a directed relation meaning LikerID has expressed interest in LikedID.
// Two likes in opposite directions form a match; matches are never stored on
// their own.
type Like struct {
	LikerID   UserID    `json:"liker_id"`
	LikedID   UserID    `json:"liked_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Refusal records that RefuserID does not want to see RefusedID while browsing.
type Refusal struct {
	RefuserID UserID    `json:"refuser_id"`
	RefusedID UserID    `json:"refused_id"`
	CreatedAt time.Time `json:"created_at"`
}
