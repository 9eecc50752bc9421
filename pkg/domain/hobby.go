package domain

// HobbyID uniquely identifies a hobby.
type HobbyID int64

// CategoryID uniquely identifies a hobby category.
type CategoryID int64

// Hobby is a tag users attach to their profile. Browse uses shared hobbies to
// narrow down candidates.
type Hobby struct {
	ID         HobbyID    `json:"id"`
	Name       string     `json:"name"`
	CategoryID CategoryID `json:"category_id"`
}

// Category groups hobbies.
type Category struct {
	ID      CategoryID `json:"id"`
	Name    string     `json:"name"`
	Hobbies []Hobby    `json:"hobbies"`
}
