package dto

import "time"

// UserProfileDTO is the owner's own profile; the only shape that carries email.
type UserProfileDTO struct {
	ID        int       `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	About     string    `json:"about" example:"Just here for the gifts"`
	Avatar    string    `json:"avatar" example:"https://i.pravatar.cc/300"`
	Email     string    `json:"email" example:"alice@example.com"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserPublicProfileDTO struct {
	ID        int       `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	About     string    `json:"about" example:"Just here for the gifts"`
	Avatar    string    `json:"avatar" example:"https://i.pravatar.cc/300"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
