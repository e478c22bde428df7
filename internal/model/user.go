package model

import "github.com/google/uuid"

// User is the local cache of platform user profiles, kept warm by the kafka
// worker. It is presentation data only; ownership checks use the uuid alone.
type User struct {
	ID         uuid.UUID `db:"id"`
	Nickname   string    `db:"nickname"`
	AvatarLink string    `db:"avatar_link"`
}
