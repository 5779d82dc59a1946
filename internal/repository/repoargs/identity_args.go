package repoargs

import "github.com/google/uuid"

type CreateIdentity struct {
	ID                uuid.UUID
	Email             string
	EncryptedPassword string
}
