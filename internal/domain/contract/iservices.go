package contract

// IHasher defines password hashing operations.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}

// IUUIDGenerator generates unique identifiers for new documents.
type IUUIDGenerator interface {
	NewUUID() string
}
