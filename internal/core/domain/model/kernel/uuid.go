package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies aggregates and entities across the model. It wraps
// github.com/google/uuid so the rest of the domain never imports the library
// directly, and so a zero value is always detectable: the zero UUID is
// invalid, and every valid one comes from NewUUID, UUIDFromString or
// UUIDFromBytes. Values are immutable and safe to copy.
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a fresh random (version 4) identifier. This is how every
// new aggregate gets its ID.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical textual form (plus the braced and
// urn:uuid: variants the underlying library accepts). Used at the edges:
// request parsing and restoring aggregates from persistence.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from a 16-byte slice. Unlike UUIDFromString it
// also rejects the nil UUID, since binary sources can hand over all zeroes
// without that being a parse failure.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the wrapped uuid.UUID for adapters that need the raw value,
// such as the persistence DTOs. Domain code should not reach through it.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both values identify the same object.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the zero value. Aggregate constructors call this on every
// incoming ID so an unset identifier never reaches persistence.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
