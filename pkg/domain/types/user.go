package types

// UserID identifies the owner of a report. The current deployment has a
// single caller, but the identifier is threaded through explicitly so a
// multi-user deployment does not change any signature.
type UserID string

// DefaultUserID is used when the boundary supplies no user identity.
const DefaultUserID UserID = "default"

// String returns the string representation of the user ID
func (u UserID) String() string {
	return string(u)
}

// Normalize returns the user ID, treating empty as DefaultUserID
func (u UserID) Normalize() UserID {
	if u == "" {
		return DefaultUserID
	}
	return u
}
