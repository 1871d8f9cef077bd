package postgresql

import "github.com/google/uuid"

// validID reports whether id can match a UUID primary key. Malformed ids are
// treated as not found instead of reaching the database.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
