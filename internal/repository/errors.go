package repository

import "errors"

// ErrNotFound is returned when a queried row does not exist. Callers match
// it with errors.Is; the wrapping message names the entity.
var ErrNotFound = errors.New("not found")

// ErrDuplicateStaffNumber is returned when an insert or update would reuse
// another employee's staff number.
var ErrDuplicateStaffNumber = errors.New("staff number already exists")
