package repo

import "errors"

// ErrProductNotFound is returned when a product is not found in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrUserNotFound is returned when a user lookup yields no row.
var ErrUserNotFound = errors.New("user not found")

// ErrSettingNotFound is returned when a setting key has no stored value.
var ErrSettingNotFound = errors.New("setting not found")

// ErrDuplicatedValueUnique is returned when an insert violates a unique
// constraint.
var ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
