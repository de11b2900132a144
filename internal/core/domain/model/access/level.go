package access

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Level represents a permission level in the storefront hierarchy.
// Levels form a total order from highest to lowest authority:
//
//	Master > Manager > Staff > StoreOwner > Customer
//
// The order is the backbone of every authorization comparison: an actor
// satisfies a requirement when their level ranks at least as high as the
// required one. Level is a value object; the zero value (Unknown) is invalid
// and ranks as Customer wherever a rank is needed, keeping checks fail-closed.
type Level int

const (
	// Unknown represents an invalid or undefined level.
	// This value (0) helps catch uninitialized Level values.
	Unknown Level = iota

	// Master is the system-wide administrator level. Master authority is
	// global only: it overrides every store-scoped decision and is never
	// meaningful inside a store grant.
	Master

	// Manager is the highest store-scoped level. Managers run a store's
	// back office, including order lifecycle transitions.
	Manager

	// Staff can work a store's day-to-day screens but cannot manage it.
	Staff

	// StoreOwner is the proprietor role. Owners can view store contexts
	// presented to them but do not manage operations directly.
	StoreOwner

	// Customer is the lowest level and the fail-closed default for unknown
	// or missing actors.
	Customer
)

// customerRank is the lowest rank in the order; Unknown degrades to it.
const customerRank = 4

// getLevelStrings returns a map of Level values to their string representations.
func getLevelStrings() map[Level]string {
	return map[Level]string{
		Unknown:    "Unknown",
		Master:     "Master",
		Manager:    "Manager",
		Staff:      "Staff",
		StoreOwner: "StoreOwner",
		Customer:   "Customer",
	}
}

// getValidLevelStrings returns a map of only valid Level values.
func getValidLevelStrings() map[Level]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Level]string{
		Master:     "Master",
		Manager:    "Manager",
		Staff:      "Staff",
		StoreOwner: "StoreOwner",
		Customer:   "Customer",
	}
}

// LevelFromString parses a level from its human-readable name.
// Matching is exact and case-sensitive; unrecognized names are rejected.
func LevelFromString(name string) (Level, error) {
	for level, str := range getValidLevelStrings() {
		if str == name {
			return level, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("level is invalid",
		fmt.Errorf("%q is not a valid permission level", name))
}

// Validate checks if the Level value is valid.
//
// Valid levels are: Master, Manager, Staff, StoreOwner, Customer.
// Unknown (0) and any other values are invalid.
func (l Level) Validate() error {
	if _, ok := getValidLevelStrings()[l]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("level is invalid",
			fmt.Errorf("%d is not a valid permission level", l))
	}
	return nil
}

// String returns the human-readable name of the level.
// Invalid values render as "Unknown". Implements fmt.Stringer.
func (l Level) String() string {
	if str, ok := getLevelStrings()[l]; ok {
		return str
	}
	return "Unknown"
}

// Rank returns the level's position in the authority order, with 0 the
// highest authority (Master) and 4 the lowest (Customer). Unknown and any
// out-of-range value rank as Customer so comparisons fail closed.
func (l Level) Rank() int {
	switch l {
	case Master:
		return 0
	case Manager:
		return 1
	case Staff:
		return 2
	case StoreOwner:
		return 3
	case Customer:
		return customerRank
	default:
		return customerRank
	}
}

// AtLeast reports whether the level carries at least as much authority as
// required, using the rank order. Both sides degrade invalid values to
// Customer before comparing.
//
// Example:
//
//	access.Manager.AtLeast(access.Staff)   // true
//	access.Staff.AtLeast(access.Manager)  // false
func (l Level) AtLeast(required Level) bool {
	return l.Rank() <= required.Rank()
}
