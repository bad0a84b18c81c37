package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Corporate is a company account. Employees is an ordered list embedded in
// the corporate row (a JSON column, not a separate table), keyed by UserID.
type Corporate struct {
	ID             uuid.UUID
	Name           string
	OwnerUserID    uuid.UUID
	OwnerEmail     string
	Seats          int // Capacity; 0 means unlimited.
	Employees      []Employee
	SubscriptionID *uuid.UUID
	PlanName       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Employee is one embedded employee record of a corporate account.
type Employee struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	AddedAt time.Time `json:"added_at"`
}

// MergeEmployees folds the batch into the current list keyed by UserID,
// last-write-wins per key, preserving first-seen order for existing entries
// and appending new ones in batch order.
func MergeEmployees(current []Employee, batch []Employee) []Employee {
	merged := make([]Employee, len(current))
	copy(merged, current)

	index := make(map[uuid.UUID]int, len(merged))
	for i, emp := range merged {
		index[emp.UserID] = i
	}

	for _, emp := range batch {
		if i, ok := index[emp.UserID]; ok {
			merged[i] = emp

			continue
		}
		index[emp.UserID] = len(merged)
		merged = append(merged, emp)
	}

	return merged
}

// RemoveEmployee filters the list by UserID. Removing an absent id is a no-op.
func RemoveEmployee(current []Employee, userID uuid.UUID) []Employee {
	remainder := make([]Employee, 0, len(current))
	for _, emp := range current {
		if emp.UserID == userID {
			continue
		}
		remainder = append(remainder, emp)
	}

	return remainder
}

// EmailMatches compares the supplied email against the registry email,
// case-insensitively.
func EmailMatches(supplied, registry string) bool {
	return strings.EqualFold(strings.TrimSpace(supplied), strings.TrimSpace(registry))
}

// SubscriptionPlan is a lookup row resolving a subscription id to a plan name.
type SubscriptionPlan struct {
	ID   uuid.UUID
	Name string
}
