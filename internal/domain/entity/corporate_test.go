package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeEmployees_AppendsNewInBatchOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	current := []Employee{{UserID: a, Name: "A"}}
	batch := []Employee{{UserID: b, Name: "B"}, {UserID: c, Name: "C"}}

	merged := MergeEmployees(current, batch)

	require.Len(t, merged, 3)
	assert.Equal(t, a, merged[0].UserID)
	assert.Equal(t, b, merged[1].UserID)
	assert.Equal(t, c, merged[2].UserID)
}

func TestMergeEmployees_LastWriteWinsKeepsPosition(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	current := []Employee{
		{UserID: a, Name: "A"},
		{UserID: b, Name: "B"},
	}
	batch := []Employee{{UserID: a, Name: "A2"}}

	merged := MergeEmployees(current, batch)

	require.Len(t, merged, 2)
	assert.Equal(t, "A2", merged[0].Name)
	assert.Equal(t, "B", merged[1].Name)
}

func TestMergeEmployees_DuplicateKeyWithinBatch(t *testing.T) {
	a := uuid.New()

	merged := MergeEmployees(nil, []Employee{
		{UserID: a, Name: "first"},
		{UserID: a, Name: "second"},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "second", merged[0].Name)
}

func TestMergeEmployees_DoesNotMutateCurrent(t *testing.T) {
	a := uuid.New()
	current := []Employee{{UserID: a, Name: "A"}}

	_ = MergeEmployees(current, []Employee{{UserID: a, Name: "changed"}})

	assert.Equal(t, "A", current[0].Name)
}

func TestRemoveEmployee_Idempotent(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	current := []Employee{{UserID: a}, {UserID: b}}

	once := RemoveEmployee(current, a)
	require.Len(t, once, 1)
	assert.Equal(t, b, once[0].UserID)

	twice := RemoveEmployee(once, a)
	assert.Equal(t, once, twice)
}

func TestEmailMatches(t *testing.T) {
	assert.True(t, EmailMatches("User@Example.com", "user@example.com"))
	assert.True(t, EmailMatches("  user@example.com ", "user@example.com"))
	assert.False(t, EmailMatches("other@example.com", "user@example.com"))
}
