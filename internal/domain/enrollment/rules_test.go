package enrollment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
)

func familyMember(relation Relationship) FamilyMember {
	return FamilyMember{Name: "Member", Relation: relation, DOB: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func parent(relation Relationship) Parent {
	return Parent{Name: "Parent", Relation: relation, DOB: time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestValidateFamilyComposition_SpouseCap(t *testing.T) {
	result := ValidateFamilyComposition([]FamilyMember{
		familyMember(RelationshipSpouse),
		familyMember(RelationshipSpouse),
	})
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Only one spouse can be covered")
}

func TestValidateFamilyComposition_ChildrenCap(t *testing.T) {
	result := ValidateFamilyComposition([]FamilyMember{
		familyMember(RelationshipChild),
		familyMember(RelationshipChild),
		familyMember(RelationshipChild),
	})
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Maximum 2 children allowed")
}

func TestValidateFamilyComposition_Valid(t *testing.T) {
	result := ValidateFamilyComposition([]FamilyMember{
		familyMember(RelationshipSpouse),
		familyMember(RelationshipChild),
		familyMember(RelationshipChild),
	})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateFamilyComposition_EmptyList(t *testing.T) {
	result := ValidateFamilyComposition(nil)
	assert.True(t, result.Valid)
}

func TestValidateParentComposition_MixedSetsRejected(t *testing.T) {
	result := ValidateParentComposition([]Parent{
		parent(RelationshipFather),
		parent(RelationshipFatherInLaw),
	})
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Cannot add both parents and parents-in-law. Please select only one set.")
}

func TestValidateParentComposition_SameSetValid(t *testing.T) {
	result := ValidateParentComposition([]Parent{
		parent(RelationshipFather),
		parent(RelationshipMother),
	})
	assert.True(t, result.Valid)

	result = ValidateParentComposition([]Parent{
		parent(RelationshipFatherInLaw),
		parent(RelationshipMotherInLaw),
	})
	assert.True(t, result.Valid)
}

func TestValidateParentComposition_DuplicateTagRejected(t *testing.T) {
	result := ValidateParentComposition([]Parent{
		parent(RelationshipFather),
		parent(RelationshipFather),
	})
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Cannot add more than one Father")
}

func TestValidateParentComposition_TotalCap(t *testing.T) {
	// A duplicate tag also trips its own rule; the total cap must be
	// reported as well.
	result := ValidateParentComposition([]Parent{
		parent(RelationshipFather),
		parent(RelationshipMother),
		parent(RelationshipMother),
	})
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Maximum 2 parents can be added")
}

func TestValidateAgeRange(t *testing.T) {
	cases := []struct {
		name     string
		age      int
		relation Relationship
		wantMsg  string
	}{
		{"child lower bound", 0, RelationshipChild, ""},
		{"child upper bound", 25, RelationshipChild, ""},
		{"child too old", 26, RelationshipChild, "Children must be between 0-25 years"},
		{"spouse lower bound", 18, RelationshipSpouse, ""},
		{"spouse too young", 17, RelationshipSpouse, "Must be between 18-80 years"},
		{"spouse upper bound", 80, RelationshipSpouse, ""},
		{"mother too old", 81, RelationshipMother, "Must be between 18-80 years"},
		{"father in band", 60, RelationshipFather, ""},
		{"unknown relationship", 30, Relationship("Cousin"), "Invalid relationship type"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.wantMsg, ValidateAgeRange(c.age, c.relation))
		})
	}
}

func TestGenderForRelationship(t *testing.T) {
	gender, ok := GenderForRelationship(RelationshipFather)
	assert.True(t, ok)
	assert.Equal(t, employee.Male, gender)

	gender, ok = GenderForRelationship(RelationshipMotherInLaw)
	assert.True(t, ok)
	assert.Equal(t, employee.Female, gender)

	_, ok = GenderForRelationship(RelationshipSpouse)
	assert.False(t, ok)
	_, ok = GenderForRelationship(RelationshipChild)
	assert.False(t, ok)
}

func TestParentSetFor(t *testing.T) {
	set, ok := ParentSetFor(RelationshipMother)
	assert.True(t, ok)
	assert.Equal(t, ParentSetParents, set)

	set, ok = ParentSetFor(RelationshipFatherInLaw)
	assert.True(t, ok)
	assert.Equal(t, ParentSetParentsInLaw, set)

	_, ok = ParentSetFor(RelationshipSpouse)
	assert.False(t, ok)
}

func TestAge(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// Birthday already passed this year.
	assert.Equal(t, 34, Age(time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC), now))
	// Birthday not yet reached.
	assert.Equal(t, 33, Age(time.Date(1990, 9, 10, 0, 0, 0, 0, time.UTC), now))
	// Birthday today counts.
	assert.Equal(t, 34, Age(time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), now))
	// Newborn.
	assert.Equal(t, 0, Age(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), now))
}
