package enrollment

import (
	"fmt"

	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
)

// RuleResult is the outcome of a composition check. Violations are
// user-correctable messages, never error values; any non-empty list blocks
// the add or submit action that produced it.
type RuleResult struct {
	Valid  bool
	Errors []string
}

// ValidateFamilyComposition enforces the cross-record limits for base-policy
// dependents: at most one spouse and at most two children. Per-record field
// completeness is the caller's concern.
func ValidateFamilyComposition(members []FamilyMember) RuleResult {
	var errors []string

	spouseCount := 0
	childCount := 0
	for _, member := range members {
		switch member.Relation {
		case RelationshipSpouse:
			spouseCount++
		case RelationshipChild:
			childCount++
		}
	}

	if spouseCount > 1 {
		errors = append(errors, "Only one spouse can be covered")
	}
	if childCount > 2 {
		errors = append(errors, "Maximum 2 children allowed")
	}

	return RuleResult{Valid: len(errors) == 0, Errors: errors}
}

// ValidateParentComposition enforces the voluntary-policy limits: no
// duplicate relationship tag, no mixing of parents with parents-in-law, and
// at most two parents in total.
func ValidateParentComposition(parents []Parent) RuleResult {
	var errors []string

	counts := map[Relationship]int{}
	for _, parent := range parents {
		counts[parent.Relation]++
	}

	for _, relation := range []Relationship{RelationshipFather, RelationshipMother, RelationshipFatherInLaw, RelationshipMotherInLaw} {
		if counts[relation] > 1 {
			errors = append(errors, fmt.Sprintf("Cannot add more than one %s", relation))
		}
	}

	hasParents := counts[RelationshipFather] > 0 || counts[RelationshipMother] > 0
	hasParentsInLaw := counts[RelationshipFatherInLaw] > 0 || counts[RelationshipMotherInLaw] > 0
	if hasParents && hasParentsInLaw {
		errors = append(errors, "Cannot add both parents and parents-in-law. Please select only one set.")
	}

	total := counts[RelationshipFather] + counts[RelationshipMother] + counts[RelationshipFatherInLaw] + counts[RelationshipMotherInLaw]
	if total > 2 {
		errors = append(errors, "Maximum 2 parents can be added")
	}

	return RuleResult{Valid: len(errors) == 0, Errors: errors}
}

// ValidateAgeRange checks a candidate's age against the band for their
// relationship. Returns the violation message, or "" when in band.
// Children: 0-25 inclusive. Everyone else: 18-80 inclusive.
func ValidateAgeRange(age int, relation Relationship) string {
	switch relation {
	case RelationshipChild:
		if age < 0 || age > 25 {
			return "Children must be between 0-25 years"
		}
	case RelationshipSpouse, RelationshipFather, RelationshipMother, RelationshipFatherInLaw, RelationshipMotherInLaw:
		if age < 18 || age > 80 {
			return "Must be between 18-80 years"
		}
	default:
		return "Invalid relationship type"
	}
	return ""
}

// GenderForRelationship infers gender where the relationship implies it.
// Spouse and Child return ok=false: the caller collects gender explicitly.
func GenderForRelationship(relation Relationship) (employee.Gender, bool) {
	switch relation {
	case RelationshipFather, RelationshipFatherInLaw:
		return employee.Male, true
	case RelationshipMother, RelationshipMotherInLaw:
		return employee.Female, true
	default:
		return "", false
	}
}

// ParentSetFor maps a parent relationship to the set it belongs to.
func ParentSetFor(relation Relationship) (ParentSet, bool) {
	switch relation {
	case RelationshipFather, RelationshipMother:
		return ParentSetParents, true
	case RelationshipFatherInLaw, RelationshipMotherInLaw:
		return ParentSetParentsInLaw, true
	default:
		return "", false
	}
}

// IsFamilyRelationship reports whether the tag belongs to the family domain.
func IsFamilyRelationship(relation Relationship) bool {
	return relation == RelationshipSpouse || relation == RelationshipChild
}

// IsParentRelationship reports whether the tag belongs to the parent domain.
func IsParentRelationship(relation Relationship) bool {
	_, ok := ParentSetFor(relation)
	return ok
}
