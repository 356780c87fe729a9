package identity

import (
	"strings"

	"jobportal/internal/domain/admin"
	"jobportal/internal/domain/candidate"
	"jobportal/internal/domain/company"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCandidate Role = "candidate"
	RoleCompany   Role = "company"
)

// ParseRole maps a client-supplied role string onto one of the three
// account kinds. The bool result distinguishes "not a role at all" from
// any authentication outcome.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleCandidate:
		return RoleCandidate, true
	case RoleCompany:
		return RoleCompany, true
	default:
		return "", false
	}
}

// Resolved is the tagged union over the three account kinds. Exactly one
// of Admin/Candidate/Company is non-nil, indicated by Role.
type Resolved struct {
	Role      Role
	Admin     *admin.Admin
	Candidate *candidate.Candidate
	Company   *company.Company
}

// Email returns the resolved account's email regardless of kind.
func (r Resolved) Email() string {
	switch r.Role {
	case RoleAdmin:
		if r.Admin != nil {
			return r.Admin.Email
		}
	case RoleCandidate:
		if r.Candidate != nil {
			return r.Candidate.Email
		}
	case RoleCompany:
		if r.Company != nil {
			return r.Company.Email
		}
	}
	return ""
}

// PasswordHash returns the stored hash for the resolved account.
func (r Resolved) PasswordHash() string {
	switch r.Role {
	case RoleAdmin:
		if r.Admin != nil {
			return r.Admin.PasswordHash
		}
	case RoleCandidate:
		if r.Candidate != nil {
			return r.Candidate.PasswordHash
		}
	case RoleCompany:
		if r.Company != nil {
			return r.Company.PasswordHash
		}
	}
	return ""
}

// Account returns the concrete entity for serialization. Password hashes
// are excluded by the entities' own JSON tags.
func (r Resolved) Account() any {
	switch r.Role {
	case RoleAdmin:
		return r.Admin
	case RoleCandidate:
		return r.Candidate
	case RoleCompany:
		return r.Company
	default:
		return nil
	}
}
