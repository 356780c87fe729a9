package identity

import (
	"context"
	"errors"
	"testing"

	"jobportal/internal/domain/admin"
	"jobportal/internal/domain/candidate"
	"jobportal/internal/domain/company"
	domidentity "jobportal/internal/domain/identity"
)

type stubAdminRepo struct{ byEmail map[string]admin.Admin }

func (s stubAdminRepo) Create(context.Context, *admin.Admin) error { return nil }
func (s stubAdminRepo) GetByID(context.Context, string) (admin.Admin, error) {
	return admin.Admin{}, admin.ErrNotFound
}
func (s stubAdminRepo) GetByEmail(_ context.Context, email string) (admin.Admin, error) {
	a, ok := s.byEmail[email]
	if !ok {
		return admin.Admin{}, admin.ErrNotFound
	}
	return a, nil
}
func (s stubAdminRepo) List(context.Context) ([]admin.Admin, error)         { return nil, nil }
func (s stubAdminRepo) Update(context.Context, admin.Admin) error           { return nil }
func (s stubAdminRepo) Delete(context.Context, string) error                { return nil }
func (s stubAdminRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

type stubCandidateRepo struct{ byEmail map[string]candidate.Candidate }

func (s stubCandidateRepo) Create(context.Context, *candidate.Candidate) error { return nil }
func (s stubCandidateRepo) GetByID(context.Context, string) (candidate.Candidate, error) {
	return candidate.Candidate{}, candidate.ErrNotFound
}
func (s stubCandidateRepo) GetByEmail(_ context.Context, email string) (candidate.Candidate, error) {
	c, ok := s.byEmail[email]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, nil
}
func (s stubCandidateRepo) List(context.Context) ([]candidate.Candidate, error) { return nil, nil }
func (s stubCandidateRepo) ListBySkill(context.Context, string) ([]candidate.Candidate, error) {
	return nil, nil
}
func (s stubCandidateRepo) Update(context.Context, candidate.Candidate) error   { return nil }
func (s stubCandidateRepo) Delete(context.Context, string) error                { return nil }
func (s stubCandidateRepo) ExistsByID(context.Context, string) (bool, error)    { return false, nil }
func (s stubCandidateRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

type stubCompanyRepo struct{ byEmail map[string]company.Company }

func (s stubCompanyRepo) Create(context.Context, *company.Company) error { return nil }
func (s stubCompanyRepo) GetByID(context.Context, string) (company.Company, error) {
	return company.Company{}, company.ErrNotFound
}
func (s stubCompanyRepo) GetByEmail(_ context.Context, email string) (company.Company, error) {
	c, ok := s.byEmail[email]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	return c, nil
}
func (s stubCompanyRepo) List(context.Context) ([]company.Company, error)       { return nil, nil }
func (s stubCompanyRepo) Update(context.Context, company.Company) error         { return nil }
func (s stubCompanyRepo) Delete(context.Context, string) error                  { return nil }
func (s stubCompanyRepo) ExistsByID(context.Context, string) (bool, error)      { return false, nil }
func (s stubCompanyRepo) ExistsByEmail(context.Context, string) (bool, error)   { return false, nil }
func (s stubCompanyRepo) AppendJobID(context.Context, string, string) error     { return nil }
func (s stubCompanyRepo) RemoveJobID(context.Context, string, string) error     { return nil }
func (s stubCompanyRepo) ReplaceJobIDs(context.Context, string, []string) error { return nil }

const email = "shared@example.com"

func newResolver(admins map[string]admin.Admin, candidates map[string]candidate.Candidate, companies map[string]company.Company) *Resolver {
	return NewResolver(
		stubAdminRepo{byEmail: admins},
		stubCandidateRepo{byEmail: candidates},
		stubCompanyRepo{byEmail: companies},
	)
}

// An email present in every collection always resolves to the admin
// account; resolution order never depends on store internals.
func TestResolver_DuplicateEmailAcrossAllCollections(t *testing.T) {
	r := newResolver(
		map[string]admin.Admin{email: {Email: email}},
		map[string]candidate.Candidate{email: {Email: email}},
		map[string]company.Company{email: {Email: email}},
	)

	for i := 0; i < 5; i++ {
		got, err := r.Resolve(context.Background(), email)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Role != domidentity.RoleAdmin {
			t.Fatalf("expected admin, got %s", got.Role)
		}
	}
}

func TestResolver_CandidateWinsOverCompany(t *testing.T) {
	r := newResolver(
		nil,
		map[string]candidate.Candidate{email: {Email: email}},
		map[string]company.Company{email: {Email: email}},
	)

	got, err := r.Resolve(context.Background(), email)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Role != domidentity.RoleCandidate {
		t.Fatalf("expected candidate, got %s", got.Role)
	}
}

func TestResolver_CompanyOnly(t *testing.T) {
	r := newResolver(nil, nil, map[string]company.Company{email: {Email: email}})

	got, err := r.Resolve(context.Background(), email)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Role != domidentity.RoleCompany {
		t.Fatalf("expected company, got %s", got.Role)
	}
	if got.Company == nil || got.Company.Email != email {
		t.Fatalf("expected resolved company account, got %+v", got)
	}
}

func TestResolver_MissEverywhere(t *testing.T) {
	r := newResolver(nil, nil, nil)

	_, err := r.Resolve(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolver_NormalizesEmail(t *testing.T) {
	r := newResolver(map[string]admin.Admin{email: {Email: email}}, nil, nil)

	got, err := r.Resolve(context.Background(), "  Shared@Example.COM ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Role != domidentity.RoleAdmin {
		t.Fatalf("expected admin, got %s", got.Role)
	}
}
