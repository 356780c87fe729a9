package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobportal/internal/domain/company"
	"jobportal/internal/domain/job"
)

type fakeJobRepo struct {
	jobs map[string]job.Job

	createErr error
	deleteErr error
	listCalls int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]job.Job{}}
}

func (f *fakeJobRepo) Create(_ context.Context, j *job.Job) error {
	if f.createErr != nil {
		return f.createErr
	}
	j.ID = primitive.NewObjectID()
	j.PostedDate = time.Now().UTC()
	f.jobs[j.ID.Hex()] = *j
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (job.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) List(_ context.Context) ([]job.Job, error) {
	out := []job.Job{}
	for _, j := range f.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobRepo) ListByCompanyID(_ context.Context, companyID string) ([]job.Job, error) {
	out := []job.Job{}
	for _, j := range f.jobs {
		if j.CompanyID.Hex() == companyID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) SearchByPosition(_ context.Context, position string) ([]job.Job, error) {
	f.listCalls++
	out := []job.Job{}
	for _, j := range f.jobs {
		if j.Position == position {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) SearchByLocation(_ context.Context, location string) ([]job.Job, error) {
	f.listCalls++
	out := []job.Job{}
	for _, j := range f.jobs {
		if j.Location == location {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ListBySkill(_ context.Context, skill string) ([]job.Job, error) {
	f.listCalls++
	out := []job.Job{}
	for _, j := range f.jobs {
		for _, s := range j.Skills {
			if s == skill {
				out = append(out, j)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Update(_ context.Context, j job.Job) error {
	if _, ok := f.jobs[j.ID.Hex()]; !ok {
		return job.ErrNotFound
	}
	f.jobs[j.ID.Hex()] = j
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.jobs[id]; !ok {
		return job.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := f.jobs[id]
	return ok, nil
}

type fakeCompanyRepo struct {
	companies map[string]company.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]company.Company{}}
}

func (f *fakeCompanyRepo) add() company.Company {
	c := company.Company{ID: primitive.NewObjectID(), Name: "Acme", Email: "hr@acme.test"}
	f.companies[c.ID.Hex()] = c
	return c
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *company.Company) error {
	c.ID = primitive.NewObjectID()
	f.companies[c.ID.Hex()] = *c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) GetByEmail(_ context.Context, email string) (company.Company, error) {
	for _, c := range f.companies {
		if c.Email == email {
			return c, nil
		}
	}
	return company.Company{}, company.ErrNotFound
}

func (f *fakeCompanyRepo) List(_ context.Context) ([]company.Company, error) { return nil, nil }

func (f *fakeCompanyRepo) Update(_ context.Context, c company.Company) error {
	if _, ok := f.companies[c.ID.Hex()]; !ok {
		return company.ErrNotFound
	}
	f.companies[c.ID.Hex()] = c
	return nil
}

func (f *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.companies[id]; !ok {
		return company.ErrNotFound
	}
	delete(f.companies, id)
	return nil
}

func (f *fakeCompanyRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := f.companies[id]
	return ok, nil
}

func (f *fakeCompanyRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeCompanyRepo) AppendJobID(_ context.Context, companyID, jobID string) error {
	c, ok := f.companies[companyID]
	if !ok {
		return company.ErrNotFound
	}
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return err
	}
	c.JobIDs = append(c.JobIDs, oid)
	f.companies[companyID] = c
	return nil
}

func (f *fakeCompanyRepo) RemoveJobID(_ context.Context, companyID, jobID string) error {
	c, ok := f.companies[companyID]
	if !ok {
		return company.ErrNotFound
	}
	kept := c.JobIDs[:0]
	for _, id := range c.JobIDs {
		if id.Hex() != jobID {
			kept = append(kept, id)
		}
	}
	c.JobIDs = kept
	f.companies[companyID] = c
	return nil
}

func (f *fakeCompanyRepo) ReplaceJobIDs(_ context.Context, companyID string, jobIDs []string) error {
	c, ok := f.companies[companyID]
	if !ok {
		return company.ErrNotFound
	}
	c.JobIDs = nil
	for _, id := range jobIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return err
		}
		c.JobIDs = append(c.JobIDs, oid)
	}
	f.companies[companyID] = c
	return nil
}

type fakeCache struct {
	store map[string][]byte
	sets  int
	hits  int
}

func newFakeCache() *fakeCache { return &fakeCache{store: map[string][]byte{}} }

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := f.store[key]
	if !ok {
		return false, nil
	}
	f.hits++
	return true, json.Unmarshal(b, out)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = b
	f.sets++
	return nil
}

func (f *fakeCache) DeleteByPattern(_ context.Context, _ string) error {
	f.store = map[string][]byte{}
	return nil
}

func createInput(companyID string) CreateInput {
	return CreateInput{
		CompanyID:   companyID,
		Position:    "Backend Engineer",
		Location:    "Jakarta",
		Experience:  "3 years",
		Description: "builds services",
		Skills:      []string{"Go", "MongoDB"},
		JobType:     "Full-time",
	}
}

func TestService_Create_AppendsCompanyBacklink(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	c := companies.add()
	svc := NewService(jobs, companies, nil, nil)

	created, err := svc.Create(context.Background(), createInput(c.ID.Hex()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got := companies.companies[c.ID.Hex()].JobIDs
	if len(got) != 1 || got[0] != created.ID {
		t.Fatalf("expected job_ids [%s], got %v", created.ID.Hex(), got)
	}
}

func TestService_Create_UnknownCompanyLeavesNothingBehind(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	svc := NewService(jobs, companies, nil, nil)

	_, err := svc.Create(context.Background(), createInput(primitive.NewObjectID().Hex()))
	if !errors.Is(err, company.ErrNotFound) {
		t.Fatalf("expected company.ErrNotFound, got %v", err)
	}
	if len(jobs.jobs) != 0 {
		t.Fatalf("expected no job persisted, got %d", len(jobs.jobs))
	}
}

func TestService_Create_MalformedCompanyID(t *testing.T) {
	svc := NewService(newFakeJobRepo(), newFakeCompanyRepo(), nil, nil)

	_, err := svc.Create(context.Background(), createInput("not-a-hex-id"))
	if !errors.Is(err, company.ErrNotFound) {
		t.Fatalf("expected company.ErrNotFound, got %v", err)
	}
}

func TestService_Create_EmptySkills(t *testing.T) {
	companies := newFakeCompanyRepo()
	c := companies.add()
	svc := NewService(newFakeJobRepo(), companies, nil, nil)

	in := createInput(c.ID.Hex())
	in.Skills = nil
	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Delete_RemovesExactlyOneBacklink(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	c := companies.add()
	svc := NewService(jobs, companies, nil, nil)

	first, err := svc.Create(context.Background(), createInput(c.ID.Hex()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := svc.Create(context.Background(), createInput(c.ID.Hex()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := svc.Delete(context.Background(), first.ID.Hex()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got := companies.companies[c.ID.Hex()].JobIDs
	if len(got) != 1 || got[0] != second.ID {
		t.Fatalf("expected job_ids [%s], got %v", second.ID.Hex(), got)
	}
	if _, ok := jobs.jobs[first.ID.Hex()]; ok {
		t.Fatalf("expected job %s deleted", first.ID.Hex())
	}
}

func TestService_Delete_OrphanedJobFailsWithCompanyNotFound(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	svc := NewService(jobs, companies, nil, nil)

	orphan := job.Job{CompanyID: primitive.NewObjectID(), Position: "Ghost", Skills: []string{"Go"}}
	if err := jobs.Create(context.Background(), &orphan); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	err := svc.Delete(context.Background(), orphan.ID.Hex())
	if !errors.Is(err, company.ErrNotFound) {
		t.Fatalf("expected company.ErrNotFound, got %v", err)
	}
	if _, ok := jobs.jobs[orphan.ID.Hex()]; !ok {
		t.Fatalf("expected orphaned job to survive the failed delete")
	}
}

func TestService_Update_TransferKeepsStaleBacklink(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	oldOwner := companies.add()
	newOwner := companies.add()
	svc := NewService(jobs, companies, nil, nil)

	created, err := svc.Create(context.Background(), createInput(oldOwner.ID.Hex()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	in := UpdateInput(createInput(newOwner.ID.Hex()))
	updated, err := svc.Update(context.Background(), created.ID.Hex(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.CompanyID != newOwner.ID {
		t.Fatalf("expected job owned by %s, got %s", newOwner.ID.Hex(), updated.CompanyID.Hex())
	}

	// Neither directory is rewritten on transfer; reconciliation repairs it.
	if got := companies.companies[oldOwner.ID.Hex()].JobIDs; len(got) != 1 {
		t.Fatalf("expected old owner to keep its stale entry, got %v", got)
	}
	if got := companies.companies[newOwner.ID.Hex()].JobIDs; len(got) != 0 {
		t.Fatalf("expected new owner's directory untouched, got %v", got)
	}
}

func TestService_Update_UnknownNewCompany(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	owner := companies.add()
	svc := NewService(jobs, companies, nil, nil)

	created, err := svc.Create(context.Background(), createInput(owner.ID.Hex()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	in := UpdateInput(createInput(primitive.NewObjectID().Hex()))
	if _, err := svc.Update(context.Background(), created.ID.Hex(), in); !errors.Is(err, company.ErrNotFound) {
		t.Fatalf("expected company.ErrNotFound, got %v", err)
	}
	if jobs.jobs[created.ID.Hex()].CompanyID != owner.ID {
		t.Fatalf("expected job ownership unchanged")
	}
}

func TestService_ReconcileCompanyJobs_RebuildsDirectory(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	c := companies.add()
	svc := NewService(jobs, companies, nil, nil)

	owned := job.Job{CompanyID: c.ID, Position: "Backend Engineer", Skills: []string{"Go"}}
	if err := jobs.Create(context.Background(), &owned); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Directory starts stale: one phantom entry, missing the real job.
	if err := companies.AppendJobID(context.Background(), c.ID.Hex(), primitive.NewObjectID().Hex()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := svc.ReconcileCompanyJobs(context.Background(), c.ID.Hex()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got := companies.companies[c.ID.Hex()].JobIDs
	if len(got) != 1 || got[0] != owned.ID {
		t.Fatalf("expected job_ids [%s], got %v", owned.ID.Hex(), got)
	}
}

func TestService_ReconcileCompanyJobs_UnknownCompany(t *testing.T) {
	svc := NewService(newFakeJobRepo(), newFakeCompanyRepo(), nil, nil)

	err := svc.ReconcileCompanyJobs(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, company.ErrNotFound) {
		t.Fatalf("expected company.ErrNotFound, got %v", err)
	}
}

func TestService_CreateThenDelete_DirectoryMatchesOwnedJobs(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	c := companies.add()
	svc := NewService(jobs, companies, nil, nil)

	created, err := svc.Create(context.Background(), createInput(c.ID.Hex()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	listed, err := svc.ListByCompany(context.Background(), c.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("expected the created job listed under its company, got %v", listed)
	}

	if err := svc.Delete(context.Background(), created.ID.Hex()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got := companies.companies[c.ID.Hex()].JobIDs; len(got) != 0 {
		t.Fatalf("expected empty job_ids after delete, got %v", got)
	}
	if _, err := svc.GetByID(context.Background(), created.ID.Hex()); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected job.ErrNotFound, got %v", err)
	}
}

func TestService_SearchByPosition_ServedFromCacheOnRepeat(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	c := companies.add()
	cache := newFakeCache()
	svc := NewService(jobs, companies, cache, nil)

	if _, err := svc.Create(context.Background(), createInput(c.ID.Hex())); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	first, err := svc.SearchByPosition(context.Background(), "Backend Engineer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := svc.SearchByPosition(context.Background(), "Backend Engineer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected 1 result each, got %d and %d", len(first), len(second))
	}
	if jobs.listCalls != 1 {
		t.Fatalf("expected a single repo search, got %d", jobs.listCalls)
	}
	if cache.hits != 1 {
		t.Fatalf("expected one cache hit, got %d", cache.hits)
	}
}

func TestService_Create_InvalidatesSearchCache(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	c := companies.add()
	cache := newFakeCache()
	svc := NewService(jobs, companies, cache, nil)

	if _, err := svc.Create(context.Background(), createInput(c.ID.Hex())); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.SearchBySkill(context.Background(), "Go"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.Create(context.Background(), createInput(c.ID.Hex())); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := svc.SearchBySkill(context.Background(), "Go")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected stale search entry dropped after create, got %d results", len(got))
	}
}

func TestService_SearchByPosition_EmptyQuery(t *testing.T) {
	svc := NewService(newFakeJobRepo(), newFakeCompanyRepo(), nil, nil)

	if _, err := svc.SearchByPosition(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
