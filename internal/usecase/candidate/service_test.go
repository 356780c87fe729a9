package candidate

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"jobportal/internal/domain/candidate"
)

type fakeRepo struct {
	byID map[string]candidate.Candidate
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]candidate.Candidate{}}
}

func (f *fakeRepo) Create(_ context.Context, c *candidate.Candidate) error {
	for _, existing := range f.byID {
		if existing.Email == c.Email {
			return candidate.ErrEmailTaken
		}
	}
	c.ID = primitive.NewObjectID()
	f.byID[c.ID.Hex()] = *c
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (candidate.Candidate, error) {
	c, ok := f.byID[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (candidate.Candidate, error) {
	for _, c := range f.byID {
		if c.Email == email {
			return c, nil
		}
	}
	return candidate.Candidate{}, candidate.ErrNotFound
}

func (f *fakeRepo) List(_ context.Context) ([]candidate.Candidate, error) {
	out := []candidate.Candidate{}
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) ListBySkill(_ context.Context, skill string) ([]candidate.Candidate, error) {
	out := []candidate.Candidate{}
	for _, c := range f.byID {
		for _, s := range c.Skills {
			if s == skill {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, c candidate.Candidate) error {
	if _, ok := f.byID[c.ID.Hex()]; !ok {
		return candidate.ErrNotFound
	}
	f.byID[c.ID.Hex()] = c
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return candidate.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func createInput() CreateInput {
	return CreateInput{
		Name:       "Dina",
		Email:      "dina@example.com",
		Password:   "s3cret-pass",
		Phone:      "+62-812-0000",
		ResumeLink: "https://cv.example.com/dina",
		Skills:     []string{"Go"},
	}
}

func TestService_Create_HashesPasswordAndNormalizesEmail(t *testing.T) {
	svc := NewService(newFakeRepo())

	in := createInput()
	in.Email = "  Dina@Example.COM "
	c, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Email != "dina@example.com" {
		t.Fatalf("expected normalized email, got %q", c.Email)
	}
	if c.PasswordHash == in.Password {
		t.Fatal("expected password hashed, found plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(in.Password)); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepo())

	if _, err := svc.Create(context.Background(), createInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.Create(context.Background(), createInput()); !errors.Is(err, candidate.ErrEmailTaken) {
		t.Fatalf("expected candidate.ErrEmailTaken, got %v", err)
	}
}

func TestService_Update_KeepsPasswordWhenOmitted(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID.Hex(), UpdateInput{
		Name:   "Dina R.",
		Email:  created.Email,
		Skills: []string{"Go", "Redis"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.PasswordHash != created.PasswordHash {
		t.Fatal("expected password hash unchanged when password omitted")
	}
	if updated.Name != "Dina R." {
		t.Fatalf("expected name updated, got %q", updated.Name)
	}
}

func TestService_Update_EmailChangeToTakenEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	first, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	other := createInput()
	other.Email = "other@example.com"
	if _, err := svc.Create(context.Background(), other); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err = svc.Update(context.Background(), first.ID.Hex(), UpdateInput{
		Name:  first.Name,
		Email: "other@example.com",
	})
	if !errors.Is(err, candidate.ErrEmailTaken) {
		t.Fatalf("expected candidate.ErrEmailTaken, got %v", err)
	}
}

func TestService_Update_UnknownCandidate(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateInput{Email: "x@example.com"})
	if !errors.Is(err, candidate.ErrNotFound) {
		t.Fatalf("expected candidate.ErrNotFound, got %v", err)
	}
}
