package pets

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"pet-care-journal/internal/ports/images"
)

// -------------------------
// Fakes in-package
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID    map[string]Pet
	creates int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.creates++
	r.byID[p.PetID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.PetID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.PetID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, petID string) (Pet, error) {
	p, ok := r.byID[petID]
	if !ok {
		return Pet{}, errRepoNotFound
	}
	return p, nil
}

type testImageStore struct {
	objects map[string][]byte
	puts    []string
}

func newTestImageStore() *testImageStore {
	return &testImageStore{objects: map[string][]byte{}}
}

func (s *testImageStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, ok := s.objects[key]
	if !ok {
		return nil, images.ErrNotFound
	}
	return b, nil
}

func (s *testImageStore) Put(ctx context.Context, key string, data []byte) error {
	s.objects[key] = data
	s.puts = append(s.puts, key)
	return nil
}

func (s *testImageStore) PresignedURL(ctx context.Context, method images.Method, key string, ttl time.Duration) (string, error) {
	return "https://example.test/" + key, nil
}

type fakeDescriber struct {
	calls int
	desc  PictureDescription
	err   error
}

func (f *fakeDescriber) Describe(ctx context.Context, imageKey string) (PictureDescription, error) {
	f.calls++
	if f.err != nil {
		return PictureDescription{}, f.err
	}
	return f.desc, nil
}

type fakeAvatar struct {
	calls    int
	failFor  int // falla los primeros N intentos
	result   string
	received []PictureDescription
}

func (f *fakeAvatar) Generate(ctx context.Context, d PictureDescription) (string, error) {
	f.calls++
	f.received = append(f.received, d)
	if f.calls <= f.failFor {
		return "", errors.New("avatar service unavailable")
	}
	return f.result, nil
}

type fakeNotes struct {
	calls int
	notes []CareNote
	err   error
}

func (f *fakeNotes) Generate(ctx context.Context, vars CareNotesVars) ([]CareNote, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.notes, nil
}

func validNotes() []CareNote {
	return []CareNote{
		{Title: "Paseo diario", Description: "Al menos 30 minutos", Icon: IconDog},
		{Title: "Premios", Description: "Con moderación", Icon: IconCookie},
	}
}

func validInput() CreateInput {
	return CreateInput{
		PetID:       "pet-1",
		Name:        "Milo",
		Category:    "dog",
		BirthDate:   time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		Gender:      GenderMale,
		PictureName: "original.jpg",
	}
}

func newTestService(repo *testRepo, store *testImageStore, d *fakeDescriber, a *fakeAvatar, n *fakeNotes) *Service {
	return NewService(repo, store, d, a, n, nil)
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_HappyPath(t *testing.T) {
	repo := newTestRepo()
	store := newTestImageStore()
	avatarBytes := []byte("jpeg-bytes")

	describer := &fakeDescriber{desc: PictureDescription{PositivePrompt: "a dog", NegativePrompt: "blurry"}}
	avatar := &fakeAvatar{result: base64.StdEncoding.EncodeToString(avatarBytes)}
	notes := &fakeNotes{notes: validNotes()}

	svc := newTestService(repo, store, describer, avatar, notes)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if p.ImageName != AvatarImageName {
		t.Fatalf("expected image_name %q, got %q", AvatarImageName, p.ImageName)
	}
	for _, n := range p.CareNotes {
		if !n.Icon.Valid() {
			t.Fatalf("care note icon %q outside the icon set", n.Icon)
		}
	}
	if p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected timestamps = now")
	}

	// El avatar quedó bajo la clave fija, decodificado.
	got, err := store.Get(context.Background(), "pet-1/"+AvatarImageName)
	if err != nil {
		t.Fatalf("avatar not stored: %v", err)
	}
	if string(got) != string(avatarBytes) {
		t.Fatalf("stored avatar bytes mismatch")
	}

	if repo.creates != 1 {
		t.Fatalf("expected 1 repo create, got %d", repo.creates)
	}
}

func TestService_Create_RetriesFromFirstStage(t *testing.T) {
	// El avatar falla en los intentos 1 y 2 y funciona en el 3:
	// la creación debe terminar OK y cada intento debe re-ejecutar
	// desde la primera etapa (describe), no retomar a mitad de camino.
	repo := newTestRepo()
	store := newTestImageStore()

	describer := &fakeDescriber{desc: PictureDescription{PositivePrompt: "a cat"}}
	avatar := &fakeAvatar{failFor: 2, result: base64.StdEncoding.EncodeToString([]byte("img"))}
	notes := &fakeNotes{notes: validNotes()}

	svc := newTestService(repo, store, describer, avatar, notes)

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.PetID != "pet-1" {
		t.Fatalf("unexpected pet: %+v", p)
	}

	if describer.calls != 3 {
		t.Fatalf("expected describe re-run on every attempt (3), got %d", describer.calls)
	}
	if avatar.calls != 3 {
		t.Fatalf("expected 3 avatar calls, got %d", avatar.calls)
	}
	// Las notas solo se generan en el intento que llegó a esa etapa.
	if notes.calls != 1 {
		t.Fatalf("expected 1 care notes call, got %d", notes.calls)
	}
}

func TestService_Create_ExhaustsAttemptsOnBadCareNotes(t *testing.T) {
	repo := newTestRepo()
	store := newTestImageStore()

	describer := &fakeDescriber{desc: PictureDescription{PositivePrompt: "a dog"}}
	avatar := &fakeAvatar{result: base64.StdEncoding.EncodeToString([]byte("img"))}
	// Ícono fuera del enum: violación de contrato de datos, falla el intento.
	notes := &fakeNotes{notes: []CareNote{
		{Title: "Paseo", Description: "Diario", Icon: CareNoteIcon("Rocket")},
	}}

	svc := newTestService(repo, store, describer, avatar, notes)

	_, err := svc.Create(context.Background(), validInput())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrCreationFailed) {
		t.Fatalf("expected ErrCreationFailed, got %v", err)
	}
	if notes.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", notes.calls)
	}
	if repo.creates != 0 {
		t.Fatalf("pet must not be persisted on terminal failure")
	}
}

func TestService_Create_FailsOnMalformedAvatar(t *testing.T) {
	repo := newTestRepo()
	store := newTestImageStore()

	describer := &fakeDescriber{desc: PictureDescription{PositivePrompt: "a dog"}}
	avatar := &fakeAvatar{result: "esto no es base64 válido!!!"}
	notes := &fakeNotes{notes: validNotes()}

	svc := newTestService(repo, store, describer, avatar, notes)

	_, err := svc.Create(context.Background(), validInput())
	if !errors.Is(err, ErrCreationFailed) {
		t.Fatalf("expected ErrCreationFailed, got %v", err)
	}
	if avatar.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", avatar.calls)
	}
	// La etapa de notas nunca se alcanza.
	if notes.calls != 0 {
		t.Fatalf("care notes must not be called, got %d", notes.calls)
	}
}

func TestService_Create_TruncatesPromptsAt512(t *testing.T) {
	repo := newTestRepo()
	store := newTestImageStore()

	long := strings.Repeat("a", 600)
	exact := strings.Repeat("b", MaxPromptLength)

	describer := &fakeDescriber{desc: PictureDescription{
		PositivePrompt: long,
		NegativePrompt: exact,
	}}
	avatar := &fakeAvatar{result: base64.StdEncoding.EncodeToString([]byte("img"))}
	notes := &fakeNotes{notes: validNotes()}

	svc := newTestService(repo, store, describer, avatar, notes)

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got := avatar.received[0]
	if len(got.PositivePrompt) != MaxPromptLength {
		t.Fatalf("expected positive prompt truncated to %d, got %d", MaxPromptLength, len(got.PositivePrompt))
	}
	// Un prompt de exactamente 512 pasa sin tocar.
	if got.NegativePrompt != exact {
		t.Fatalf("expected exact-length prompt unchanged")
	}
}

func TestService_Create_RejectsInvalidInput(t *testing.T) {
	svc := newTestService(newTestRepo(), newTestImageStore(), &fakeDescriber{}, &fakeAvatar{}, &fakeNotes{})

	cases := map[string]CreateInput{
		"empty pet id":   {Name: "Milo", Category: "dog", BirthDate: time.Now(), Gender: GenderMale, PictureName: "p.jpg"},
		"empty name":     {PetID: "p1", Category: "dog", BirthDate: time.Now(), Gender: GenderMale, PictureName: "p.jpg"},
		"empty picture":  {PetID: "p1", Name: "Milo", Category: "dog", BirthDate: time.Now(), Gender: GenderMale},
		"bad gender":     {PetID: "p1", Name: "Milo", Category: "dog", BirthDate: time.Now(), Gender: Gender("robot"), PictureName: "p.jpg"},
		"zero birthdate": {PetID: "p1", Name: "Milo", Category: "dog", Gender: GenderMale, PictureName: "p.jpg"},
	}

	for name, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestService_UpdateCareNotes_ReplacesWholesale(t *testing.T) {
	repo := newTestRepo()
	repo.byID["pet-1"] = Pet{
		PetID:     "pet-1",
		Name:      "Milo",
		CareNotes: validNotes(),
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	svc := newTestService(repo, newTestImageStore(), &fakeDescriber{}, &fakeAvatar{}, &fakeNotes{})
	now := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	replacement := []CareNote{{Title: "Cepillado", Description: "Semanal", Icon: IconSmile}}

	p, err := svc.UpdateCareNotes(context.Background(), "pet-1", replacement)
	if err != nil {
		t.Fatalf("UpdateCareNotes returned error: %v", err)
	}
	if len(p.CareNotes) != 1 || p.CareNotes[0].Title != "Cepillado" {
		t.Fatalf("expected notes replaced wholesale, got %+v", p.CareNotes)
	}
	if p.UpdatedAt != now {
		t.Fatalf("expected UpdatedAt refreshed")
	}
}

func TestService_UpdateCareNotes_RejectsUnknownIcon(t *testing.T) {
	repo := newTestRepo()
	repo.byID["pet-1"] = Pet{PetID: "pet-1"}

	svc := newTestService(repo, newTestImageStore(), &fakeDescriber{}, &fakeAvatar{}, &fakeNotes{})

	_, err := svc.UpdateCareNotes(context.Background(), "pet-1", []CareNote{
		{Title: "x", Description: "y", Icon: CareNoteIcon("Alien")},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
