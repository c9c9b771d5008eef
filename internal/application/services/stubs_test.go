package services_test

import (
	"context"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

type stubTutorRepo struct {
	tutors []entities.Tutor
	err    error
	calls  int
}

func (s *stubTutorRepo) List(ctx context.Context) ([]entities.Tutor, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.tutors, nil
}

func (s *stubTutorRepo) GetByID(ctx context.Context, id int) (*entities.Tutor, error) {
	tutors, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if id < 0 || id >= len(tutors) {
		return nil, apperrors.NewNotFoundError("tutor not found")
	}
	tutor := tutors[id]
	return &tutor, nil
}

type stubOverrideRepo struct {
	stored    map[int]*entities.TutorOverride
	upsertErr error
	readErr   error
}

func (s *stubOverrideRepo) Upsert(ctx context.Context, override *entities.TutorOverride) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	if s.stored == nil {
		s.stored = map[int]*entities.TutorOverride{}
	}
	if existing, ok := s.stored[override.TutorID]; ok {
		existing.Merge(override)
		return nil
	}
	copied := *override
	s.stored[override.TutorID] = &copied
	return nil
}

func (s *stubOverrideRepo) Get(ctx context.Context, tutorID int) (*entities.TutorOverride, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.stored[tutorID], nil
}

func (s *stubOverrideRepo) List(ctx context.Context) ([]*entities.TutorOverride, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	out := make([]*entities.TutorOverride, 0, len(s.stored))
	for _, o := range s.stored {
		out = append(out, o)
	}
	return out, nil
}

type stubSearchRepo struct {
	results []entities.Tutor
	indexed []entities.Tutor
	queries []string
}

func (s *stubSearchRepo) InitSchema(ctx context.Context) error { return nil }

func (s *stubSearchRepo) Index(ctx context.Context, tutor *entities.Tutor) error {
	s.indexed = append(s.indexed, *tutor)
	return nil
}

func (s *stubSearchRepo) IndexBatch(ctx context.Context, tutors []entities.Tutor) error {
	s.indexed = append(s.indexed, tutors...)
	return nil
}

func (s *stubSearchRepo) Search(ctx context.Context, query string, limit int) ([]entities.Tutor, error) {
	s.queries = append(s.queries, query)
	return s.results, nil
}

type stubJobRepo struct {
	jobs []entities.Job
	err  error
}

func (s *stubJobRepo) List(ctx context.Context) ([]entities.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.jobs, nil
}

type stubLeadRepo struct {
	created []*entities.Lead
	err     error
}

func (s *stubLeadRepo) Create(ctx context.Context, lead *entities.Lead) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, lead)
	return nil
}

func (s *stubLeadRepo) ListByTutor(ctx context.Context, tutorID int, limit int) ([]*entities.Lead, error) {
	out := []*entities.Lead{}
	for _, l := range s.created {
		if l.TutorID == tutorID {
			out = append(out, l)
		}
	}
	return out, nil
}

type stubRegistrar struct {
	received  []*entities.Registration
	lastToken string
	err       error
}

func (s *stubRegistrar) Register(ctx context.Context, reg *entities.Registration, image []byte, imageName, recaptchaToken string) error {
	if s.err != nil {
		return s.err
	}
	s.received = append(s.received, reg)
	s.lastToken = recaptchaToken
	return nil
}

type stubRegistrationRepo struct {
	created []*entities.Registration
	err     error
}

func (s *stubRegistrationRepo) Create(ctx context.Context, reg *entities.Registration) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, reg)
	return nil
}

type stubVerifier struct {
	err     error
	tokens  []string
	actions []string
}

func (s *stubVerifier) Verify(ctx context.Context, token, action string) error {
	s.tokens = append(s.tokens, token)
	s.actions = append(s.actions, action)
	return s.err
}
