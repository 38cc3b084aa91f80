package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories sharing one backing store, so cascades behave
// like the real backends.
// ---------------------------------------------------------------------------

type memDB struct {
	mu        sync.Mutex
	accounts  map[string]*domain.Account
	persons   []domain.InvitedPerson
	responses map[string]domain.RSVPResponse // by person ID
	comments  []domain.Comment
	activity  []domain.Activity
	upsertErr map[string]error // by name_surname
}

func newMemDB() *memDB {
	return &memDB{
		accounts:  map[string]*domain.Account{},
		responses: map[string]domain.RSVPResponse{},
		upsertErr: map[string]error{},
	}
}

type stubAccountRepo struct{ db *memDB }
type stubPersonRepo struct{ db *memDB }
type stubResponseRepo struct{ db *memDB }
type stubCommentRepo struct{ db *memDB }
type stubActivityRepo struct{ db *memDB }

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, exists := r.db.accounts[a.Username]; exists {
		return nil, domain.ErrAccountExists
	}
	r.db.accounts[a.Username] = cloneAccount(a)
	return cloneAccount(a), nil
}

func (r stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r stubAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]domain.Account, 0, len(r.db.accounts))
	for _, a := range r.db.accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r stubAccountRepo) UpdateMessage(_ context.Context, username, message string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.accounts[username]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.Message = message
	a.UpdatedAt = at
	return nil
}

func (r stubAccountRepo) UpdatePassword(_ context.Context, username, hash string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.accounts[username]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.PasswordHash = hash
	a.UpdatedAt = at
	return nil
}

func (r stubAccountRepo) Delete(_ context.Context, username string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.accounts, username)
	kept := r.db.persons[:0]
	for _, p := range r.db.persons {
		if p.Username == username {
			delete(r.db.responses, p.ID)
			continue
		}
		kept = append(kept, p)
	}
	r.db.persons = kept
	comments := r.db.comments[:0]
	for _, c := range r.db.comments {
		if c.Username != username {
			comments = append(comments, c)
		}
	}
	r.db.comments = comments
	return nil
}

func (r stubPersonRepo) Create(_ context.Context, p *domain.InvitedPerson) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.persons {
		if existing.Username == p.Username && existing.NameSurname == p.NameSurname {
			return domain.ErrPersonExists
		}
	}
	r.db.persons = append(r.db.persons, *p)
	return nil
}

func (r stubPersonRepo) ListByAccount(_ context.Context, username string) ([]domain.InvitedPerson, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.InvitedPerson
	for _, p := range r.db.persons {
		if p.Username == username {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r stubPersonRepo) ListAll(_ context.Context) ([]domain.InvitedPerson, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return append([]domain.InvitedPerson(nil), r.db.persons...), nil
}

func (r stubPersonRepo) FindByName(_ context.Context, username, name string) (*domain.InvitedPerson, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, p := range r.db.persons {
		if p.Username == username && p.NameSurname == name {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrPersonNotFound
}

func (r stubPersonRepo) FindByID(_ context.Context, username, id string) (*domain.InvitedPerson, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, p := range r.db.persons {
		if p.Username == username && p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrPersonNotFound
}

func (r stubPersonRepo) DeleteByName(_ context.Context, username, name string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	kept := r.db.persons[:0]
	for _, p := range r.db.persons {
		if p.Username == username && p.NameSurname == name {
			delete(r.db.responses, p.ID)
			continue
		}
		kept = append(kept, p)
	}
	r.db.persons = kept
	return nil
}

func (r stubResponseRepo) Upsert(_ context.Context, resp *domain.RSVPResponse) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.upsertErr[resp.NameSurname]; err != nil {
		return err
	}
	r.db.responses[resp.PersonID] = *resp
	return nil
}

func (r stubResponseRepo) ListByAccount(_ context.Context, username string) ([]domain.RSVPResponse, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.RSVPResponse
	for _, resp := range r.db.responses {
		if resp.Username == username {
			out = append(out, resp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameSurname < out[j].NameSurname })
	return out, nil
}

func (r stubResponseRepo) ListAll(_ context.Context) ([]domain.RSVPResponse, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]domain.RSVPResponse, 0, len(r.db.responses))
	for _, resp := range r.db.responses {
		out = append(out, resp)
	}
	return out, nil
}

func (r stubCommentRepo) Insert(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	clone := *c
	clone.Seq = int64(len(r.db.comments) + 1)
	r.db.comments = append(r.db.comments, clone)
	return &clone, nil
}

func (r stubCommentRepo) ListByAccount(_ context.Context, username string) ([]domain.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.Comment
	for _, c := range r.db.comments {
		if c.Username == username {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r stubCommentRepo) ListAll(_ context.Context) ([]domain.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return append([]domain.Comment(nil), r.db.comments...), nil
}

func (r stubActivityRepo) Insert(_ context.Context, a *domain.Activity) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.activity = append(r.db.activity, *a)
	return nil
}

func (r stubActivityRepo) List(_ context.Context, f ports.ActivityFilter) ([]domain.Activity, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.Activity
	for i := len(r.db.activity) - 1; i >= 0; i-- {
		a := r.db.activity[i]
		if f.Username != "" && a.Username != f.Username {
			continue
		}
		out = append(out, a)
		if len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Session store and activity publisher stubs
// ---------------------------------------------------------------------------

type stubSessions struct {
	mu        sync.Mutex
	live      map[string]string
	createErr error
}

func newStubSessions() *stubSessions {
	return &stubSessions{live: map[string]string{}}
}

func (s *stubSessions) Create(_ context.Context, id, username string, _ time.Duration) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live[id] = username
	return nil
}

func (s *stubSessions) Exists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.live[id]
	return ok, nil
}

func (s *stubSessions) Revoke(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.live, id)
	return nil
}

type stubPublisher struct {
	mu     sync.Mutex
	events []domain.Activity
}

func (p *stubPublisher) Publish(a domain.Activity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, a)
}

func (p *stubPublisher) kinds() []domain.ActivityKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.ActivityKind, len(p.events))
	for i, e := range p.events {
		out[i] = e.Kind
	}
	return out
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

type fixture struct {
	db       *memDB
	pub      *stubPublisher
	sessions *stubSessions
	accounts stubAccountRepo
	persons  stubPersonRepo
	resps    stubResponseRepo
	comments stubCommentRepo
}

func newFixture() *fixture {
	db := newMemDB()
	return &fixture{
		db:       db,
		pub:      &stubPublisher{},
		sessions: newStubSessions(),
		accounts: stubAccountRepo{db},
		persons:  stubPersonRepo{db},
		resps:    stubResponseRepo{db},
		comments: stubCommentRepo{db},
	}
}

func (f *fixture) accountSvc() *AccountService {
	return NewAccountService(f.accounts, f.pub, zerolog.Nop())
}

func (f *fixture) personSvc() *PersonService {
	return NewPersonService(f.accounts, f.persons, f.pub, zerolog.Nop())
}

func (f *fixture) rsvpSvc() *RSVPService {
	return NewRSVPService(f.accounts, f.persons, f.resps, f.comments, f.pub, zerolog.Nop())
}

func (f *fixture) commentSvc() *CommentService {
	return NewCommentService(f.comments, f.resps, f.pub, zerolog.Nop())
}

// seedGuest creates a guest account with the given roster and returns the
// person IDs in order.
func (f *fixture) seedGuest(username string, names ...string) []string {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	f.db.accounts[username] = &domain.Account{Username: username, Role: domain.RoleGuest}
	ids := make([]string, len(names))
	for i, n := range names {
		id := username + "-" + n
		f.db.persons = append(f.db.persons, domain.InvitedPerson{ID: id, Username: username, NameSurname: n})
		ids[i] = id
	}
	return ids
}
