package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"degrondvraag-be/internal/entity"
	"degrondvraag-be/internal/repository/contract"
	"degrondvraag-be/internal/repository/specification"
	"degrondvraag-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repository fakes. They interpret the same specification values
// the GORM implementations translate to SQL.

type fakeStore struct {
	mu       sync.Mutex
	essays   map[string]*entity.Essay
	comments []*entity.Comment
	votes    map[string]*entity.Vote // key: slug + "|" + userId
	users    map[uuid.UUID]*entity.User
	chatLogs []*entity.ChatLog

	failEssayFind bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		essays: make(map[string]*entity.Essay),
		votes:  make(map[string]*entity.Vote),
		users:  make(map[uuid.UUID]*entity.User),
	}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: newFakeStore()}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) EssayRepository() contract.EssayRepository {
	return &fakeEssayRepo{store: u.store}
}

func (u *fakeUow) CommentRepository() contract.CommentRepository {
	return &fakeCommentRepo{store: u.store}
}

func (u *fakeUow) VoteRepository() contract.VoteRepository {
	return &fakeVoteRepo{store: u.store}
}

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUow) ChatLogRepository() contract.ChatLogRepository {
	return &fakeChatLogRepo{store: u.store}
}

type fakeEssayRepo struct {
	store *fakeStore
}

func (r *fakeEssayRepo) Upsert(ctx context.Context, essay *entity.Essay) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *essay
	r.store.essays[essay.Slug] = &cp
	return nil
}

func (r *fakeEssayRepo) Delete(ctx context.Context, slug string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.essays, slug)
	return nil
}

func (r *fakeEssayRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Essay, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeEssayRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Essay, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failEssayFind {
		return nil, errors.New("store unavailable")
	}

	var out []*entity.Essay
	for _, e := range r.store.essays {
		match := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.BySlug:
				if e.Slug != s.Slug {
					match = false
				}
			case specification.ByStatus:
				if e.Status != s.Status {
					match = false
				}
			}
		}
		if match {
			cp := *e
			out = append(out, &cp)
		}
	}

	for _, spec := range specs {
		if _, ok := spec.(specification.OrderByDateDesc); ok {
			sort.Slice(out, func(i, j int) bool {
				if out[i].Date != out[j].Date {
					return out[i].Date > out[j].Date
				}
				return out[i].CreatedAt.After(out[j].CreatedAt)
			})
		}
	}
	return out, nil
}

func (r *fakeEssayRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

type fakeCommentRepo struct {
	store *fakeStore
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *comment
	r.store.comments = append(r.store.comments, &cp)
	return nil
}

func (r *fakeCommentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Comment
	for _, c := range r.store.comments {
		match := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByArticleId); ok && c.ArticleId != s.ArticleId {
				match = false
			}
		}
		if match {
			cp := *c
			out = append(out, &cp)
		}
	}

	for _, spec := range specs {
		if _, ok := spec.(specification.OrderByCreatedAtDesc); ok {
			sort.Slice(out, func(i, j int) bool {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			})
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

type fakeVoteRepo struct {
	store *fakeStore
}

func voteKey(slug string, userId uuid.UUID) string {
	return slug + "|" + userId.String()
}

func (r *fakeVoteRepo) Upsert(ctx context.Context, vote *entity.Vote) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *vote
	r.store.votes[voteKey(vote.EssaySlug, vote.UserId)] = &cp
	return nil
}

func (r *fakeVoteRepo) Delete(ctx context.Context, essaySlug string, userId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.votes, voteKey(essaySlug, userId))
	return nil
}

func (r *fakeVoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vote, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeVoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Vote
	for _, v := range r.store.votes {
		match := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByEssaySlug:
				if v.EssaySlug != s.EssaySlug {
					match = false
				}
			case specification.ByVoter:
				if v.UserId != s.UserId {
					match = false
				}
			case specification.ByVoteType:
				if v.Type != s.Type {
					match = false
				}
			}
		}
		if match {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeVoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *user
	r.store.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		match := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByEmail:
				if u.Email == nil || *u.Email != s.Email {
					match = false
				}
			case specification.ById:
				if u.Id != s.Id {
					match = false
				}
			case specification.ByRole:
				if string(u.Role) != s.Role {
					match = false
				}
			}
		}
		if match {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeChatLogRepo struct {
	store *fakeStore
}

func (r *fakeChatLogRepo) Create(ctx context.Context, log *entity.ChatLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *log
	r.store.chatLogs = append(r.store.chatLogs, &cp)
	return nil
}

func (r *fakeChatLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*entity.ChatLog, 0, len(r.store.chatLogs))
	for _, l := range r.store.chatLogs {
		cp := *l
		out = append(out, &cp)
	}

	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OrderByCreatedAtDesc:
			sort.Slice(out, func(i, j int) bool {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			})
		case specification.Limit:
			if s.Offset < len(out) {
				out = out[s.Offset:]
			} else {
				out = nil
			}
			if s.Limit > 0 && s.Limit < len(out) {
				out = out[:s.Limit]
			}
		}
	}
	return out, nil
}

func (r *fakeChatLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.chatLogs)), nil
}

// recordingPublisher captures content change events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	Collection string
	EssaySlug  string
}

func (p *recordingPublisher) PublishContentChange(ctx context.Context, collection, essaySlug string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Collection: collection, EssaySlug: essaySlug})
	return nil
}

func (p *recordingPublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
