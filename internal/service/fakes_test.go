package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/pkg/events"
	"vaccine-village-go/pkg/llm"

	"gorm.io/gorm"
)

type memConversationRepo struct {
	mu       sync.Mutex
	current  map[uint]string
	logs     map[string][]model.ChatMessage
	limit    int
	seq      int
	appendFn func() error
}

func newMemConversationRepo() *memConversationRepo {
	return &memConversationRepo{current: map[uint]string{}, logs: map[string][]model.ChatMessage{}, limit: 100}
}

func (r *memConversationRepo) GetOrCreateConversationID(_ context.Context, userID uint) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.current[userID]; ok {
		return id, nil
	}
	r.seq++
	id := fmt.Sprintf("conv-%d-%d", userID, r.seq)
	r.current[userID] = id
	return id, nil
}

func (r *memConversationRepo) GetConversationHistory(_ context.Context, id string) ([]model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.ChatMessage{}, r.logs[id]...), nil
}

func (r *memConversationRepo) AppendMessages(_ context.Context, _ uint, id string, messages ...model.ChatMessage) error {
	if r.appendFn != nil {
		if err := r.appendFn(); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := append(r.logs[id], messages...)
	if len(msgs) > r.limit {
		msgs = msgs[len(msgs)-r.limit:]
	}
	r.logs[id] = msgs
	return nil
}

func (r *memConversationRepo) ClearConversation(_ context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.current[userID]; ok {
		delete(r.logs, id)
		delete(r.current, userID)
	}
	return nil
}

func (r *memConversationRepo) GetAllUserConversationMappings(context.Context) (map[uint]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[uint]string, len(r.current))
	for k, v := range r.current {
		out[k] = v
	}
	return out, nil
}

type memPreferenceRepo struct {
	prefs map[uint]model.Preferences
}

func newMemPreferenceRepo() *memPreferenceRepo {
	return &memPreferenceRepo{prefs: map[uint]model.Preferences{}}
}

func (r *memPreferenceRepo) Get(_ context.Context, userID uint) (model.Preferences, error) {
	return r.prefs[userID], nil
}

func (r *memPreferenceRepo) Update(_ context.Context, userID uint, u model.PreferencesUpdate) error {
	p := r.prefs[userID]
	if u.Language != nil {
		p.Language = *u.Language
	}
	if u.LanguageSelected != nil {
		p.LanguageSelected = *u.LanguageSelected
	}
	if u.DataConsent != nil {
		v := *u.DataConsent
		p.DataConsent = &v
	}
	if u.HowToUseDismissed != nil {
		p.HowToUseDismissed = *u.HowToUseDismissed
	}
	if u.OfflineDownloaded != nil {
		p.OfflineDownloaded = *u.OfflineDownloaded
	}
	if u.OfflinePromptDismissed != nil {
		p.OfflinePromptDismissed = *u.OfflinePromptDismissed
	}
	if u.AppWasBackgrounded != nil {
		p.AppWasBackgrounded = *u.AppWasBackgrounded
	}
	r.prefs[userID] = p
	return nil
}

type memBookmarkRepo struct {
	resources map[uint]map[string]bool
	messages  map[uint][]model.ChatMessage
}

func newMemBookmarkRepo() *memBookmarkRepo {
	return &memBookmarkRepo{resources: map[uint]map[string]bool{}, messages: map[uint][]model.ChatMessage{}}
}

func (r *memBookmarkRepo) ListResourceIDs(_ context.Context, userID uint) ([]string, error) {
	var ids []string
	for id := range r.resources[userID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *memBookmarkRepo) AddResource(_ context.Context, userID uint, id string) error {
	if r.resources[userID] == nil {
		r.resources[userID] = map[string]bool{}
	}
	r.resources[userID][id] = true
	return nil
}

func (r *memBookmarkRepo) RemoveResource(_ context.Context, userID uint, id string) error {
	delete(r.resources[userID], id)
	return nil
}

func (r *memBookmarkRepo) HasResource(_ context.Context, userID uint, id string) (bool, error) {
	return r.resources[userID][id], nil
}

func (r *memBookmarkRepo) GetMessages(_ context.Context, userID uint) ([]model.ChatMessage, error) {
	return append([]model.ChatMessage{}, r.messages[userID]...), nil
}

func (r *memBookmarkRepo) SaveMessages(_ context.Context, userID uint, messages []model.ChatMessage) error {
	r.messages[userID] = append([]model.ChatMessage{}, messages...)
	return nil
}

type memUserRepo struct {
	users []*model.User
}

func (r *memUserRepo) Create(user *model.User) error {
	user.ID = uint(len(r.users) + 1)
	user.CreatedAt = time.Now()
	r.users = append(r.users, user)
	return nil
}

func (r *memUserRepo) FindByPhone(phone string) (*model.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) FindByID(id uint) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) Update(user *model.User) error { return nil }

func (r *memUserRepo) FindWithPagination(offset, limit int) ([]model.User, int64, error) {
	var out []model.User
	for i := offset; i < len(r.users) && i < offset+limit; i++ {
		out = append(out, *r.users[i])
	}
	return out, int64(len(r.users)), nil
}

type memReviewRepo struct {
	reviews []model.Review
	clock   time.Time
}

func (r *memReviewRepo) Create(_ context.Context, review *model.Review) error {
	r.clock = r.clock.Add(time.Minute)
	review.CreatedAt = r.clock
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *memReviewRepo) FindByID(_ context.Context, id string) (*model.Review, error) {
	for _, rv := range r.reviews {
		if rv.ID == id {
			rv := rv
			return &rv, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memReviewRepo) ListRecent(_ context.Context, offset, limit int) ([]model.Review, int64, error) {
	sorted := append([]model.Review{}, r.reviews...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	var out []model.Review
	for i := offset; i < len(sorted) && i < offset+limit; i++ {
		out = append(out, sorted[i])
	}
	return out, int64(len(sorted)), nil
}

func (r *memReviewRepo) Delete(_ context.Context, id string) error {
	for i, rv := range r.reviews {
		if rv.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memReviewRepo) AverageRating(context.Context) (float64, error) {
	if len(r.reviews) == 0 {
		return 0, nil
	}
	sum := 0
	for _, rv := range r.reviews {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(r.reviews)), nil
}

type memBlacklist struct {
	tokens map[string]time.Duration
}

func (b *memBlacklist) Add(_ context.Context, token string, ttl time.Duration) error {
	b.tokens[token] = ttl
	return nil
}

func (b *memBlacklist) Contains(_ context.Context, token string) (bool, error) {
	_, ok := b.tokens[token]
	return ok, nil
}

type recordingPublisher struct {
	events []events.ChatExchange
	err    error
}

func (p *recordingPublisher) PublishChatExchange(_ context.Context, ev events.ChatExchange) error {
	p.events = append(p.events, ev)
	return p.err
}

type memBundleStore struct {
	objects map[string][]byte
	puts    int
}

func (s *memBundleStore) Exists(_ context.Context, name string) (bool, error) {
	_, ok := s.objects[name]
	return ok, nil
}

func (s *memBundleStore) Put(_ context.Context, name string, data []byte, _ string) error {
	s.puts++
	s.objects[name] = data
	return nil
}

func (s *memBundleStore) PresignedURL(_ context.Context, name string) (string, error) {
	return "https://minio.local/" + name + "?sig=x", nil
}

type fakeLLM struct {
	answer string
	err    error
	seen   []llm.Message
}

func (f *fakeLLM) StreamChatMessages(ctx context.Context, messages []llm.Message, gen *llm.GenerationParams, w llm.MessageWriter) error {
	return errors.New("not used")
}

func (f *fakeLLM) Complete(_ context.Context, messages []llm.Message, _ *llm.GenerationParams) (string, error) {
	f.seen = messages
	return f.answer, f.err
}

type fakeIndex struct {
	indexed  []model.Resource
	searches int
	err      error
	hits     []model.ResourceHit
}

func (f *fakeIndex) IndexResource(_ context.Context, r model.Resource) error {
	f.indexed = append(f.indexed, r)
	return nil
}

func (f *fakeIndex) Search(context.Context, string, string, int) ([]model.ResourceHit, error) {
	f.searches++
	return f.hits, f.err
}
