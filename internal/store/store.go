// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sidequest-dev/sidequest/internal/models"
)

// Sentinel errors surfaced to the CRUD layer. The HTTP handlers map these
// onto the API error taxonomy (NOT_FOUND, CONFLICT).
var (
	// ErrUserNotFound indicates an unknown user ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrQuestNotFound indicates an unknown quest ID.
	ErrQuestNotFound = errors.New("quest not found")

	// ErrNameTaken indicates the display name is already registered
	// (comparison is case-insensitive).
	ErrNameTaken = errors.New("display name already taken")

	// ErrQuestFull indicates a join attempt on a quest at capacity.
	ErrQuestFull = errors.New("quest is full")

	// ErrNotParticipant indicates a completion attempt by a user who never
	// joined the quest.
	ErrNotParticipant = errors.New("user is not a participant")
)

// EventSink receives every event appended to the log, after the owning
// mutation has committed. Used to feed the WebSocket hub.
type EventSink func(models.Event)

// Store owns the process-wide entity state and the event log.
// It is safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	users      map[string]*models.User
	quests     map[string]*models.Quest
	questOrder []string
	events     []models.Event

	logger zerolog.Logger
	now    func() time.Time
	sink   EventSink
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithEventSink registers a sink invoked for every appended event, outside
// the store lock.
func WithEventSink(sink EventSink) Option {
	return func(s *Store) { s.sink = sink }
}

// New creates an empty store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(logger zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		users:  make(map[string]*models.User),
		quests: make(map[string]*models.Quest),
		logger: logger.With().Str("component", "store").Logger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUserParams carries the validated fields for a new user.
type CreateUserParams struct {
	DisplayName   string
	PasswordHash  []byte
	DefaultEnergy models.Energy
	SocialStyle   models.SocialStyle
	Mode          models.Mode
	Interests     map[string]struct{}
	Area          string
}

// CreateUser registers a new user and appends a user_created event.
// Returns ErrNameTaken if the display name is already registered.
func (s *Store) CreateUser(p CreateUserParams) (models.User, error) {
	s.mu.Lock()

	for _, u := range s.users {
		if strings.EqualFold(u.DisplayName, p.DisplayName) {
			s.mu.Unlock()
			return models.User{}, ErrNameTaken
		}
	}

	now := s.now()
	u := &models.User{
		ID:            uuid.New().String(),
		DisplayName:   p.DisplayName,
		PasswordHash:  p.PasswordHash,
		DefaultEnergy: p.DefaultEnergy,
		SocialStyle:   p.SocialStyle,
		Mode:          p.Mode,
		Interests:     p.Interests,
		Area:          p.Area,
		LastEnergy:    p.DefaultEnergy,
		CreatedAt:     now,
	}
	if u.Interests == nil {
		u.Interests = make(map[string]struct{})
	}
	s.users[u.ID] = u

	ev := s.appendLocked(models.EventUserCreated, models.EventPayload{
		Area:   u.Area,
		UserID: u.ID,
	})
	out := cloneUser(u)
	s.mu.Unlock()

	s.publish(ev)
	s.logger.Info().Str("user_id", u.ID).Str("area", u.Area).Msg("user created")
	return out, nil
}

// GetUser returns a snapshot of the user with the given ID.
func (s *Store) GetUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	return cloneUser(u), true
}

// FindUserByName returns the user with the given display name,
// case-insensitively.
func (s *Store) FindUserByName(name string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.DisplayName, name) {
			return cloneUser(u), true
		}
	}
	return models.User{}, false
}

// Users returns a snapshot of all users. Order is unspecified.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, cloneUser(u))
	}
	return out
}

// CheckIn records a user's self-reported energy and appends a user_checkin
// event. The check-in energy drives recommendation scoring until the next
// check-in.
func (s *Store) CheckIn(userID string, energy models.Energy) (models.User, error) {
	s.mu.Lock()

	u, ok := s.users[userID]
	if !ok {
		s.mu.Unlock()
		return models.User{}, ErrUserNotFound
	}

	now := s.now()
	u.LastEnergy = energy
	u.CheckinAt = &now

	ev := s.appendLocked(models.EventUserCheckin, models.EventPayload{
		Area:   u.Area,
		UserID: u.ID,
	})
	out := cloneUser(u)
	s.mu.Unlock()

	s.publish(ev)
	return out, nil
}

// CreateQuestParams carries the validated fields for a new quest.
type CreateQuestParams struct {
	OrganizerID  string
	Title        string
	Description  string
	Area         string
	SocialStyle  models.SocialStyle
	Mode         models.Mode
	Tags         map[string]struct{}
	StartTime    time.Time
	DurationMins int
	Capacity     int
}

// CreateQuest registers a new quest and appends a quest_created event.
// The organizer must exist; the organizer does not auto-join.
func (s *Store) CreateQuest(p CreateQuestParams) (models.Quest, error) {
	s.mu.Lock()

	if _, ok := s.users[p.OrganizerID]; !ok {
		s.mu.Unlock()
		return models.Quest{}, ErrUserNotFound
	}

	q := &models.Quest{
		ID:           uuid.New().String(),
		OrganizerID:  p.OrganizerID,
		Title:        p.Title,
		Description:  p.Description,
		Area:         p.Area,
		SocialStyle:  p.SocialStyle,
		Mode:         p.Mode,
		Tags:         p.Tags,
		StartTime:    p.StartTime,
		DurationMins: p.DurationMins,
		Capacity:     p.Capacity,
		CreatedAt:    s.now(),
		Participants: make(map[string]struct{}),
		Completions:  make(map[string]int),
	}
	if q.Tags == nil {
		q.Tags = make(map[string]struct{})
	}
	s.quests[q.ID] = q
	s.questOrder = append(s.questOrder, q.ID)

	ev := s.appendLocked(models.EventQuestCreated, models.EventPayload{
		Area:    q.Area,
		UserID:  q.OrganizerID,
		QuestID: q.ID,
	})
	out := cloneQuest(q)
	s.mu.Unlock()

	s.publish(ev)
	s.logger.Info().Str("quest_id", q.ID).Str("area", q.Area).Msg("quest created")
	return out, nil
}

// GetQuest returns a snapshot of the quest with the given ID.
func (s *Store) GetQuest(id string) (models.Quest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.quests[id]
	if !ok {
		return models.Quest{}, false
	}
	return cloneQuest(q), true
}

// Quest implements the analytics data source lookup. Identical to GetQuest;
// named to satisfy the analytics.DataSource interface.
func (s *Store) Quest(id string) (models.Quest, bool) {
	return s.GetQuest(id)
}

// ListQuests returns all quests in insertion order. Insertion order is the
// stable iteration order the recommendation engine relies on for
// deterministic tie-breaking.
func (s *Store) ListQuests() []models.Quest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Quest, 0, len(s.questOrder))
	for _, id := range s.questOrder {
		out = append(out, cloneQuest(s.quests[id]))
	}
	return out
}

// QuestsJoinedBy returns the quests the user participates in, sorted by
// start time.
func (s *Store) QuestsJoinedBy(userID string) []models.Quest {
	s.mu.RLock()

	out := make([]models.Quest, 0)
	for _, id := range s.questOrder {
		q := s.quests[id]
		if q.HasParticipant(userID) {
			out = append(out, cloneQuest(q))
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// JoinQuest adds the user to the quest's participant set.
//
// The operation is idempotent: a join by an existing participant reports
// joined=false with no error, no event, and no participant-count change.
// On a first join it appends a quest_joined event, sets the user's
// FirstJoinAt if unset, and always bumps LastJoinAt.
func (s *Store) JoinQuest(questID, userID string) (joined bool, err error) {
	s.mu.Lock()

	q, ok := s.quests[questID]
	if !ok {
		s.mu.Unlock()
		return false, ErrQuestNotFound
	}
	u, ok := s.users[userID]
	if !ok {
		s.mu.Unlock()
		return false, ErrUserNotFound
	}

	if q.HasParticipant(userID) {
		s.mu.Unlock()
		return false, nil
	}
	if !q.CapacityAvailable() {
		s.mu.Unlock()
		return false, ErrQuestFull
	}

	q.Participants[userID] = struct{}{}

	now := s.now()
	if u.FirstJoinAt == nil {
		first := now
		u.FirstJoinAt = &first
	}
	last := now
	u.LastJoinAt = &last

	ev := s.appendLocked(models.EventQuestJoined, models.EventPayload{
		Area:    q.Area,
		UserID:  userID,
		QuestID: questID,
	})
	s.mu.Unlock()

	s.publish(ev)
	s.logger.Debug().Str("quest_id", questID).Str("user_id", userID).Msg("quest joined")
	return true, nil
}

// CompleteQuest records a participant's post-hoc connectedness rating and
// appends a quest_completed event carrying it. Membership is checked at
// submit time only. A repeat submission overwrites the stored rating without
// appending a second event.
func (s *Store) CompleteQuest(questID, userID string, rating int) error {
	s.mu.Lock()

	q, ok := s.quests[questID]
	if !ok {
		s.mu.Unlock()
		return ErrQuestNotFound
	}
	if !q.HasParticipant(userID) {
		s.mu.Unlock()
		return ErrNotParticipant
	}

	_, rated := q.Completions[userID]
	q.Completions[userID] = rating

	var ev models.Event
	if !rated {
		ev = s.appendLocked(models.EventQuestCompleted, models.EventPayload{
			Area:    q.Area,
			UserID:  userID,
			QuestID: questID,
			Rating:  rating,
		})
	}
	s.mu.Unlock()

	if !rated {
		s.publish(ev)
	}
	return nil
}

// RecordRecommendationsViewed appends a recommendations_viewed event. Called
// by the CRUD layer after a successful recommendation request.
func (s *Store) RecordRecommendationsViewed(userID, area string) {
	s.mu.Lock()
	ev := s.appendLocked(models.EventRecommendationsViewed, models.EventPayload{
		Area:   area,
		UserID: userID,
	})
	s.mu.Unlock()

	s.publish(ev)
}

// Events returns a copy of the full event log in insertion order.
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// appendLocked appends an event to the log. Must be called with mu held.
func (s *Store) appendLocked(kind models.EventKind, payload models.EventPayload) models.Event {
	ev := models.Event{
		Kind:      kind,
		Timestamp: s.now(),
		Payload:   payload,
	}
	s.events = append(s.events, ev)
	return ev
}

// publish forwards an event to the configured sink. Called after the store
// lock is released so a slow sink cannot stall mutations.
func (s *Store) publish(ev models.Event) {
	if s.sink != nil {
		s.sink(ev)
	}
}

// cloneUser returns a defensive copy with its own interest set.
func cloneUser(u *models.User) models.User {
	out := *u
	out.Interests = cloneSet(u.Interests)
	return out
}

// cloneQuest returns a defensive copy with its own tag, participant and
// completion collections.
func cloneQuest(q *models.Quest) models.Quest {
	out := *q
	out.Tags = cloneSet(q.Tags)
	out.Participants = cloneSet(q.Participants)
	out.Completions = make(map[string]int, len(q.Completions))
	for k, v := range q.Completions {
		out.Completions[k] = v
	}
	return out
}

func cloneSet(in map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}
