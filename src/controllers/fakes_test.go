package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/findit-app/findit-backend/src/lib"
	"github.com/findit-app/findit-backend/src/matching"
	"github.com/findit-app/findit-backend/src/models"
	"github.com/findit-app/findit-backend/src/store"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type fakeUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[primitive.ObjectID]*models.User{}}
}

func (f *fakeUsers) Insert(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ApplyDefaults(testNow)
	if err := models.Validate(u); err != nil {
		return err
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return store.ErrEmailTaken
		}
	}
	stored := *u
	f.users[u.Id] = &stored
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) FindByResetToken(_ context.Context, token string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ResetPasswordToken == token && u.ResetPasswordExpires != nil && u.ResetPasswordExpires.After(testNow) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) SetResetToken(_ context.Context, id primitive.ObjectID, token string, expires time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.ResetPasswordToken = token
	u.ResetPasswordExpires = &expires
	return nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id primitive.ObjectID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Password = hash
	u.ResetPasswordToken = ""
	u.ResetPasswordExpires = nil
	return nil
}

type fakeMessages struct {
	mu       sync.Mutex
	messages []models.Match
}

func (f *fakeMessages) Insert(_ context.Context, m *models.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m.ApplyDefaults(testNow.Add(time.Duration(len(f.messages)) * time.Second))
	if err := models.Validate(m); err != nil {
		return err
	}
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeMessages) Conversation(_ context.Context, a, b primitive.ObjectID) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Match
	for _, m := range f.messages {
		if (m.SenderId == a && m.ReceiverId == b) || (m.SenderId == b && m.ReceiverId == a) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeMessages) MarkRead(_ context.Context, sender, receiver primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for i := range f.messages {
		m := &f.messages[i]
		if m.SenderId == sender && m.ReceiverId == receiver && !m.Read {
			m.Read = true
			n++
		}
	}
	return n, nil
}

func (f *fakeMessages) CountUnread(_ context.Context, receiver primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, m := range f.messages {
		if m.ReceiverId == receiver && !m.Read {
			n++
		}
	}
	return n, nil
}

type fakeNotifications struct {
	mu    sync.Mutex
	items []models.Notification
}

func (f *fakeNotifications) Insert(_ context.Context, n *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n.ApplyDefaults(testNow.Add(time.Duration(len(f.items)) * time.Second))
	if err := models.Validate(n); err != nil {
		return err
	}
	f.items = append(f.items, *n)
	return nil
}

func (f *fakeNotifications) ListForUser(_ context.Context, userID string, read *bool) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.items {
		if n.UserId != userID || (read != nil && n.Read != *read) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeNotifications) CountUnread(_ context.Context, userID string) (int64, error) {
	unread := false
	list, _ := f.ListForUser(context.Background(), userID, &unread)
	return int64(len(list)), nil
}

func (f *fakeNotifications) MarkRead(_ context.Context, id primitive.ObjectID, userID string) (*models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].Id == id && f.items[i].UserId == userID {
			f.items[i].Read = true
			cp := f.items[i]
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeNotifications) MarkAllRead(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for i := range f.items {
		if f.items[i].UserId == userID && !f.items[i].Read {
			f.items[i].Read = true
			n++
		}
	}
	return n, nil
}

func (f *fakeNotifications) Delete(_ context.Context, id primitive.ObjectID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].Id == id && f.items[i].UserId == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeItems struct {
	mu    sync.Mutex
	lost  []models.LostItem
	found []models.FoundItem
}

func (f *fakeItems) InsertLost(_ context.Context, item *models.LostItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ApplyDefaults(testNow)
	if err := models.Validate(item); err != nil {
		return err
	}
	f.lost = append(f.lost, *item)
	return nil
}

func (f *fakeItems) InsertFound(_ context.Context, item *models.FoundItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ApplyDefaults(testNow)
	if err := models.Validate(item); err != nil {
		return err
	}
	f.found = append(f.found, *item)
	return nil
}

func (f *fakeItems) FindLost(_ context.Context, id primitive.ObjectID) (*models.LostItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.lost {
		if item.Id == id {
			return &item, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeItems) FindFound(_ context.Context, id primitive.ObjectID) (*models.FoundItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.found {
		if item.Id == id {
			return &item, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeItems) ReportedBy(_ context.Context, user primitive.ObjectID) ([]models.LostItem, []models.FoundItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var lost []models.LostItem
	var found []models.FoundItem
	for _, item := range f.lost {
		if item.ReportedBy == user {
			lost = append(lost, item)
		}
	}
	for _, item := range f.found {
		if item.ReportedBy == user {
			found = append(found, item)
		}
	}
	return lost, found, nil
}

type fakeMatcher struct {
	reply       json.RawMessage
	description string
	itemType    matching.ItemType
	calls       int
}

func (f *fakeMatcher) FindPotentialMatches(description string, itemType matching.ItemType) json.RawMessage {
	f.calls++
	f.description = description
	f.itemType = itemType
	return f.reply
}

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, body})
	return nil
}

// fixture wires every controller to in-memory repositories.
type fixture struct {
	app           *fiber.App
	users         *fakeUsers
	messages      *fakeMessages
	notifications *fakeNotifications
	items         *fakeItems
	matcher       *fakeMatcher
	mailer        *fakeMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		app:           fiber.New(fiber.Config{ErrorHandler: lib.ErrorHandler}),
		users:         newFakeUsers(),
		messages:      &fakeMessages{},
		notifications: &fakeNotifications{},
		items:         &fakeItems{},
		matcher:       &fakeMatcher{reply: json.RawMessage(`[]`)},
		mailer:        &fakeMailer{},
	}
}

func (f *fixture) addUser(t *testing.T, name, email string) (models.User, string) {
	t.Helper()
	u := models.User{Name: name, Email: email, Mobile: "0300-1234567", Password: "hash"}
	require.NoError(t, f.users.Insert(context.Background(), &u))
	token, err := lib.GenerateJWT(u.Id.Hex(), testSecret, time.Now())
	require.NoError(t, err)
	return u, token
}

type response struct {
	status int
	body   []byte
	header http.Header
}

func (r response) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.body, v), string(r.body))
}

func (r response) message(t *testing.T) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	r.decode(t, &body)
	return body.Message
}

func (f *fixture) do(t *testing.T, method, path, token, body string) response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return f.send(t, req)
}

func (f *fixture) send(t *testing.T, req *http.Request) response {
	t.Helper()
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return response{status: resp.StatusCode, body: raw, header: resp.Header}
}
