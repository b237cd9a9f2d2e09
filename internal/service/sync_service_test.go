package service

import (
	"context"
	"testing"
	"time"

	"octoview/internal/github"
	"octoview/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	getByLoginFn func(context.Context, string) (*models.User, error)
	reconcileFn  func(context.Context, *models.User, []models.Event) (*models.User, error)

	reconcileCalls int
}

func (s *userRepoStub) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	return s.getByLoginFn(ctx, login)
}

func (s *userRepoStub) Reconcile(ctx context.Context, user *models.User, events []models.Event) (*models.User, error) {
	s.reconcileCalls++
	return s.reconcileFn(ctx, user, events)
}

type eventRepoStub struct {
	listRecentByUserFn func(context.Context, uint, int) ([]models.Event, error)
}

func (s *eventRepoStub) ListRecentByUser(ctx context.Context, userID uint, limit int) ([]models.Event, error) {
	return s.listRecentByUserFn(ctx, userID, limit)
}

type githubStub struct {
	getUserFn          func(context.Context, string) (*github.User, error)
	listPublicEventsFn func(context.Context, string) ([]github.Event, error)
	listGistsFn        func(context.Context, string) ([]github.Gist, error)

	getUserCalls    int
	listEventsCalls int
	listGistsCalls  int
}

func (s *githubStub) GetUser(ctx context.Context, login string) (*github.User, error) {
	s.getUserCalls++
	return s.getUserFn(ctx, login)
}

func (s *githubStub) ListPublicEvents(ctx context.Context, login string) ([]github.Event, error) {
	s.listEventsCalls++
	return s.listPublicEventsFn(ctx, login)
}

func (s *githubStub) ListGists(ctx context.Context, login string) ([]github.Gist, error) {
	s.listGistsCalls++
	return s.listGistsFn(ctx, login)
}

func ghUserFixture() *github.User {
	name := "The Octocat"
	return &github.User{
		ID:          583231,
		Login:       "Octocat",
		Name:        &name,
		PublicRepos: 8,
		Followers:   1000,
	}
}

func ghPushEvent(id string, createdAt time.Time) github.Event {
	return github.Event{
		ID:        id,
		Type:      "PushEvent",
		Repo:      github.EventRepo{ID: 42, Name: "octocat/hello-world", URL: "https://api.github.com/repos/octocat/hello-world"},
		Payload:   github.EventPayload{Size: 2},
		Public:    true,
		CreatedAt: createdAt,
	}
}

func newTestSyncService(users *userRepoStub, events *eventRepoStub, gh *githubStub, now time.Time) *SyncService {
	svc := NewSyncService(users, events, gh, 0)
	svc.now = func() time.Time { return now }
	return svc
}

func TestSyncService_GetUserActivity_FreshServesFromStore(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stored := &models.User{ID: 7, GitHubID: 583231, Login: "Octocat", LastRefreshedAt: now.Add(-30 * time.Minute)}
	recent := []models.Event{{GitHubID: "1001", Type: "PushEvent"}}

	users := &userRepoStub{
		getByLoginFn: func(_ context.Context, login string) (*models.User, error) {
			assert.Equal(t, "octocat", login)
			return stored, nil
		},
	}
	events := &eventRepoStub{
		listRecentByUserFn: func(_ context.Context, userID uint, limit int) ([]models.Event, error) {
			assert.Equal(t, uint(7), userID)
			assert.Equal(t, RecentEventsLimit, limit)
			return recent, nil
		},
	}
	gh := &githubStub{}

	svc := newTestSyncService(users, events, gh, now)
	user, err := svc.GetUserActivity(context.Background(), "octocat")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Octocat", user.Login)
	assert.Equal(t, recent, user.Events)

	// The whole point of freshness: no upstream traffic.
	assert.Zero(t, gh.getUserCalls)
	assert.Zero(t, gh.listEventsCalls)
	assert.Zero(t, users.reconcileCalls)
}

func TestSyncService_GetUserActivity_StaleTriggersRefresh(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stale := &models.User{ID: 7, GitHubID: 583231, Login: "octocat", LastRefreshedAt: now.Add(-2 * time.Hour)}

	var reconciled *models.User
	var reconciledEvents []models.Event

	users := &userRepoStub{
		getByLoginFn: func(context.Context, string) (*models.User, error) { return stale, nil },
		reconcileFn: func(_ context.Context, user *models.User, events []models.Event) (*models.User, error) {
			reconciled = user
			reconciledEvents = events
			persisted := *user
			persisted.ID = 7
			return &persisted, nil
		},
	}
	events := &eventRepoStub{
		listRecentByUserFn: func(_ context.Context, userID uint, _ int) ([]models.Event, error) {
			assert.Equal(t, uint(7), userID)
			return []models.Event{{GitHubID: "5001"}}, nil
		},
	}
	gh := &githubStub{
		getUserFn: func(context.Context, string) (*github.User, error) { return ghUserFixture(), nil },
		listPublicEventsFn: func(context.Context, string) ([]github.Event, error) {
			return []github.Event{
				ghPushEvent("5001", now.Add(-time.Minute)),
				{ID: "5002", Type: "WatchEvent", CreatedAt: now.Add(-2 * time.Minute)},
				ghPushEvent("5003", now.Add(-3*time.Minute)),
			}, nil
		},
	}

	svc := newTestSyncService(users, events, gh, now)
	user, err := svc.GetUserActivity(context.Background(), "octocat")
	require.NoError(t, err)

	require.NotNil(t, reconciled)
	assert.Equal(t, "Octocat", reconciled.Login)
	assert.Equal(t, now, reconciled.LastRefreshedAt)

	// Non-push events are dropped, feed order kept.
	require.Len(t, reconciledEvents, 2)
	assert.Equal(t, "5001", reconciledEvents[0].GitHubID)
	assert.Equal(t, "5003", reconciledEvents[1].GitHubID)

	// The response comes from the store re-read, not the raw fetch.
	require.Len(t, user.Events, 1)
	assert.Equal(t, "5001", user.Events[0].GitHubID)
}

func TestSyncService_GetUserActivity_FirstSync(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	users := &userRepoStub{
		getByLoginFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		reconcileFn: func(_ context.Context, user *models.User, _ []models.Event) (*models.User, error) {
			persisted := *user
			persisted.ID = 1
			return &persisted, nil
		},
	}
	events := &eventRepoStub{
		listRecentByUserFn: func(context.Context, uint, int) ([]models.Event, error) { return nil, nil },
	}
	gh := &githubStub{
		getUserFn:          func(context.Context, string) (*github.User, error) { return ghUserFixture(), nil },
		listPublicEventsFn: func(context.Context, string) ([]github.Event, error) { return nil, nil },
	}

	svc := newTestSyncService(users, events, gh, now)
	user, err := svc.GetUserActivity(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, int64(583231), user.GitHubID)
	assert.Equal(t, 1, users.reconcileCalls)
	assert.Equal(t, 1, gh.getUserCalls)
	assert.Equal(t, 1, gh.listEventsCalls)
}

func TestSyncService_GetUserActivity_UnknownUpstreamUser(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	users := &userRepoStub{
		getByLoginFn: func(context.Context, string) (*models.User, error) { return nil, nil },
	}
	events := &eventRepoStub{}
	gh := &githubStub{
		getUserFn: func(context.Context, string) (*github.User, error) {
			return nil, models.NewNotFoundError("GitHub user", "ghost")
		},
		listPublicEventsFn: func(context.Context, string) ([]github.Event, error) { return nil, nil },
	}

	svc := newTestSyncService(users, events, gh, now)
	user, err := svc.GetUserActivity(context.Background(), "ghost")
	assert.Nil(t, user)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrCodeNotFound, appErr.Code)

	// Nothing is written when the user does not exist upstream.
	assert.Zero(t, users.reconcileCalls)
}

func TestSyncService_GetUserActivity_EventFetchFailureFailsSync(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	users := &userRepoStub{
		getByLoginFn: func(context.Context, string) (*models.User, error) { return nil, nil },
	}
	events := &eventRepoStub{}
	gh := &githubStub{
		getUserFn: func(context.Context, string) (*github.User, error) { return ghUserFixture(), nil },
		listPublicEventsFn: func(context.Context, string) ([]github.Event, error) {
			return nil, models.NewUpstreamError(assert.AnError)
		},
	}

	svc := newTestSyncService(users, events, gh, now)
	user, err := svc.GetUserActivity(context.Background(), "octocat")
	assert.Nil(t, user)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrCodeUpstream, appErr.Code)
	assert.Zero(t, users.reconcileCalls)
}

func TestSyncService_GetUserActivity_InvalidUsername(t *testing.T) {
	users := &userRepoStub{
		getByLoginFn: func(context.Context, string) (*models.User, error) {
			t.Fatal("store must not be consulted for an invalid username")
			return nil, nil
		},
	}
	events := &eventRepoStub{}
	gh := &githubStub{}

	svc := newTestSyncService(users, events, gh, time.Now())

	for _, username := range []string{"", "-octocat", "mona--lisa", "octo cat"} {
		user, err := svc.GetUserActivity(context.Background(), username)
		assert.Nil(t, user, "%q", username)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr, "%q", username)
		assert.Equal(t, models.ErrCodeValidation, appErr.Code)
	}
	assert.Zero(t, gh.getUserCalls)
	assert.Zero(t, gh.listEventsCalls)
}

func TestFilterPushEvents_CapsAtLimit(t *testing.T) {
	now := time.Now()
	feed := make([]github.Event, 0, 15)
	for i := 0; i < 15; i++ {
		feed = append(feed, ghPushEvent(string(rune('a'+i)), now.Add(-time.Duration(i)*time.Minute)))
	}

	out := filterPushEvents(feed, RecentEventsLimit)
	require.Len(t, out, RecentEventsLimit)
	assert.Equal(t, "a", out[0].GitHubID)
	assert.Equal(t, "j", out[9].GitHubID)
}

func TestMapEvent_UnknownType(t *testing.T) {
	ev := mapEvent(github.Event{ID: "1", Type: ""})
	assert.Equal(t, models.EventTypeUnknown, ev.Type)
}
