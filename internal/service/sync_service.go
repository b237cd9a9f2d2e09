package service

import (
	"context"
	"log/slog"
	"time"

	"octoview/internal/github"
	"octoview/internal/models"
	"octoview/internal/observability"
	"octoview/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// SyncService serves user activity through the persistent store, refreshing
// it from the GitHub API when the stored copy is stale or missing. A refresh
// either fully succeeds or the request fails; a stale copy is never served
// as a fallback.
type SyncService struct {
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
	github    github.Client

	// syncDeadline bounds one refresh (both fetches plus reconciliation).
	// Zero means no deadline beyond the request context.
	syncDeadline time.Duration

	now func() time.Time
}

func NewSyncService(
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	gh github.Client,
	syncDeadline time.Duration,
) *SyncService {
	return &SyncService{
		userRepo:     userRepo,
		eventRepo:    eventRepo,
		github:       gh,
		syncDeadline: syncDeadline,
		now:          time.Now,
	}
}

// GetUserActivity returns the profile and recent push events for a username.
// Fresh profiles are served straight from the store with no GitHub calls.
// Stale or unknown profiles are refreshed first: profile and public events
// are fetched concurrently, reconciled into the store in one transaction,
// and the result is re-read from the store so the response always reflects
// persisted state.
func (s *SyncService) GetUserActivity(ctx context.Context, username string) (*models.User, error) {
	login, err := validateLogin(username)
	if err != nil {
		return nil, err
	}

	start := s.now()
	span, ctx := observability.NewSpan(ctx, "service.GetUserActivity")
	defer span.End()
	span.AddAttributes(attribute.String("github.login", login))

	stored, err := s.userRepo.GetByLogin(ctx, login)
	if err != nil {
		return nil, s.fail(ctx, span, start, login, err)
	}

	if stored != nil && IsFresh(stored.LastRefreshedAt, s.now()) {
		events, err := s.eventRepo.ListRecentByUser(ctx, stored.ID, RecentEventsLimit)
		if err != nil {
			return nil, s.fail(ctx, span, start, login, err)
		}
		stored.Events = events

		span.AddAttributes(attribute.String("sync.result", "fresh"))
		observability.SyncResults.WithLabelValues("fresh").Inc()
		observability.SyncDuration.WithLabelValues("fresh").Observe(s.now().Sub(start).Seconds())
		return stored, nil
	}

	persisted, err := s.refresh(ctx, login)
	if err != nil {
		return nil, s.fail(ctx, span, start, login, err)
	}

	span.AddAttributes(attribute.String("sync.result", "refreshed"))
	observability.SyncResults.WithLabelValues("refreshed").Inc()
	observability.SyncDuration.WithLabelValues("refreshed").Observe(s.now().Sub(start).Seconds())
	return persisted, nil
}

// refresh fetches the profile and public events concurrently, reconciles
// them into the store and re-reads the persisted rows. Both fetches must
// succeed for anything to be written.
func (s *SyncService) refresh(ctx context.Context, login string) (*models.User, error) {
	if s.syncDeadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.syncDeadline)
		defer cancel()
	}

	var (
		ghUser   *github.User
		ghEvents []github.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.github.GetUser(gctx, login)
		if err != nil {
			return err
		}
		ghUser = u
		return nil
	})
	g.Go(func() error {
		evs, err := s.github.ListPublicEvents(gctx, login)
		if err != nil {
			return err
		}
		ghEvents = evs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	user := mapUser(ghUser, login)
	user.LastRefreshedAt = s.now()
	events := filterPushEvents(ghEvents, RecentEventsLimit)

	persisted, err := s.userRepo.Reconcile(ctx, user, events)
	if err != nil {
		return nil, err
	}

	recent, err := s.eventRepo.ListRecentByUser(ctx, persisted.ID, RecentEventsLimit)
	if err != nil {
		return nil, err
	}
	persisted.Events = recent

	return persisted, nil
}

func (s *SyncService) fail(ctx context.Context, span *observability.Span, start time.Time, login string, err error) error {
	span.SetError(err)
	observability.SyncResults.WithLabelValues("error").Inc()
	observability.SyncDuration.WithLabelValues("error").Observe(s.now().Sub(start).Seconds())
	slog.ErrorContext(ctx, "user activity sync failed", "login", login, "err", err)
	return err
}

// mapUser converts a GitHub API user into the persisted model. The canonical
// casing returned by GitHub wins over the casing the caller typed.
func mapUser(u *github.User, login string) *models.User {
	if u.Login != "" {
		login = u.Login
	}
	return &models.User{
		GitHubID:        u.ID,
		Login:           login,
		Name:            u.Name,
		AvatarURL:       u.AvatarURL,
		HTMLURL:         u.HTMLURL,
		Bio:             u.Bio,
		Location:        u.Location,
		Company:         u.Company,
		Blog:            u.Blog,
		TwitterUsername: u.TwitterUsername,
		PublicRepos:     u.PublicRepos,
		PublicGists:     u.PublicGists,
		Followers:       u.Followers,
		Following:       u.Following,
	}
}

// filterPushEvents keeps only push events, up to limit, preserving the
// newest-first order of the upstream feed.
func filterPushEvents(events []github.Event, limit int) []models.Event {
	out := make([]models.Event, 0, limit)
	for _, ev := range events {
		if ev.Type != PushEventType {
			continue
		}
		out = append(out, mapEvent(ev))
		if len(out) == limit {
			break
		}
	}
	return out
}

func mapEvent(ev github.Event) models.Event {
	eventType := ev.Type
	if eventType == "" {
		eventType = models.EventTypeUnknown
	}

	var action *string
	if ev.Payload.Action != "" {
		a := ev.Payload.Action
		action = &a
	}

	return models.Event{
		GitHubID:       ev.ID,
		Type:           eventType,
		RepoID:         ev.Repo.ID,
		RepoName:       ev.Repo.Name,
		RepoURL:        ev.Repo.URL,
		Public:         ev.Public,
		Action:         action,
		CommitCount:    ev.Payload.Size,
		EventCreatedAt: ev.CreatedAt,
	}
}
