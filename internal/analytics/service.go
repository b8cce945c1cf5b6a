package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kvanta/lockpulse/internal/domain"
	"github.com/kvanta/lockpulse/internal/logger"
	"github.com/kvanta/lockpulse/internal/repository"
)

// Service defines the interface for analytics operations. Every method is a
// pure function of the entry log at request time; nothing is cached or
// persisted here.
type Service interface {
	GetDashboard(ctx context.Context, req DashboardRequest) (*domain.DashboardPayload, error)
	GetLeaderboards(ctx context.Context, req LeaderboardRequest) (*Leaderboards, error)
	GetUserProfile(ctx context.Context, username string) (*domain.UserProfile, error)
	GetSeasonProgress(ctx context.Context, seasonKey, username string) (*domain.SeasonProgress, error)
	Seasons() []domain.Season
}

// DashboardRequest carries the request parameters consumed by the core.
type DashboardRequest struct {
	Page     int
	Limit    int
	LockID   string
	Username string
	Date     string
	Period   domain.PeriodKind
	Season   string
}

// LeaderboardRequest selects the scope for a standalone leaderboard read.
type LeaderboardRequest struct {
	Period   domain.PeriodKind
	Date     string
	Season   string
	Username string
	LockID   string
	Limit    int
}

// Leaderboards pairs the windowed and lifetime leaderboard sets.
type Leaderboards struct {
	Window domain.TimeWindow     `json:"window"`
	Ranked domain.LeaderboardSet `json:"leaderboards"`
	Global domain.LeaderboardSet `json:"global_leaderboards"`
}

// Options configures the analytics core. PrimaryLockID designates the single
// physical access point authoritative for presence-style metrics.
type Options struct {
	Location         *time.Location
	PrimaryLockID    string
	EarlyHour        int
	LateHour         int
	LeaderboardLimit int
	Now              repository.Clock
}

// service implements the Service interface
type service struct {
	repo repository.Entry
	cat  *SeasonCatalog
	opts Options
}

// NewService creates a new analytics service
func NewService(repo repository.Entry, catalog *SeasonCatalog, opts Options) Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.EarlyHour == 0 {
		opts.EarlyHour = DefaultEarlyHour
	}
	if opts.LateHour == 0 {
		opts.LateHour = DefaultLateHour
	}
	if opts.LeaderboardLimit <= 0 {
		opts.LeaderboardLimit = DefaultLeaderboardLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if catalog == nil {
		catalog = NewSeasonCatalog(nil)
	}
	return &service{repo: repo, cat: catalog, opts: opts}
}

// Seasons returns the injected season catalog.
func (s *service) Seasons() []domain.Season {
	return s.cat.All()
}

// GetDashboard assembles the full analytics payload for one request. All
// sub-aggregates are computed against the same filter and window; any store
// failure aborts the whole request.
func (s *service) GetDashboard(ctx context.Context, req DashboardRequest) (*domain.DashboardPayload, error) {
	log := logger.FromContext(ctx)

	season := s.cat.Find(req.Season)
	now := s.opts.Now()
	window := ResolveWindow(req.Period, req.Date, season, now, s.opts.Location)

	base := domain.EntryFilter{LockID: req.LockID, Username: req.Username}
	filter := base.WithWindow(window)

	page, limit := normalizePage(req.Page, req.Limit)

	entries, err := s.repo.List(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListEntriesFailed, err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountEntriesFailed, err)
	}

	filters, err := s.buildFilterOptions(ctx, req, window, season, now)
	if err != nil {
		return nil, err
	}

	// The user-day pivots everything else is derived from: one under the
	// caller's filter, one scoped to the primary lock so month/season and
	// lifetime boards stay stable regardless of the visible lock filter.
	pivot, err := s.repo.UserDayStats(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUserDayStatsFailed, err)
	}
	primaryPivot, err := s.repo.UserDayStats(ctx, domain.EntryFilter{Username: req.Username, LockID: s.opts.PrimaryLockID}.WithWindow(window))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUserDayStatsFailed, err)
	}

	summary, ranked, err := s.summarizeWindow(ctx, filter, window, total, pivot, primaryPivot)
	if err != nil {
		return nil, err
	}

	global, err := s.globalLeaderboards(ctx)
	if err != nil {
		return nil, err
	}

	charts, err := s.buildCharts(ctx, filter, pivot, primaryPivot)
	if err != nil {
		return nil, err
	}

	payload := &domain.DashboardPayload{
		Entries: entries,
		Pagination: domain.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages(total, limit),
		},
		Filters:            filters,
		DayAggregates:      summary,
		Leaderboards:       ranked,
		GlobalLeaderboards: global,
		Analytics:          charts,
	}

	if req.Username != "" {
		profile, err := s.GetUserProfile(ctx, req.Username)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		payload.UserProfile = profile

		if season != nil {
			progress, err := s.GetSeasonProgress(ctx, season.Key, req.Username)
			if err != nil {
				return nil, err
			}
			payload.UserSeasonProgress = progress
		}
	}

	log.Debug(LogMsgDashboardAssembled,
		"period", window.PeriodKind,
		"start", window.Start,
		"end", window.End,
		"total_entries", total,
		"pivot_rows", len(pivot))
	return payload, nil
}

// GetLeaderboards computes the windowed and lifetime leaderboard sets only.
func (s *service) GetLeaderboards(ctx context.Context, req LeaderboardRequest) (*Leaderboards, error) {
	log := logger.FromContext(ctx)

	season := s.cat.Find(req.Season)
	window := ResolveWindow(req.Period, req.Date, season, s.opts.Now(), s.opts.Location)

	filter := domain.EntryFilter{LockID: req.LockID, Username: req.Username}.WithWindow(window)

	pivot, err := s.repo.UserDayStats(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUserDayStatsFailed, err)
	}
	primaryPivot, err := s.repo.UserDayStats(ctx, domain.EntryFilter{Username: req.Username, LockID: s.opts.PrimaryLockID}.WithWindow(window))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUserDayStatsFailed, err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.opts.LeaderboardLimit
	}

	var ranked domain.LeaderboardSet
	if window.PeriodKind.DistinctDayBased() {
		ranked = s.distinctDayLeaderboards(primaryPivot, limit)
	} else {
		ranked, err = s.rawCountLeaderboards(ctx, filter, pivot, limit)
		if err != nil {
			return nil, err
		}
	}

	global, err := s.globalLeaderboards(ctx)
	if err != nil {
		return nil, err
	}

	log.Debug(LogMsgLeaderboardsComputed, "period", window.PeriodKind, "limit", limit)
	return &Leaderboards{Window: window, Ranked: ranked, Global: global}, nil
}

// GetUserProfile computes the lifetime profile for one username. Unknown
// users yield domain.ErrUserNotFound, which callers surface as null.
func (s *service) GetUserProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return nil, errors.New(ErrMsgUsernameRequired)
	}
	// Pivot usernames come back lowercase; keep lookups consistent.
	username = strings.ToLower(username)

	userFilter := domain.EntryFilter{Username: username}

	span, err := s.repo.TimeSpan(ctx, userFilter)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgTimeSpanFailed, err)
	}
	if span.First == nil {
		return nil, domain.ErrUserNotFound
	}

	primaryStats, err := s.repo.UserDayStats(ctx, userFilter.WithLock(s.opts.PrimaryLockID))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUserDayStatsFailed, err)
	}

	lockCounts, err := s.repo.CountByLock(ctx, userFilter)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountByLockFailed, err)
	}

	// Pivot days are midnight-UTC calendar labels; the trailing window for
	// the activity badge is expressed the same way.
	now := s.opts.Now().In(s.opts.Location)
	recentWindow := trailingDayWindow(now, ActiveMonthWindowDays)

	profile := BuildUserProfile(username, primaryStats, len(lockCounts), span, recentWindow, s.opts.EarlyHour, s.opts.LateHour, s.opts.Location)

	log.Debug(LogMsgProfileComputed, "username", username, "total_visits", profile.TotalVisits)
	return profile, nil
}

// GetSeasonProgress computes points, rank, streaks and level for one user
// within a season window. Unknown season keys resolve to no active season.
func (s *service) GetSeasonProgress(ctx context.Context, seasonKey, username string) (*domain.SeasonProgress, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return nil, errors.New(ErrMsgUsernameRequired)
	}
	username = strings.ToLower(username)

	season := s.cat.Find(seasonKey)
	if season == nil {
		return nil, nil
	}

	pivot, err := s.repo.UserDayStats(ctx, domain.EntryFilter{LockID: s.opts.PrimaryLockID}.WithWindow(season.Window()))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUserDayStatsFailed, err)
	}

	progress := BuildSeasonProgress(*season, username, pivot)

	log.Debug(LogMsgSeasonProgressComputed, "season", season.Key, "username", username, "points", progress.Points, "rank", progress.Rank)
	return progress, nil
}

// summarizeWindow builds the range summary and the windowed leaderboard set.
// Day-period requests rank by raw counts; every other period ranks by
// distinct active days on the primary lock.
func (s *service) summarizeWindow(ctx context.Context, filter domain.EntryFilter, window domain.TimeWindow, total int, pivot, primaryPivot []domain.UserDayStat) (domain.RangeSummary, domain.LeaderboardSet, error) {
	userCounts, err := s.repo.CountByUser(ctx, filter)
	if err != nil {
		return domain.RangeSummary{}, domain.LeaderboardSet{}, fmt.Errorf(ErrMsgCountByUserFailed, err)
	}
	span, err := s.repo.TimeSpan(ctx, filter)
	if err != nil {
		return domain.RangeSummary{}, domain.LeaderboardSet{}, fmt.Errorf(ErrMsgTimeSpanFailed, err)
	}

	if window.PeriodKind.DistinctDayBased() {
		dayCounts := DistinctDayCounts(primaryPivot)
		summary := BuildRangeSummary(total, len(userCounts), dayCounts, nil, nil, span)
		return summary, s.distinctDayLeaderboards(primaryPivot, s.opts.LeaderboardLimit), nil
	}

	lockCounts, err := s.repo.CountByLock(ctx, filter)
	if err != nil {
		return domain.RangeSummary{}, domain.LeaderboardSet{}, fmt.Errorf(ErrMsgCountByLockFailed, err)
	}
	hourCounts, err := s.repo.CountByHour(ctx, filter)
	if err != nil {
		return domain.RangeSummary{}, domain.LeaderboardSet{}, fmt.Errorf(ErrMsgCountByHourFailed, err)
	}

	summary := BuildRangeSummary(total, len(userCounts), userCounts, lockCounts, hourCounts, span)

	ranked := domain.LeaderboardSet{
		TopUsers:          RankTop(userCounts, s.opts.LeaderboardLimit),
		TopLocks:          RankTop(lockCounts, s.opts.LeaderboardLimit),
		TopEarlyBirds:     RankTop(EarlyDayCounts(pivot, s.opts.EarlyHour, s.opts.LateHour, s.opts.Location), s.opts.LeaderboardLimit),
		TopNightOwls:      RankTop(LateDayCounts(pivot, s.opts.EarlyHour, s.opts.LateHour, s.opts.Location), s.opts.LeaderboardLimit),
		TopLongestStreaks: RankTop(LongestStreaks(DaysByUser(pivot)), s.opts.LeaderboardLimit),
	}
	return summary, ranked, nil
}

// rawCountLeaderboards builds the day-period leaderboard set under the
// caller's filter.
func (s *service) rawCountLeaderboards(ctx context.Context, filter domain.EntryFilter, pivot []domain.UserDayStat, limit int) (domain.LeaderboardSet, error) {
	userCounts, err := s.repo.CountByUser(ctx, filter)
	if err != nil {
		return domain.LeaderboardSet{}, fmt.Errorf(ErrMsgCountByUserFailed, err)
	}
	lockCounts, err := s.repo.CountByLock(ctx, filter)
	if err != nil {
		return domain.LeaderboardSet{}, fmt.Errorf(ErrMsgCountByLockFailed, err)
	}

	return domain.LeaderboardSet{
		TopUsers:          RankTop(userCounts, limit),
		TopLocks:          RankTop(lockCounts, limit),
		TopEarlyBirds:     RankTop(EarlyDayCounts(pivot, s.opts.EarlyHour, s.opts.LateHour, s.opts.Location), limit),
		TopNightOwls:      RankTop(LateDayCounts(pivot, s.opts.EarlyHour, s.opts.LateHour, s.opts.Location), limit),
		TopLongestStreaks: RankTop(LongestStreaks(DaysByUser(pivot)), limit),
	}, nil
}

// distinctDayLeaderboards builds the month/season/global leaderboard set
// from a primary-lock pivot. No lock category: these boards are pinned to
// the primary lock by definition.
func (s *service) distinctDayLeaderboards(primaryPivot []domain.UserDayStat, limit int) domain.LeaderboardSet {
	daysByUser := DaysByUser(primaryPivot)
	return domain.LeaderboardSet{
		TopUsers:          RankTop(DistinctDayCounts(primaryPivot), limit),
		TopEarlyBirds:     RankTop(EarlyDayCounts(primaryPivot, s.opts.EarlyHour, s.opts.LateHour, s.opts.Location), limit),
		TopNightOwls:      RankTop(LateDayCounts(primaryPivot, s.opts.EarlyHour, s.opts.LateHour, s.opts.Location), limit),
		TopLongestStreaks: RankTop(LongestStreaks(daysByUser), limit),
	}
}

// globalLeaderboards computes the lifetime, unwindowed set on the primary lock.
func (s *service) globalLeaderboards(ctx context.Context) (domain.LeaderboardSet, error) {
	pivot, err := s.repo.UserDayStats(ctx, domain.EntryFilter{LockID: s.opts.PrimaryLockID})
	if err != nil {
		return domain.LeaderboardSet{}, fmt.Errorf(ErrMsgUserDayStatsFailed, err)
	}
	return s.distinctDayLeaderboards(pivot, s.opts.LeaderboardLimit), nil
}

// buildFilterOptions echoes the filter state back with the data needed for
// filter controls, including previous/next day counts for day navigation.
func (s *service) buildFilterOptions(ctx context.Context, req DashboardRequest, window domain.TimeWindow, season *domain.Season, now time.Time) (domain.FilterOptions, error) {
	locks, err := s.repo.DistinctLockIDs(ctx)
	if err != nil {
		return domain.FilterOptions{}, fmt.Errorf(ErrMsgDistinctLocksFailed, err)
	}

	entryCounts, err := s.repo.CountByLock(ctx, domain.EntryFilter{Username: req.Username}.WithWindow(window))
	if err != nil {
		return domain.FilterOptions{}, fmt.Errorf(ErrMsgCountByLockFailed, err)
	}

	opts := domain.FilterOptions{
		AvailableLockIDs: locks,
		EntryCounts:      entryCounts,
		Date:             window.Start.In(s.opts.Location).Format(DayKeyFormat),
		Period:           window.PeriodKind,
		Seasons:          s.cat.All(),
		Season:           season,
	}

	if window.PeriodKind == domain.PeriodDay {
		ref := window.Start.In(s.opts.Location)
		prev, err := s.dateCount(ctx, req, previousDay(ref))
		if err != nil {
			return domain.FilterOptions{}, err
		}
		next, err := s.dateCount(ctx, req, nextDay(ref))
		if err != nil {
			return domain.FilterOptions{}, err
		}
		opts.PreviousDateCounts = prev
		opts.NextDateCounts = next
	}
	return opts, nil
}

// dateCount counts entries for a single adjacent calendar day under the
// caller's lock/user filter.
func (s *service) dateCount(ctx context.Context, req DashboardRequest, day time.Time) (*domain.DateCount, error) {
	window := domain.TimeWindow{Start: startOfDay(day), End: endOfDay(day), PeriodKind: domain.PeriodDay}
	count, err := s.repo.Count(ctx, domain.EntryFilter{LockID: req.LockID, Username: req.Username}.WithWindow(window))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountEntriesFailed, err)
	}
	return &domain.DateCount{Date: day.Format(DayKeyFormat), Count: count}, nil
}

// buildCharts assembles the chart aggregates from store group-bys and the
// request pivots.
func (s *service) buildCharts(ctx context.Context, filter domain.EntryFilter, pivot, primaryPivot []domain.UserDayStat) (domain.ActivityCharts, error) {
	entriesPerDay, err := s.repo.CountByDay(ctx, filter)
	if err != nil {
		return domain.ActivityCharts{}, fmt.Errorf(ErrMsgCountByDayFailed, err)
	}
	entriesPerHour, err := s.repo.CountByHour(ctx, filter)
	if err != nil {
		return domain.ActivityCharts{}, fmt.Errorf(ErrMsgCountByHourFailed, err)
	}
	dauPerHour, err := s.repo.DistinctUsersByHour(ctx, filter)
	if err != nil {
		return domain.ActivityCharts{}, fmt.Errorf(ErrMsgDistinctUsersHourFailed, err)
	}
	firstMonths, err := s.repo.FirstActiveMonths(ctx, s.opts.PrimaryLockID)
	if err != nil {
		return domain.ActivityCharts{}, fmt.Errorf(ErrMsgFirstActiveMonthsFailed, err)
	}

	return domain.ActivityCharts{
		EntriesPerDay:    entriesPerDay,
		EntriesPerHour:   entriesPerHour,
		DAUPerDay:        DAUPerDay(pivot),
		DAUPerHour:       dauPerHour,
		WAUByWeek:        WAUByWeek(pivot),
		MAUByMonth:       MAUByMonth(pivot),
		RetentionBuckets: RetentionBuckets(DistinctDayCounts(pivot)),
		StreakBuckets:    StreakBuckets(LongestStreaks(DaysByUser(pivot))),
		CohortByMonth:    MonthCohorts(primaryPivot, firstMonths),
	}, nil
}

// normalizePage clamps pagination parameters to sane bounds.
func normalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// totalPages computes the page count for a total/limit pair.
func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// trailingDayWindow expresses the trailing n calendar days (ending today in
// loc-local terms) as midnight-UTC day labels, matching pivot day values.
func trailingDayWindow(now time.Time, n int) domain.TimeWindow {
	end := dayLabel(now)
	start := end.AddDate(0, 0, -(n - 1))
	return domain.TimeWindow{Start: start, End: end, PeriodKind: domain.PeriodLast30}
}

// dayLabel converts a local instant to its calendar-day label (midnight UTC).
func dayLabel(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
