package store_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm/logger"

	"github.com/studyquest/backend/internal/store"
)

type StoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *store.GormStore
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(s.T().Name())
	st, err := store.Open(store.Options{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns: 1,
		LogLevel:     logger.Silent,
	})
	s.Require().NoError(err)
	s.store = st
}

func (s *StoreSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *StoreSuite) createUser(name string) *store.User {
	u := &store.User{Username: name}
	s.Require().NoError(s.store.CreateUser(s.ctx, u))
	return u
}

func (s *StoreSuite) TestCreateUser_CreatesLevelAndLeaderboard() {
	u := s.createUser("ana")
	s.NotZero(u.ID)
	s.False(u.JoinDate.IsZero())

	level, err := s.store.GetLevel(s.ctx, "ana")
	s.Require().NoError(err)
	s.Equal(1, level.CurrentLevel)
	s.Equal(100, level.XPToNext)

	rank, entry, err := s.store.LeaderboardRank(s.ctx, "ana")
	s.Require().NoError(err)
	s.Equal(1, rank)
	s.Equal(0, entry.TotalXP)
}

func (s *StoreSuite) TestCreateUser_DuplicateIsConflict() {
	s.createUser("ana")
	err := s.store.CreateUser(s.ctx, &store.User{Username: "ana"})
	s.ErrorIs(err, store.ErrConflict)
}

func (s *StoreSuite) TestGetUser_NotFound() {
	_, err := s.store.GetUser(s.ctx, "ghost")
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *StoreSuite) TestListProgress_NewestFirst() {
	s.createUser("ana")
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.store.CreateProgress(s.ctx, &store.Progress{
			User:            "ana",
			Date:            base.AddDate(0, 0, i),
			DurationMinutes: 30 + i,
			XPGained:        30 + i,
		}))
	}

	sessions, err := s.store.ListProgress(s.ctx, "ana")
	s.Require().NoError(err)
	s.Require().Len(sessions, 3)
	s.Equal(32, sessions[0].DurationMinutes)
	s.Equal(30, sessions[2].DurationMinutes)
}

func (s *StoreSuite) TestReflections_CRUD() {
	s.createUser("ana")
	r := &store.TextAIReflection{
		User:           "ana",
		Date:           time.Now().UTC(),
		ReflectionText: "Focused session on graphs",
		AIFeedback:     "Nice",
		Summary:        "graphs",
		XPReward:       10,
	}
	s.Require().NoError(s.store.CreateReflection(s.ctx, r))
	s.NotZero(r.ID)

	got, err := s.store.GetReflection(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal("Focused session on graphs", got.ReflectionText)

	list, err := s.store.ListReflections(s.ctx, "ana")
	s.Require().NoError(err)
	s.Len(list, 1)

	s.Require().NoError(s.store.DeleteReflection(s.ctx, r.ID))
	s.ErrorIs(s.store.DeleteReflection(s.ctx, r.ID), store.ErrNotFound)
	_, err = s.store.GetReflection(s.ctx, r.ID)
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *StoreSuite) TestCreditXP_UpdatesUserLevelAndLeaderboard() {
	s.createUser("ana")
	s.createUser("bob")
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		s.Require().NoError(s.store.CreateProgress(s.ctx, &store.Progress{
			User: "ana", Date: day.AddDate(0, 0, i), DurationMinutes: 20, XPGained: 20,
		}))
	}

	level, err := s.store.CreditXP(s.ctx, "ana", 150, day)
	s.Require().NoError(err)
	s.Equal(2, level.CurrentLevel)
	s.Equal(50, level.XPToNext)
	s.Equal(150, level.TotalXP)

	_, err = s.store.CreditXP(s.ctx, "bob", 40, day)
	s.Require().NoError(err)

	u, err := s.store.GetUser(s.ctx, "ana")
	s.Require().NoError(err)
	s.Equal(150, u.TotalXP)

	top, err := s.store.TopLeaderboard(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal("ana", top[0].User)
	s.Equal(2, top[0].CurrentStreak)

	rank, _, err := s.store.LeaderboardRank(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(2, rank)
}

func (s *StoreSuite) TestCreditXP_UnknownUser() {
	_, err := s.store.CreditXP(s.ctx, "ghost", 10, time.Now())
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *StoreSuite) TestCompleteQuest_OnlyOnceAndCredits() {
	s.createUser("ana")
	q := &store.Quest{Name: "Read chapter 3", Description: "Graphs", Difficulty: "easy", XPReward: 130}
	s.Require().NoError(s.store.CreateQuest(s.ctx, q))

	done, level, err := s.store.CompleteQuest(s.ctx, q.ID, "ana", time.Now())
	s.Require().NoError(err)
	s.True(done.Completed)
	s.Equal(130, level.TotalXP)
	s.Equal(2, level.CurrentLevel)

	_, _, err = s.store.CompleteQuest(s.ctx, q.ID, "ana", time.Now())
	s.ErrorIs(err, store.ErrConflict)

	_, _, err = s.store.CompleteQuest(s.ctx, 9999, "ana", time.Now())
	s.ErrorIs(err, store.ErrNotFound)

	u, err := s.store.GetUser(s.ctx, "ana")
	s.Require().NoError(err)
	s.Equal(130, u.TotalXP)
}

func (s *StoreSuite) TestCompleteQuest_FailedCreditLeavesQuestOpen() {
	s.createUser("ana")
	q := &store.Quest{Name: "Read", Description: "d", Difficulty: "easy", XPReward: 30}
	s.Require().NoError(s.store.CreateQuest(s.ctx, q))

	_, _, err := s.store.CompleteQuest(s.ctx, q.ID, "ghost", time.Now())
	s.ErrorIs(err, store.ErrNotFound)

	got, err := s.store.GetQuest(s.ctx, q.ID)
	s.Require().NoError(err)
	s.False(got.Completed)

	// a retry for a real user still succeeds
	_, level, err := s.store.CompleteQuest(s.ctx, q.ID, "ana", time.Now())
	s.Require().NoError(err)
	s.Equal(30, level.TotalXP)
}

func (s *StoreSuite) TestLogProgress_CreditsInSameTransaction() {
	s.createUser("ana")
	p := &store.Progress{User: "ana", Date: time.Now().UTC(), DurationMinutes: 40, XPGained: 40}

	level, err := s.store.LogProgress(s.ctx, p, time.Now())
	s.Require().NoError(err)
	s.NotZero(p.ID)
	s.Equal(40, level.TotalXP)

	_, entry, err := s.store.LeaderboardRank(s.ctx, "ana")
	s.Require().NoError(err)
	s.Equal(40, entry.TotalXP)
	s.Equal(1, entry.CurrentStreak)
}

func (s *StoreSuite) TestLogProgress_UnknownUserWritesNothing() {
	_, err := s.store.LogProgress(s.ctx, &store.Progress{
		User: "ghost", Date: time.Now().UTC(), DurationMinutes: 40, XPGained: 40,
	}, time.Now())
	s.ErrorIs(err, store.ErrNotFound)

	sessions, err := s.store.ListProgress(s.ctx, "ghost")
	s.Require().NoError(err)
	s.Empty(sessions)
}

func (s *StoreSuite) TestListQuests_Filter() {
	ana := "ana"
	s.Require().NoError(s.store.CreateQuest(s.ctx, &store.Quest{Name: "a", Description: "d", Difficulty: "easy", XPReward: 10, IsDaily: true}))
	s.Require().NoError(s.store.CreateQuest(s.ctx, &store.Quest{Name: "b", Description: "d", Difficulty: "hard", XPReward: 50, AssignedTo: &ana}))

	all, err := s.store.ListQuests(s.ctx, store.QuestFilter{})
	s.Require().NoError(err)
	s.Len(all, 2)

	daily, err := s.store.ListQuests(s.ctx, store.QuestFilter{DailyOnly: true})
	s.Require().NoError(err)
	s.Require().Len(daily, 1)
	s.Equal("a", daily[0].Name)

	mine, err := s.store.ListQuests(s.ctx, store.QuestFilter{AssignedTo: "ana"})
	s.Require().NoError(err)
	s.Require().Len(mine, 1)
	s.Equal("b", mine[0].Name)
}

func (s *StoreSuite) TestUpsertAvatar() {
	s.createUser("ana")
	name := "Knight"
	a := &store.Avatar{User: "ana", AvatarName: &name}
	s.Require().NoError(s.store.UpsertAvatar(s.ctx, a))
	s.Equal("default", a.Theme)
	firstID := a.ID

	outfit := "armor"
	b := &store.Avatar{User: "ana", AvatarName: &name, Outfit: &outfit, Theme: "dark"}
	s.Require().NoError(s.store.UpsertAvatar(s.ctx, b))
	s.Equal(firstID, b.ID)
	s.Equal("dark", b.Theme)

	got, err := s.store.GetAvatar(s.ctx, "ana")
	s.Require().NoError(err)
	s.Require().NotNil(got.Outfit)
	s.Equal("armor", *got.Outfit)
}

func (s *StoreSuite) TestBadges() {
	s.Require().NoError(s.store.CreateBadge(s.ctx, &store.Badge{Name: "Scholar", Description: "500 XP", XPRequired: 500}))
	s.Require().NoError(s.store.CreateBadge(s.ctx, &store.Badge{Name: "Rookie", Description: "first steps", XPRequired: 10}))
	s.ErrorIs(s.store.CreateBadge(s.ctx, &store.Badge{Name: "Rookie", Description: "dup", XPRequired: 1}), store.ErrConflict)

	badges, err := s.store.ListBadges(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(badges, 2)
	s.Equal("Rookie", badges[0].Name)
}

func (s *StoreSuite) TestFriends() {
	s.createUser("ana")
	s.createUser("bob")
	s.Require().NoError(s.store.CreateFriend(s.ctx, &store.Friend{User: "ana", FriendUsername: "bob"}))
	s.ErrorIs(s.store.CreateFriend(s.ctx, &store.Friend{User: "ana", FriendUsername: "bob"}), store.ErrConflict)

	friends, err := s.store.ListFriends(s.ctx, "ana")
	s.Require().NoError(err)
	s.Require().Len(friends, 1)
	s.Equal("accepted", friends[0].Status)
}

func (s *StoreSuite) TestSettleBossBattle() {
	s.createUser("ana")
	level, err := s.store.SettleBossBattle(s.ctx, &store.BossBattle{
		User: "ana", Date: time.Now().UTC(), Score: 3, TotalQuestions: 5, XPReward: 60,
		Difficulty: "medium", Status: "completed", Completed: true,
	}, time.Now())
	s.Require().NoError(err)
	s.Equal(60, level.TotalXP)

	battles, err := s.store.ListBossBattles(s.ctx, "ana")
	s.Require().NoError(err)
	s.Require().Len(battles, 1)
	s.Equal(60, battles[0].XPReward)
}

func (s *StoreSuite) TestSettleBossBattle_UnknownUserWritesNothing() {
	_, err := s.store.SettleBossBattle(s.ctx, &store.BossBattle{
		User: "ghost", Date: time.Now().UTC(), Score: 1, TotalQuestions: 5, XPReward: 20,
		Difficulty: "medium", Status: "forfeit", Completed: true,
	}, time.Now())
	s.ErrorIs(err, store.ErrNotFound)

	battles, err := s.store.ListBossBattles(s.ctx, "ghost")
	s.Require().NoError(err)
	s.Empty(battles)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := store.Open(store.Options{Driver: "mysql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}
