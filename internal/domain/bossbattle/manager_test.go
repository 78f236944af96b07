package bossbattle_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/studyquest/backend/internal/domain/bossbattle"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newManager(t *testing.T) (*bossbattle.Manager, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return bossbattle.NewManager(bossbattle.WithClock(clock.Now)), clock
}

func startDefault(t *testing.T, m *bossbattle.Manager, user string, n int) bossbattle.QuestionView {
	t.Helper()
	view, err := m.Start(user, bossbattle.StartOptions{}, bossbattle.StaticQuestions(n))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return view
}

func TestStart_FirstQuestion(t *testing.T) {
	m, _ := newManager(t)
	view := startDefault(t, m, "ana", 5)

	if view.Number != 1 || view.Total != 5 {
		t.Errorf("expected question 1/5, got %d/%d", view.Number, view.Total)
	}
	if view.Lives != 3 {
		t.Errorf("expected 3 lives, got %d", view.Lives)
	}
	if view.TimerRemaining != 180 {
		t.Errorf("expected 180s on the clock, got %d", view.TimerRemaining)
	}
	if view.Question != "What is the time complexity of binary search?" {
		t.Errorf("unexpected first question %q", view.Question)
	}
	if !m.Active("ana") {
		t.Error("expected battle to be active")
	}
}

func TestStart_RejectsSecondBattle(t *testing.T) {
	m, _ := newManager(t)
	startDefault(t, m, "ana", 3)

	_, err := m.Start("ana", bossbattle.StartOptions{}, bossbattle.StaticQuestions(3))
	if !errors.Is(err, bossbattle.ErrActiveBattle) {
		t.Fatalf("expected ErrActiveBattle, got %v", err)
	}
}

func TestStart_NoQuestions(t *testing.T) {
	m, _ := newManager(t)
	if _, err := m.Start("ana", bossbattle.StartOptions{}, nil); !errors.Is(err, bossbattle.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestAnswer_AllCorrectCompletes(t *testing.T) {
	m, _ := newManager(t)
	startDefault(t, m, "ana", 5)

	answers := []int{1, 1, 1, 1}
	for i, choice := range answers {
		out, res, err := m.Answer("ana", choice)
		if err != nil || res != nil {
			t.Fatalf("answer %d: unexpected end %v %v", i, res, err)
		}
		if !out.Correct || out.Feedback != bossbattle.FeedbackCorrect {
			t.Errorf("answer %d: expected correct, got %+v", i, out)
		}
		if out.Next.Number != i+2 {
			t.Errorf("answer %d: expected next question %d, got %d", i, i+2, out.Next.Number)
		}
	}

	_, res, err := m.Answer("ana", 2)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || res.Status != bossbattle.StatusCompleted {
		t.Fatalf("expected completed result, got %+v", res)
	}
	if res.Score != 5 || res.XPReward != 100 || res.LivesRemaining != 3 {
		t.Errorf("unexpected result %+v", res)
	}
	if m.Active("ana") {
		t.Error("battle should be removed after completion")
	}
}

func TestAnswer_ThreeWrongRunsOutOfLives(t *testing.T) {
	m, _ := newManager(t)
	startDefault(t, m, "ana", 5)

	for i := 0; i < 2; i++ {
		out, res, err := m.Answer("ana", 0)
		if err != nil || res != nil {
			t.Fatalf("answer %d ended early: %v %v", i, res, err)
		}
		if out.Correct || out.Feedback != bossbattle.FeedbackWrong {
			t.Errorf("expected wrong answer, got %+v", out)
		}
		if out.Lives != 2-i {
			t.Errorf("expected %d lives, got %d", 2-i, out.Lives)
		}
	}

	_, res, err := m.Answer("ana", 0)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || res.Status != bossbattle.StatusOutOfLives {
		t.Fatalf("expected out_of_lives, got %+v", res)
	}
	if res.Score != 0 || res.XPReward != 0 || res.LivesRemaining != 0 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestQuestion_TimeoutEndsBattle(t *testing.T) {
	m, clock := newManager(t)
	startDefault(t, m, "ana", 5)
	if _, _, err := m.Answer("ana", 1); err != nil {
		t.Fatal(err)
	}

	clock.Advance(181 * time.Second)

	_, res, err := m.Question("ana")
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || res.Status != bossbattle.StatusTimeout {
		t.Fatalf("expected timeout, got %+v", res)
	}
	if res.XPReward != 20 {
		t.Errorf("expected 20 XP for one correct answer, got %d", res.XPReward)
	}

	if _, _, err := m.Question("ana"); !errors.Is(err, bossbattle.ErrNoBattle) {
		t.Errorf("expected ErrNoBattle after timeout, got %v", err)
	}
}

func TestStatus_ReportsProgress(t *testing.T) {
	m, clock := newManager(t)
	startDefault(t, m, "ana", 2)
	clock.Advance(30 * time.Second)

	if _, _, err := m.Answer("ana", 3); err != nil {
		t.Fatal(err)
	}

	p, res, err := m.Status("ana")
	if err != nil || res != nil {
		t.Fatalf("unexpected end: %v %v", res, err)
	}
	if p.QuestionNumber != 2 || p.TotalQuestions != 2 {
		t.Errorf("expected question 2/2, got %d/%d", p.QuestionNumber, p.TotalQuestions)
	}
	if p.Lives != 2 || p.Score != 0 {
		t.Errorf("unexpected progress %+v", p)
	}
	if p.TimerRemaining != 150 {
		t.Errorf("expected 150s remaining, got %d", p.TimerRemaining)
	}
}

func TestStatus_TimeoutEndsBattle(t *testing.T) {
	m, clock := newManager(t)
	if _, err := m.Start("ana", bossbattle.StartOptions{TimeLimit: 10 * time.Second}, bossbattle.StaticQuestions(5)); err != nil {
		t.Fatal(err)
	}
	clock.Advance(10 * time.Second)

	_, res, err := m.Status("ana")
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || res.Status != bossbattle.StatusTimeout {
		t.Fatalf("expected timeout, got %+v", res)
	}
}

func TestForfeit(t *testing.T) {
	m, _ := newManager(t)
	if _, err := m.Forfeit("ana"); !errors.Is(err, bossbattle.ErrNoBattle) {
		t.Fatalf("expected ErrNoBattle, got %v", err)
	}

	startDefault(t, m, "ana", 5)
	res, err := m.Forfeit("ana")
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != bossbattle.StatusForfeit || res.TotalQuestions != 5 {
		t.Errorf("unexpected result %+v", res)
	}
	if m.Active("ana") {
		t.Error("battle should be removed after forfeit")
	}
}

func TestManager_CustomLives(t *testing.T) {
	m := bossbattle.NewManager(bossbattle.WithLives(1))
	if _, err := m.Start("ana", bossbattle.StartOptions{}, bossbattle.StaticQuestions(5)); err != nil {
		t.Fatal(err)
	}
	_, res, err := m.Answer("ana", 0)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || res.Status != bossbattle.StatusOutOfLives {
		t.Fatalf("expected out_of_lives after a single miss, got %+v", res)
	}
}

func TestManager_ConcurrentAnswers(t *testing.T) {
	m, _ := newManager(t)
	startDefault(t, m, "ana", 5)

	var wg sync.WaitGroup
	var mu sync.Mutex
	ended := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, res, _ := m.Answer("ana", 1)
			if res != nil {
				mu.Lock()
				ended++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if ended != 1 {
		t.Errorf("expected exactly one terminal result, got %d", ended)
	}
}

func TestStaticQuestions_Copy(t *testing.T) {
	qs := bossbattle.StaticQuestions(10)
	if len(qs) != bossbattle.BankSize() {
		t.Fatalf("expected bank size %d, got %d", bossbattle.BankSize(), len(qs))
	}
	qs[0].Choices[0] = "mutated"
	if bossbattle.StaticQuestions(1)[0].Choices[0] == "mutated" {
		t.Error("StaticQuestions must not expose the shared bank")
	}
	if qs[4].AnswerIdx != 2 {
		t.Errorf("expected 404 question answer index 2, got %d", qs[4].AnswerIdx)
	}
}
