package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/studyquest/backend/internal/domain/bossbattle"
	"github.com/studyquest/backend/internal/service"
	"github.com/studyquest/backend/internal/store"
)

const (
	msgNoBattle     = "No active boss battle. Start one first."
	msgActiveBattle = "An active boss battle already exists."
)

var difficulties = map[string]bool{"easy": true, "medium": true, "hard": true}

// ── Request / Response types ────────────────────────────────────────────────

type BattleQuestion struct {
	Number   int      `json:"number" example:"1"`
	Total    int      `json:"total" example:"5"`
	Question string   `json:"question" example:"Which HTTP method is idempotent?"`
	Choices  []string `json:"choices"`
}

type StartBattleResponse struct {
	Message         string         `json:"message" example:"Boss battle started."`
	User            string         `json:"user"`
	TimerSeconds    int            `json:"timer_seconds" example:"180"`
	Lives           int            `json:"lives" example:"3"`
	CurrentQuestion BattleQuestion `json:"current_question"`
}

type CurrentQuestionResponse struct {
	Question       string   `json:"question"`
	Choices        []string `json:"choices"`
	Number         int      `json:"number"`
	Total          int      `json:"total"`
	Lives          int      `json:"lives"`
	TimerRemaining int      `json:"timer_remaining"`
	Score          int      `json:"score"`
}

type AnswerResponse struct {
	Correct        bool           `json:"correct"`
	Feedback       string         `json:"feedback" example:"Correct! +20 XP"`
	Lives          int            `json:"lives"`
	Score          int            `json:"score"`
	TimerRemaining int            `json:"timer_remaining"`
	NextQuestion   BattleQuestion `json:"next_question"`
}

type BattleStatusResponse struct {
	Lives          int  `json:"lives"`
	Score          int  `json:"score"`
	QuestionNumber int  `json:"question_number"`
	TotalQuestions int  `json:"total_questions"`
	TimerRemaining int  `json:"timer_remaining"`
	Completed      bool `json:"completed"`
}

// BattleEndResponse is returned by any call that ends the battle.
type BattleEndResponse struct {
	Status         string `json:"status" example:"completed"`
	Score          int    `json:"score" example:"4"`
	XPReward       int    `json:"xp_reward" example:"80"`
	TotalQuestions int    `json:"total_questions" example:"5"`
	LivesRemaining int    `json:"lives_remaining" example:"2"`
	Ended          bool   `json:"ended" example:"true"`
}

type BossInfoResponse struct {
	Message string            `json:"message"`
	Routes  map[string]string `json:"routes"`
}

func endResponse(res *bossbattle.Result) BattleEndResponse {
	return BattleEndResponse{
		Status:         string(res.Status),
		Score:          res.Score,
		XPReward:       res.XPReward,
		TotalQuestions: res.TotalQuestions,
		LivesRemaining: res.LivesRemaining,
		Ended:          true,
	}
}

func battleQuestion(v bossbattle.QuestionView) BattleQuestion {
	return BattleQuestion{
		Number:   v.Number,
		Total:    v.Total,
		Question: v.Question,
		Choices:  v.Choices,
	}
}

// handleBattleError maps manager and store errors; returns true if handled.
func (h *Handler) handleBattleError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, bossbattle.ErrNoBattle):
		respondError(w, http.StatusNotFound, msgNoBattle)
		return true
	case errors.Is(err, bossbattle.ErrActiveBattle):
		respondError(w, http.StatusConflict, msgActiveBattle)
		return true
	}
	return h.handleStoreError(w, err, msgUserNotFound)
}

// ── Handlers ────────────────────────────────────────────────────────────────

// bossInfo godoc
// @Summary      Boss battle route map
// @Tags         boss
// @Produce      json
// @Success      200  {object}  BossInfoResponse
// @Router       /boss/ [get]
func (h *Handler) bossInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, BossInfoResponse{
		Message: "Boss Battle API ready",
		Routes: map[string]string{
			"start":    "POST /boss/start",
			"question": "GET /boss/question?user=<username>",
			"answer":   "POST /boss/answer",
			"status":   "GET /boss/status?user=<username>",
			"forfeit":  "POST /boss/forfeit?user=<username>",
			"history":  "GET /boss/history?user=<username>",
		},
	})
}

// startBossBattle godoc
// @Summary      Start a boss battle
// @Description  Aliases: user|username, total_questions|totalQuestions, time_limit_seconds|timeLimitSeconds.
// @Tags         boss
// @Accept       json
// @Produce      json
// @Success      200  {object}  StartBattleResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /boss/start [post]
func (h *Handler) startBossBattle(w http.ResponseWriter, r *http.Request) {
	f := readFields(w, r)

	username := f.String("user", "username")
	if username == "" {
		respondError(w, http.StatusBadRequest, msgUserRequired)
		return
	}

	total, present, err := f.Int("total_questions", "totalQuestions")
	if err != nil {
		respondError(w, http.StatusBadRequest, "total_questions must be an integer")
		return
	}
	if !present {
		total = bossbattle.DefaultTotal
	}
	if total < 1 {
		respondError(w, http.StatusBadRequest, "total_questions must be >= 1")
		return
	}

	limit, _, err := f.Int("time_limit_seconds", "timeLimitSeconds")
	if err != nil {
		respondError(w, http.StatusBadRequest, "time_limit_seconds must be an integer")
		return
	}

	difficulty := f.String("difficulty")
	if difficulty == "" {
		difficulty = bossbattle.DefaultDifficulty
	}
	if !difficulties[difficulty] {
		respondError(w, http.StatusBadRequest, "difficulty must be easy, medium or hard")
		return
	}

	view, err := h.battles.Start(r.Context(), username, service.StartRequest{
		Total:      total,
		Difficulty: difficulty,
		TimeLimit:  time.Duration(limit) * time.Second,
	})
	if h.handleBattleError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, StartBattleResponse{
		Message:         "Boss battle started.",
		User:            username,
		TimerSeconds:    view.TimerRemaining,
		Lives:           view.Lives,
		CurrentQuestion: battleQuestion(view),
	})
}

// currentQuestion godoc
// @Summary      Current question, or the end result if the battle is over
// @Tags         boss
// @Produce      json
// @Param        user  query     string  true  "Username"
// @Success      200   {object}  CurrentQuestionResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /boss/question [get]
func (h *Handler) currentQuestion(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("user")
	if username == "" {
		respondError(w, http.StatusBadRequest, msgUserRequired)
		return
	}

	view, res, err := h.battles.Question(r.Context(), username)
	if res != nil {
		h.respondEnded(w, res, err)
		return
	}
	if h.handleBattleError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, CurrentQuestionResponse{
		Question:       view.Question,
		Choices:        view.Choices,
		Number:         view.Number,
		Total:          view.Total,
		Lives:          view.Lives,
		TimerRemaining: view.TimerRemaining,
		Score:          view.Score,
	})
}

// submitAnswer godoc
// @Summary      Answer the current question
// @Description  JSON, form or query. Aliases: user|username, choice_idx|choiceIdx|choice.
// @Tags         boss
// @Accept       json
// @Produce      json
// @Success      200  {object}  AnswerResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /boss/answer [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	f := readFields(w, r)

	username := f.String("user", "username")
	choice, present, err := f.Int("choice_idx", "choiceIdx", "choice")

	if username == "" {
		respondError(w, http.StatusBadRequest, msgUserRequired)
		return
	}
	if !present || err != nil {
		respondError(w, http.StatusBadRequest, "choice_idx is required.")
		return
	}

	out, res, err := h.battles.Answer(r.Context(), username, choice)
	if res != nil {
		h.respondEnded(w, res, err)
		return
	}
	if h.handleBattleError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, AnswerResponse{
		Correct:        out.Correct,
		Feedback:       out.Feedback,
		Lives:          out.Lives,
		Score:          out.Score,
		TimerRemaining: out.TimerRemaining,
		NextQuestion:   battleQuestion(out.Next),
	})
}

// battleStatus godoc
// @Summary      Battle progress without advancing it
// @Tags         boss
// @Produce      json
// @Param        user  query     string  true  "Username"
// @Success      200   {object}  BattleStatusResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /boss/status [get]
func (h *Handler) battleStatus(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("user")
	if username == "" {
		respondError(w, http.StatusBadRequest, msgUserRequired)
		return
	}

	p, res, err := h.battles.Status(r.Context(), username)
	if res != nil {
		h.respondEnded(w, res, err)
		return
	}
	if h.handleBattleError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, BattleStatusResponse{
		Lives:          p.Lives,
		Score:          p.Score,
		QuestionNumber: p.QuestionNumber,
		TotalQuestions: p.TotalQuestions,
		TimerRemaining: p.TimerRemaining,
		Completed:      false,
	})
}

// forfeitBattle godoc
// @Summary      Give up the running battle
// @Tags         boss
// @Produce      json
// @Param        user  query     string  true  "Username"
// @Success      200   {object}  BattleEndResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /boss/forfeit [post]
func (h *Handler) forfeitBattle(w http.ResponseWriter, r *http.Request) {
	username := readFields(w, r).String("user", "username")
	if username == "" {
		respondError(w, http.StatusBadRequest, msgUserRequired)
		return
	}

	res, err := h.battles.Forfeit(r.Context(), username)
	if res != nil {
		h.respondEnded(w, res, err)
		return
	}
	h.handleBattleError(w, err)
}

// battleHistory godoc
// @Summary      Finished battles of a user
// @Tags         boss
// @Produce      json
// @Param        user  query     string  true  "Username"
// @Success      200   {array}   store.BossBattle
// @Failure      404   {object}  ErrorResponse
// @Router       /boss/history [get]
func (h *Handler) battleHistory(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("user")
	if username == "" {
		respondError(w, http.StatusBadRequest, msgUserRequired)
		return
	}

	battles, err := h.battles.History(r.Context(), username)
	if h.handleStoreError(w, err, msgUserNotFound) {
		return
	}
	if battles == nil {
		battles = []store.BossBattle{}
	}
	respondJSON(w, http.StatusOK, battles)
}

// respondEnded writes the end-of-battle payload. A settlement error is
// reported as a 500; the battle itself is already closed.
func (h *Handler) respondEnded(w http.ResponseWriter, res *bossbattle.Result, settleErr error) {
	if settleErr != nil {
		h.logger.Error("boss battle settlement failed", "user", res.Username, "error", settleErr)
		respondError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	respondJSON(w, http.StatusOK, endResponse(res))
}
