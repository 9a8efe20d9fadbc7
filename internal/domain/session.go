package domain

// SessionState is the phase of the question currently on screen.
type SessionState string

const (
	StateSelecting SessionState = "selecting"
	StateScored    SessionState = "scored"
	StateComplete  SessionState = "complete"
)

// NoOption marks an unset selection or an unrevealed answer.
const NoOption = -1

// SessionView is what a front-end needs to draw one frame of a session.
type SessionView struct {
	Handle           string              `json:"handle"`
	State            SessionState        `json:"state"`
	Number           int                 `json:"number"` // 1-based
	Total            int                 `json:"total"`
	Question         string              `json:"question"`
	Options          [OptionCount]string `json:"options"`
	SecondsRemaining int                 `json:"secondsRemaining"`
	Selected         int                 `json:"selected"`
	Scored           bool                `json:"scored"`
	TimedOut         bool                `json:"timedOut"`
	CorrectOption    int                 `json:"correctOption"`
	RunningScore     int                 `json:"runningScore"`
}

// AnswerOutcome summarizes a committed answer.
type AnswerOutcome struct {
	Correct       bool `json:"correct"`
	Awarded       int  `json:"awarded"`
	CorrectOption int  `json:"correctOption"`
	RunningScore  int  `json:"runningScore"`
}

// SessionResult is the final tally of a completed session.
type SessionResult struct {
	Player             string     `json:"player"`
	Difficulty         Difficulty `json:"difficulty"`
	Score              int        `json:"score"`
	QuestionsPlayed    int        `json:"questionsPlayed"`
	Percentage         float64    `json:"percentage"`
	ScoreIsNonNegative bool       `json:"scoreIsNonNegative"`
}
