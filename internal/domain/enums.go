package domain

// Subject is the topic a flashcard belongs to.
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectEnglish Subject = "english"
	SubjectSpanish Subject = "spanish"
	SubjectGerman  Subject = "german"
	SubjectScience Subject = "science"
	SubjectHistory Subject = "history"
	SubjectOther   Subject = "other"
)

// Subjects lists every subject in display order.
var Subjects = []Subject{
	SubjectMath, SubjectEnglish, SubjectSpanish, SubjectGerman,
	SubjectScience, SubjectHistory, SubjectOther,
}

func (s Subject) String() string { return string(s) }

func (s Subject) IsValid() bool {
	switch s {
	case SubjectMath, SubjectEnglish, SubjectSpanish, SubjectGerman,
		SubjectScience, SubjectHistory, SubjectOther:
		return true
	}
	return false
}

// Difficulty determines how much XP a correct answer is worth.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every difficulty from easiest to hardest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// XPValue returns the XP awarded for a correct answer on a card of this difficulty.
// Unknown difficulties are worth nothing.
func (d Difficulty) XPValue() int {
	switch d {
	case DifficultyEasy:
		return 3
	case DifficultyMedium:
		return 5
	case DifficultyHard:
		return 8
	}
	return 0
}

// SessionStatus represents the lifecycle state of a study session.
type SessionStatus string

const (
	SessionStatusIdle   SessionStatus = "IDLE"
	SessionStatusActive SessionStatus = "ACTIVE"
	SessionStatusPaused SessionStatus = "PAUSED"
	SessionStatusEnded  SessionStatus = "ENDED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusIdle, SessionStatusActive, SessionStatusPaused, SessionStatusEnded:
		return true
	}
	return false
}

// IsLive reports whether a session in this status can still be ended.
func (s SessionStatus) IsLive() bool {
	return s == SessionStatusActive || s == SessionStatusPaused
}
