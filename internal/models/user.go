package models

import "time"

// WishlistEntry is a museum saved to a user's wishlist.
// Entries are deduplicated by MuseumID.
type WishlistEntry struct {
	MuseumID  int       `json:"museumId" db:"museum_id"`   // Museum id
	AddedDate time.Time `json:"addedDate" db:"added_date"` // Server time of the add
}

// VisitEntry is one visit to a museum. Duplicates are permitted.
type VisitEntry struct {
	MuseumID  int       `json:"museumId" db:"museum_id"`   // Museum id
	VisitDate string    `json:"visitDate" db:"visit_date"` // Caller-supplied local date string
	Timestamp time.Time `json:"timestamp" db:"timestamp"`  // Server time of the call
}

// ReviewEntry is one review in a user's diary.
type ReviewEntry struct {
	MuseumID   int       `json:"museumId" db:"museum_id"`     // Museum id
	Rating     int       `json:"rating" db:"rating"`          // Rating in [1,5]
	Notes      string    `json:"notes" db:"notes"`            // Non-empty review text
	ReviewDate time.Time `json:"reviewDate" db:"review_date"` // Server time of the call
}

// QuizScore is one recorded quiz attempt.
type QuizScore struct {
	MuseumID       int          `json:"museumId" db:"museum_id"`              // Museum id
	MuseumName     string       `json:"museumName" db:"museum_name"`          // Museum name at attempt time
	Score          int          `json:"score" db:"score"`                     // Correct answers
	TotalQuestions int          `json:"totalQuestions" db:"total_questions"`  // Questions in the quiz
	Percentage     float64      `json:"percentage" db:"percentage"`           // score/total*100, 2 decimals
	Answers        []QuizAnswer `json:"answers" db:"answers"`                 // Per-question answers
	AttemptDate    time.Time    `json:"attemptDate" db:"attempt_date"`        // Server time of the call
}

// User is one record in the user ledger, keyed by username.
// The username is immutable once created; the password is stored hashed only.
type User struct {
	Username     string          `json:"username" db:"username"`          // Unique key, >=3 chars
	PasswordHash string          `json:"password" db:"password_hash"`     // bcrypt hash
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`       // Creation timestamp
	Wishlist     []WishlistEntry `json:"wishlist" db:"wishlist"`          // Deduplicated by museum id
	VisitedLog   []VisitEntry    `json:"visitedLog" db:"visited_log"`     // Append-only
	ReviewDiary  []ReviewEntry   `json:"reviewDiary" db:"review_diary"`   // Append-only
	QuizScores   []QuizScore     `json:"quizScores" db:"quiz_scores"`     // Append-only
}

// NewUser creates a user with empty collections.
func NewUser(username, passwordHash string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
		Wishlist:     []WishlistEntry{},
		VisitedLog:   []VisitEntry{},
		ReviewDiary:  []ReviewEntry{},
		QuizScores:   []QuizScore{},
	}
}

// HasVisited reports whether the user's visited log contains the museum.
func (u *User) HasVisited(museumID int) bool {
	for _, v := range u.VisitedLog {
		if v.MuseumID == museumID {
			return true
		}
	}
	return false
}
