package models

// Pagination defaults for list endpoints
const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Token type returned by the auth endpoint
const TokenTypeBearer = "bearer"

// Request types

type RegisterVoterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterCandidateRequest struct {
	Name  string  `json:"name"`
	Party *string `json:"party,omitempty"`
}

type CastVoteRequest struct {
	VoterID     string `json:"voter_id"`
	CandidateID string `json:"candidate_id"`
}

type TokenRequest struct {
	Password string `json:"password"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"` // Unix seconds
}

type ServiceInfo struct {
	Message  string   `json:"message"`
	Version  string   `json:"version"`
	Features []string `json:"features"`
}

// Domain types

type Voter struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	HasVoted bool   `json:"has_voted"`
}

type Candidate struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Party      *string `json:"party"`
	VotesCount int     `json:"votes_count"`
}

type Vote struct {
	ID          string `json:"id"`
	VoterID     string `json:"voter_id"`
	CandidateID string `json:"candidate_id"`
}

// Page is an offset/limit window over an ordered listing
type Page struct {
	Skip  int
	Limit int
}

// Aggregation types

type CandidateStatistics struct {
	CandidateID    string  `json:"candidate_id"`
	CandidateName  string  `json:"candidate_name"`
	Party          *string `json:"party"`
	TotalVotes     int     `json:"total_votes"`
	VotePercentage float64 `json:"vote_percentage"`
}

type Statistics struct {
	TotalVotersWhoVoted  int                   `json:"total_voters_who_voted"`
	CandidatesStatistics []CandidateStatistics `json:"candidates_statistics"`
}

type DualRoleCheck struct {
	VoterID         string `json:"voter_id"`
	VoterName       string `json:"voter_name"`
	IsAlsoCandidate bool   `json:"is_also_candidate"`
	CanVote         bool   `json:"can_vote"`
}

type TallyMismatch struct {
	CandidateID string `json:"candidate_id"`
	Recorded    int    `json:"recorded"` // votes_count column
	Counted     int    `json:"counted"`  // rows in vote
}

type TallyReport struct {
	Consistent           bool            `json:"consistent"`
	TotalVotes           int             `json:"total_votes"`
	MismatchedCandidates []TallyMismatch `json:"mismatched_candidates"`
	InconsistentVoters   int             `json:"inconsistent_voters"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
