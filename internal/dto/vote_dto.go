package dto

type CastVoteRequest struct {
	Type string `json:"type" validate:"required,oneof=like dislike"`
}

// VoteTally carries the derived totals plus the caller's own vote ("" when
// none).
type VoteTally struct {
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
	MyVote   string `json:"my_vote,omitempty"`
}
