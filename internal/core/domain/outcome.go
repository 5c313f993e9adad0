package domain

// OutcomeKind is the result of classifying one inbound email.
type OutcomeKind int

const (
	OutcomeIgnore OutcomeKind = iota
	OutcomeNewPost
	OutcomeClaim
	OutcomeUpdate
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNewPost:
		return "new_post"
	case OutcomeClaim:
		return "claim"
	case OutcomeUpdate:
		return "update"
	default:
		return "ignore"
	}
}

// IgnoreReason explains an OutcomeIgnore.
type IgnoreReason string

const (
	IgnoreNone           IgnoreReason = ""
	IgnoreMalformed      IgnoreReason = "malformed"
	IgnoreOwnMessage     IgnoreReason = "own-message"
	IgnoreDelegated      IgnoreReason = "delegated"
	IgnoreUnmatchedReply IgnoreReason = "unmatched-reply"
	IgnoreUnmatched      IgnoreReason = "unmatched"
)

// Outcome is what the classifier decided and, once applied, what was written.
//
// An Ignore outcome with reason IgnoreDelegated carries the classification of
// the same email with its reply marker stripped in Delegated. Delegation is
// never nested.
type Outcome struct {
	Kind   OutcomeKind
	Reason IgnoreReason
	// Email is the message the outcome applies to; its subject may have been stripped.
	Email     RawEmail
	Thread    *Thread
	Items     []Item
	Delegated *Outcome
}

// Effective returns the outcome whose side effects were applied.
func (o *Outcome) Effective() *Outcome {
	if o.Delegated != nil {
		return o.Delegated
	}
	return o
}

func Ignore(email RawEmail, reason IgnoreReason) *Outcome {
	return &Outcome{Kind: OutcomeIgnore, Reason: reason, Email: email}
}
