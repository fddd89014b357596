package constant

// Essay status values. Only published essays are reachable by slug.
const (
	EssayStatusDraft     = "draft"
	EssayStatusPublished = "published"
)

// Vote types. One record per (essay, identity); same type again toggles off.
const (
	VoteTypeLike    = "like"
	VoteTypeDislike = "dislike"
)

// Chat message origins as stored in transcripts.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"
)

// Fixed user-facing chat texts. The assistant persona is called Clarus and
// speaks Dutch, matching the site.
const (
	ChatGreetingFormat = "Welkom terug. Waar in \"%s\" zit je gedachte vast?"
	ChatFallbackReply  = "Er ging iets mis met Clarus. Probeer het later opnieuw."
)

// Live subscription topics.
const (
	TopicEssays   = "essays"
	TopicComments = "comments" // comments/{slug}
	TopicVotes    = "votes"    // votes/{slug}
)

// Content change event topic on the internal bus.
const ContentEventsTopic = "CONTENT_CHANGED"
