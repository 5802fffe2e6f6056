package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	AssistantWelcomeMessage = "Hi, tell me which document you need and who it is for."

	// Session titles derive from the first user message, truncated.
	SessionTitleMaxLen = 60
)
