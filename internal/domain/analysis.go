package domain

// Role identifies the author of a conversation message
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one turn of the conversation submitted to the completion service
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Upload is a file received on the analysis endpoint
type Upload struct {
	Filename string
	Content  []byte
}

// PDF extraction backends
const (
	PDFBackendFitz = "fitz"
	PDFBackendPure = "pure"
)

// Completion providers
const (
	ProviderOpenAI = "openai"
	ProviderVertex = "vertex"
)
