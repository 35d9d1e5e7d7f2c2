package domain

// Message is an inbound chat message as delivered by a message source. The
// leading token of Content selects the command handler.
type Message struct {
	ChannelID string
	Content   string
}

// Embed is a rich message card sent to a channel.
type Embed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

// User is the subset of the Discord user resource the bot works with.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Bot        bool   `json:"bot"`
}

// Channel is the subset of the Discord channel resource the bot works with.
// GuildID is empty for direct message channels.
type Channel struct {
	ID      string `json:"id"`
	GuildID string `json:"guild_id"`
	Name    string `json:"name"`
	Type    int    `json:"type"`
}

type ModelResponse struct {
	Response string
	Metadata ResponseMetadata
}

type ResponseMetadata struct {
	Model            string
	CompletionTokens int
	TotalTokens      int
}
