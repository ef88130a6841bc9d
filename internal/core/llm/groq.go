package llm

const groqBaseURL = "https://api.groq.com/openai/v1"

func NewGroqProvider(apiKey, baseURL, model string, temperature float32, maxTokens int) *ChatCompletionProvider {
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	return newChatCompletionProvider("Groq", apiKey, baseURL, model, temperature, maxTokens)
}
