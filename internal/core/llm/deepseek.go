package llm

const deepSeekBaseURL = "https://api.deepseek.com"

func NewDeepSeekProvider(apiKey, baseURL, model string, temperature float32, maxTokens int) *ChatCompletionProvider {
	if model == "" {
		model = "deepseek-chat"
	}
	if baseURL == "" {
		baseURL = deepSeekBaseURL
	}
	return newChatCompletionProvider("DeepSeek", apiKey, baseURL, model, temperature, maxTokens)
}
