package wbdomain

import "fmt"

// maxBodySnippet limita o tamanho do corpo de resposta carregado no erro
const maxBodySnippet = 500

// APIError representa uma falha definitiva de uma chamada à API do marketplace
type APIError struct {
	StatusCode int
	Body       string
}

func NewAPIError(statusCode int, body []byte) *APIError {
	snippet := string(body)
	if len(snippet) > maxBodySnippet {
		snippet = snippet[:maxBodySnippet]
	}

	return &APIError{
		StatusCode: statusCode,
		Body:       snippet,
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// IsRetryable indica se o status HTTP justifica uma nova tentativa
// (limite de requisições ou erro do servidor)
func (e *APIError) IsRetryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
