package metadomain

import "strings"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsRateLimit verifica se o erro representa limitação de taxa.
// Códigos 4 (app), 17 (usuário), 32 (página) e 613 são os códigos de
// throttling documentados da Graph API.
func (e *ErrorResponse) IsRateLimit() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613:
		return true
	}

	return strings.Contains(strings.ToLower(e.Error.Message), "rate limit") ||
		strings.Contains(e.Error.Message, "request limit reached")
}
