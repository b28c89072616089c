package metaclient

import "fmt"

// RateLimitError indica limitação de taxa (HTTP 429 ou código de throttling
// no corpo). É o único erro que dispara retry com backoff.
type RateLimitError struct {
	StatusCode int
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("limite de requisições atingido (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("limite de requisições atingido (status %d)", e.StatusCode)
}

// RequestError indica falha terminal de requisição: status não-2xx que não é
// rate limit, falha de rede ou resposta malformada. Propaga sem retry.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("erro na requisição: %v", e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("erro na requisição (status %d): %s", e.StatusCode, e.Message)
	default:
		return e.Message
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
