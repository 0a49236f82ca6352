package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageInvalidProfile       = "perfil do usuário inválido"
	MessageTooManyRequests      = "Muitas requisições. Aguarde um momento."

	// user-facing messages for pipeline failures
	MessageProviderFailure    = "Erro ao processar a solicitação. Tente novamente."
	MessageMalformedResponse  = "Formato de resposta inválido. Tente novamente."
	MessageSchemaViolation    = "Estrutura de dados inválida. Tente novamente."
	MessageUnknownAnalysisErr = "Erro desconhecido ao processar a análise."

	ErrInvalidProfile  = errors.New("invalid user profile")
	ErrInvalidGoal     = errors.New("invalid goal")
	ErrInvalidMealType = errors.New("invalid meal type")

	ErrProviderFailure   = errors.New("model provider call failed")
	ErrEmptyResponse     = errors.New("model returned an empty response")
	ErrMalformedResponse = errors.New("model response is not valid JSON")
	ErrSchemaViolation   = errors.New("model response is missing required fields")
	ErrModelReported     = errors.New("model reported a failure")
)

// UserMessage maps a pipeline error to the message shown to the end user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrProviderFailure), errors.Is(err, ErrEmptyResponse):
		return MessageProviderFailure
	case errors.Is(err, ErrMalformedResponse):
		return MessageMalformedResponse
	case errors.Is(err, ErrSchemaViolation):
		return MessageSchemaViolation
	case errors.Is(err, ErrInvalidProfile):
		return MessageInvalidProfile
	default:
		return MessageUnknownAnalysisErr
	}
}
