package domain

var (
	MessageSuccessCoachChat   = "coach replied successfully"
	MessageFailedCoachChat    = "Erro ao processar mensagem"
	MessageMessageNotProvided = "Mensagem não fornecida"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	// ChatHistoryLimit is how many previous turns are forwarded to the model.
	ChatHistoryLimit = 10
)

type (
	ChatTurn struct {
		Role    string `json:"role" validate:"required"`
		Content string `json:"content"`
	}

	CoachChatRequest struct {
		Message     string      `json:"message" validate:"required"`
		UserProfile UserProfile `json:"userProfile"`
		History     []ChatTurn  `json:"history,omitempty" validate:"omitempty,dive"`
	}

	CoachChatResponse struct {
		Response string `json:"response"`
	}
)
