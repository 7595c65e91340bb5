package response

import request "pa_dog_license/internal/adapter/http/dto/request"

const InvalidFieldsMessage = "Please fill in all required fields correctly"

type StepResponse struct {
	Index       int      `json:"index" example:"0"`
	Title       string   `json:"title" example:"Owner Information"`
	Description string   `json:"description" example:"Your contact details"`
	Fields      []string `json:"fields"`
}

func FromSteps(steps []request.Step) []StepResponse {
	out := make([]StepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, StepResponse{Index: s.Index, Title: s.Title, Description: s.Description, Fields: s.Fields})
	}
	return out
}

// StepValidationResponse reports the outcome of validating one wizard step.
// NextStep is where the wizard goes on success; it stays put on failure.
type StepValidationResponse struct {
	Step     int               `json:"step" example:"0"`
	Valid    bool              `json:"valid"`
	NextStep int               `json:"nextStep" example:"1"`
	Message  string            `json:"message,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

func NewStepValidationResponse(step int, fields map[string]string) StepValidationResponse {
	if len(fields) > 0 {
		return StepValidationResponse{Step: step, NextStep: step, Message: InvalidFieldsMessage, Fields: fields}
	}
	next := step + 1
	if next > request.LastStep {
		next = request.LastStep
	}
	return StepValidationResponse{Step: step, Valid: true, NextStep: next}
}
