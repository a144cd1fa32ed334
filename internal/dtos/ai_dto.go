package dtos

type AIPreferencesRequest struct {
	Provider string `json:"provider" binding:"required,oneof=googleai"`
	Model    string `json:"model" binding:"required"`
}

// AIGenerationRequest names the job a piece of content should be drafted
// for; the user's stored profile supplies the rest of the context.
type AIGenerationRequest struct {
	JobID string `json:"job_id" binding:"required"`
	Model string `json:"model"`
}
