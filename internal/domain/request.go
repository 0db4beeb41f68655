package domain

// GenerationRequest is the immutable input for one multimodal scene.
// scene_id is caller supplied and never validated for uniqueness.
type GenerationRequest struct {
	SceneID     string            `json:"scene_id"`
	TextPrompt  string            `json:"text_prompt"`
	Emotion     string            `json:"emotion"`
	Intensity   float64           `json:"intensity"`
	Style       string            `json:"style"`
	CameraAngle string            `json:"camera_angle"`
	Models      map[string]string `json:"models"`
	Parameters  map[string]any    `json:"parameters,omitempty"`
}
