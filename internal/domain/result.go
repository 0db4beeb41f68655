package domain

// ImageDescriptor references one generated still image.
type ImageDescriptor struct {
	URL              string  `json:"url"`
	Style            string  `json:"style"`
	EmotionAccuracy  float64 `json:"emotion_accuracy"`
	TechnicalQuality float64 `json:"technical_quality"`
}

// VideoDescriptor references one generated video clip.
type VideoDescriptor struct {
	URL           string  `json:"url"`
	CameraWork    string  `json:"camera_work"`
	MotionQuality float64 `json:"motion_quality"`
	EmotionalSync float64 `json:"emotional_sync"`
}

// VisualOutput bundles the image and video descriptors for one scene.
type VisualOutput struct {
	Images []ImageDescriptor `json:"images"`
	Videos []VideoDescriptor `json:"videos"`
}

// LipSyncData is the time-aligned phoneme/mouth-shape track driving
// animated mouth movement against the generated voice. The three slices
// are always the same length.
type LipSyncData struct {
	Phonemes    []string  `json:"phonemes"`
	Timestamps  []float64 `json:"timestamps"`
	MouthShapes []string  `json:"mouth_shapes"`
}

// VoiceDescriptor references generated speech plus its lip-sync track.
type VoiceDescriptor struct {
	URL          string      `json:"url"`
	EmotionMatch float64     `json:"emotion_match"`
	Naturalness  float64     `json:"naturalness"`
	LipSync      LipSyncData `json:"lipsync_data"`
}

// MusicDescriptor references the generated backing track.
type MusicDescriptor struct {
	URL                  string  `json:"url"`
	MoodAlignment        float64 `json:"mood_alignment"`
	EmotionalProgression bool    `json:"emotional_progression"`
	AdaptiveSync         bool    `json:"adaptive_sync"`
}

// AudioOutput bundles voice and music for one scene.
type AudioOutput struct {
	Voice VoiceDescriptor `json:"voice"`
	Music MusicDescriptor `json:"music"`
}

// PrimaryContent selects the lead asset of each modality from the fused
// outputs.
type PrimaryContent struct {
	Video string `json:"video"`
	Audio string `json:"audio"`
	Voice string `json:"voice"`
}

// Timeline carries the synchronized playback schedule. Values are seconds
// from the start of the scene.
type Timeline struct {
	TotalDuration     float64   `json:"total_duration"`
	EmotionPeaks      []float64 `json:"emotion_peaks"`
	CameraTransitions []float64 `json:"camera_transitions"`
	AudioSyncPoints   []float64 `json:"audio_sync_points"`
}

// FusionScores grades how well the modalities were merged.
type FusionScores struct {
	VisualAudioSync    float64 `json:"visual_audio_sync"`
	EmotionalCoherence float64 `json:"emotional_coherence"`
	TechnicalQuality   float64 `json:"technical_quality"`
	CreativeScore      float64 `json:"creative_score"`
}

// RenderFlags signal which downstream render pipelines are primed.
type RenderFlags struct {
	FluxPipeline       bool `json:"flux_pipeline"`
	LipsyncEnabled     bool `json:"lipsync_enabled"`
	SeedanceProcessing bool `json:"seedance_processing"`
	WebGLOptimized     bool `json:"webgl_optimized"`
}

// FusedOutput is the merged multimodal result of one scene.
type FusedOutput struct {
	PrimaryContent PrimaryContent `json:"primary_content"`
	Timeline       Timeline       `json:"synchronized_timeline"`
	Scores         FusionScores   `json:"fusion_metadata"`
	RenderReady    RenderFlags    `json:"render_ready"`
}

// EmotionContext echoes the emotional parameters the pipeline ran with.
type EmotionContext struct {
	Emotion   string  `json:"emotion"`
	Intensity float64 `json:"intensity"`
}

// ResultMetadata records how a result was produced.
type ResultMetadata struct {
	EnhancedPrompt   string            `json:"enhanced_prompt"`
	ModelsUsed       map[string]string `json:"models_used"`
	EmotionContext   EmotionContext    `json:"emotion_context"`
	ProcessingStages []string          `json:"processing_stages"`
}

// GenerationResult is produced once per pipeline invocation. RequestID is
// freshly generated on every call and never reused.
type GenerationResult struct {
	RequestID      string         `json:"request_id"`
	SceneID        string         `json:"scene_id"`
	Status         string         `json:"status"`
	Outputs        FusedOutput    `json:"outputs"`
	Metadata       ResultMetadata `json:"metadata"`
	ProcessingTime float64        `json:"processing_time"`
}
