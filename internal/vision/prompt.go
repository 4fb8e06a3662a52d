package vision

const basePrompt = "Please describe the environment and setting of this street view image. " +
	"Focus on static elements like buildings, roads, vegetation, weather conditions, and overall atmosphere. " +
	"Ignore any moving objects or people. This description will be used as a prompt for video generation."

// BuildPrompt appends the scene conditions and the time of day to the fixed
// captioning instruction when they are known.
func BuildPrompt(summary, timeOfDay string) string {
	prompt := basePrompt
	if summary != "" {
		prompt += " You must strictly adhere to the provided scene conditions: " + summary +
			". If the visual cues appear inconsistent, describe the scene as given here."
	}
	if timeOfDay != "" {
		prompt += " The scene occurs during the " + timeOfDay +
			". Explicitly mention this time of day in the description."
	}
	return prompt
}
