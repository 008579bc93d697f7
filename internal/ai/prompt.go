package ai

import "fmt"

// PromptVersion tags the suggestion prompt format. It participates in cache
// keys, so bump it whenever BuildSuggestionPrompt changes shape.
const PromptVersion = "career-coach:v1"

// BuildSuggestionPrompt renders the career-coach suggestion prompt for one
// resume. The output of the completion is shown verbatim and never parsed.
func BuildSuggestionPrompt(resumeText string) string {
	return fmt.Sprintf(
		"You are an expert career coach. Analyze this resume and provide:\n"+
			"1) Top strengths\n"+
			"2) Weaknesses or missing items\n"+
			"3) Key ATS keywords to add\n"+
			"4) Improvements to professional summary\n\n"+
			"Resume:\n%s", resumeText)
}
