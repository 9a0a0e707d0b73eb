package llm

import "fmt"

// BuildQuizPrompt renders the generation request for quiz questions into a
// model prompt. Pure and deterministic; input validation is the caller's
// responsibility.
func BuildQuizPrompt(topic, difficulty string, count int) string {
	return fmt.Sprintf(
		"Generate %d multiple-choice quiz questions on: %s. "+
			"Target knowledge level: %s. "+
			"Each question must have 'question', 'options' (array of exactly 4 strings), and 'answer' fields. "+
			"Format your response as a plain JSON array only. Do not include explanations or markdown.",
		count, topic, difficulty)
}

// BuildDescribePrompt renders the request for a topic description. The model
// is asked for a JSON array of short sentences; the caller joins them.
func BuildDescribePrompt(topic string) string {
	return fmt.Sprintf(
		"Generate a short description about %s. Use around 150 to 200 words. "+
			"Format your response as a plain JSON array of sentences. "+
			"Do not include explanations, headers, or markdown.",
		topic)
}
