// Package prompts assembles the prompts sent to the text-completion service.
package prompts

import (
	"fmt"
	"strings"
)

// QuestionPrompt builds the prompt for generating one interview question
// at the given difficulty.
func QuestionPrompt(level, topic, description string) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Generate a specific, practical Excel interview question for a %s level candidate.\n\n", level))
	prompt.WriteString(fmt.Sprintf("Difficulty Level: %s\n", level))
	prompt.WriteString(fmt.Sprintf("Focus Topic: %s\n", topic))
	prompt.WriteString(fmt.Sprintf("Description: %s\n\n", description))

	prompt.WriteString("The question should:\n")
	prompt.WriteString(fmt.Sprintf("- Match the %s difficulty level\n", level))
	prompt.WriteString("- Be realistic and job-relevant\n")
	prompt.WriteString("- Test appropriate Excel skills for this level\n")
	prompt.WriteString("- Require a detailed answer\n")
	prompt.WriteString("- Be clear and specific\n")
	prompt.WriteString("- Progress naturally from basic to advanced concepts\n\n")

	prompt.WriteString("Format: Just provide the question, no additional text.\n\n")

	prompt.WriteString("Examples by level:\n")
	prompt.WriteString("- Basic: \"How would you calculate the sum of values in column A using a formula?\"\n")
	prompt.WriteString("- Intermediate: \"How would you use VLOOKUP to find a product price based on its ID?\"\n")
	prompt.WriteString("- Advanced: \"How would you create a dynamic dashboard with pivot tables and slicers?\"\n\n")

	prompt.WriteString(fmt.Sprintf("Generate a %s level question about %s:", level, topic))

	return prompt.String()
}

// EvaluationPrompt builds the scoring prompt for one answer. The response is
// expected to follow the two-line Score/Explanation format.
func EvaluationPrompt(question, answer string) string {
	var prompt strings.Builder

	prompt.WriteString("Evaluate this Excel interview answer and provide a score and brief explanation.\n\n")
	prompt.WriteString(fmt.Sprintf("Question: %s\n", question))
	prompt.WriteString(fmt.Sprintf("Answer: %s\n\n", answer))

	prompt.WriteString("Scoring criteria:\n")
	prompt.WriteString("- 0: Incorrect or completely wrong approach\n")
	prompt.WriteString("- 1: Partially correct but missing key elements or has errors\n")
	prompt.WriteString("- 2: Correct and comprehensive answer\n\n")

	prompt.WriteString("Respond in this exact format:\n")
	prompt.WriteString("Score: [0, 1, or 2]\n")
	prompt.WriteString("Explanation: [One-line explanation of the score]\n\n")

	prompt.WriteString("Be fair but thorough in your evaluation. Focus on technical accuracy and completeness.")

	return prompt.String()
}

// ReportPrompt builds the final feedback report prompt from the per-question
// summary and the aggregate result.
func ReportPrompt(qaSummary string, totalScore int, percentage float64, skillLevel string) string {
	var prompt strings.Builder

	prompt.WriteString("Generate a professional interview feedback report for an Excel mock interview.\n\n")
	prompt.WriteString("Interview Summary:\n")
	prompt.WriteString(qaSummary)
	prompt.WriteString("\n")
	prompt.WriteString(fmt.Sprintf("Total Score: %d/10 (%.1f%%), which puts the candidate at a %s level.\n\n", totalScore, percentage, skillLevel))

	prompt.WriteString("Create a professional feedback report with these sections:\n")
	prompt.WriteString("1. Overall Performance Summary - include specific strengths demonstrated\n")
	prompt.WriteString("2. Strengths (areas where candidate performed well) - be specific about which Excel skills they demonstrated proficiency in\n")
	prompt.WriteString("3. Areas for Improvement (weaknesses) - provide detailed analysis based on questions they struggled with\n")
	prompt.WriteString("4. Specific Recommendations - include actionable steps and suggested resources tailored to their skill gaps\n")
	prompt.WriteString("5. Final Score and Recommendation - with a motivational conclusion that encourages continued learning\n\n")

	prompt.WriteString("Be constructive, specific, and professional. Focus on Excel skills and provide actionable feedback that will help them improve their Excel skills for real-world applications.\n\n")

	prompt.WriteString("Important formatting guidelines:\n")
	prompt.WriteString("- Do not include any placeholder text like [Candidate Name] or [Interviewer Name]\n")
	prompt.WriteString("- Do not use asterisks (*) for formatting - use proper markdown formatting instead\n")
	prompt.WriteString("- Focus only on genuine evaluation terms and feedback\n")
	prompt.WriteString("- Make sure all sections are properly formatted with clear headings")

	return prompt.String()
}
