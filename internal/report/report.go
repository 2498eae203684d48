// Package report builds the final interview feedback report.
package report

import (
	"fmt"
	"strings"

	"excel-mock-interviewer/internal/config"
	"excel-mock-interviewer/internal/metrics"
	"excel-mock-interviewer/internal/prompts"
	"excel-mock-interviewer/internal/session"
)

// Completer is the text-completion collaborator
type Completer interface {
	Complete(prompt string, maxTokens int, temperature float64) (string, error)
}

// Service represents the report generation service
type Service struct {
	client  Completer
	cfg     *config.Config
	metrics *metrics.Metrics
}

// New creates a new report generator
func New(client Completer, cfg *config.Config, m *metrics.Metrics) *Service {
	return &Service{
		client:  client,
		cfg:     cfg,
		metrics: m,
	}
}

// Canonical model answers shown alongside the candidate's, keyed by
// zero-based question index. Presentation data, not derived.
var correctAnswers = [session.TotalQuestions]string{
	"To calculate the total cost, you would use the SUMPRODUCT function. In cell C7, the formula would be =SUMPRODUCT(A2:A6,B2:B6) which multiplies each item's price by its quantity and then adds all the results together.",
	"To create a dynamic chart that updates automatically, you would: 1) Create a named range for your data (Ctrl+T or Insert > Table), 2) Insert a chart based on this table (Insert > Charts > desired chart type), 3) The chart will automatically update when data in the table changes. You can also use OFFSET or INDEX functions with COUNTA to create dynamic ranges.",
	`To find the last value in column A, you can use: =LOOKUP(2,1/(A:A<>""),A:A) or =INDEX(A:A,MATCH(9.99999999999999E+307,A:A)) or =INDEX(A:A,COUNTA(A:A)). These formulas work even when the data has blank cells or is unsorted.`,
	"To create a conditional formatting rule that highlights cells with values above average: 1) Select the range, 2) Go to Home > Conditional Formatting > New Rule, 3) Choose 'Use a formula', 4) Enter =A1>AVERAGE($A$1:$A$100) (adjust range as needed), 5) Click Format and choose highlighting style, 6) Click OK. This will highlight all cells with values above the average of the selected range.",
	"To create a pivot table summarizing sales by region and product: 1) Select your data range, 2) Go to Insert > PivotTable, 3) In the PivotTable Fields pane, drag 'Region' to Rows area, 'Product' to Columns area, and 'Sales' to Values area, 4) The pivot table will automatically calculate the sum of sales for each region-product combination. You can then add filters, change calculation type (e.g., to average), or add additional fields as needed.",
}

// CorrectAnswer returns the model answer for a zero-based question index
func CorrectAnswer(index int) string {
	if index < 0 || index >= len(correctAnswers) {
		return ""
	}
	return correctAnswers[index]
}

// SkillLevel maps a percentage score to the performance label
func SkillLevel(percentage float64) string {
	switch {
	case percentage >= 90:
		return "Expert"
	case percentage >= 75:
		return "Advanced"
	case percentage >= 60:
		return "Intermediate"
	case percentage >= 40:
		return "Basic"
	default:
		return "Beginner"
	}
}

// Generate produces the final feedback report for a fully scored interview.
// It never fails: if the completion service is unavailable, a deterministic
// templated report is assembled from the same data.
func (s *Service) Generate(records []*session.Record) string {
	var qaSummary strings.Builder
	totalScore := 0
	for i, rec := range records {
		qaSummary.WriteString(fmt.Sprintf("Q%d: %s\n", i+1, rec.Question))
		qaSummary.WriteString(fmt.Sprintf("Your Answer: %s\n", rec.Answer))
		qaSummary.WriteString(fmt.Sprintf("Correct Answer: %s\n", CorrectAnswer(i)))
		qaSummary.WriteString(fmt.Sprintf("Score: %d/2\n\n", rec.Score))
		totalScore += rec.Score
	}

	percentage := float64(totalScore) / 10 * 100
	skillLevel := SkillLevel(percentage)

	prompt := prompts.ReportPrompt(qaSummary.String(), totalScore, percentage, skillLevel)

	response, err := s.client.Complete(prompt, s.cfg.GetReportMaxTokens(), s.cfg.GetTemperature())
	s.metrics.IncrementAPICall(err == nil)
	if err != nil || response == "" {
		s.metrics.IncrementFallbacksUsed()
		response = fallbackReport(records, totalScore, percentage, skillLevel)
	}

	s.metrics.IncrementReportsGenerated()
	return response
}

// fallbackReport assembles the fixed-template report. Section order and
// wording are stable so repeated generation over the same records is
// deterministic.
func fallbackReport(records []*session.Record, totalScore int, percentage float64, skillLevel string) string {
	var highScores, lowScores []*session.Record
	for _, rec := range records {
		switch rec.Score {
		case 2:
			highScores = append(highScores, rec)
		case 0:
			lowScores = append(lowScores, rec)
		}
	}

	var strengths []string
	if len(highScores) > 0 {
		strengths = append(strengths, fmt.Sprintf("Strong performance on %d questions with detailed technical knowledge", len(highScores)))
	}
	if anyAnswerContains(highScores, "vlookup", "index") {
		strengths = append(strengths, "Good understanding of lookup functions and reference techniques")
	}
	if anyAnswerContains(highScores, "pivot") {
		strengths = append(strengths, "Solid grasp of pivot tables and data analysis capabilities")
	}
	if anyAnswerContains(highScores, "formula") {
		strengths = append(strengths, "Strong formula and function knowledge with practical application")
	}
	if anyAnswerContains(highScores, "chart", "dashboard") {
		strengths = append(strengths, "Effective data visualization and dashboard creation skills")
	}

	var improvements []string
	if len(lowScores) > 0 {
		improvements = append(improvements, fmt.Sprintf("Focus on %d areas where technical knowledge needs strengthening", len(lowScores)))
	}
	if anyStruggledWith(records, "vlookup") {
		improvements = append(improvements, "Practice with VLOOKUP, INDEX/MATCH and advanced lookup techniques")
	}
	if anyStruggledWith(records, "pivot") {
		improvements = append(improvements, "Review pivot table creation, calculated fields, and advanced data analysis techniques")
	}
	if anyStruggledWith(records, "formula") {
		improvements = append(improvements, "Strengthen formula writing, nested functions, and array formula usage")
	}
	if anyStruggledWith(records, "chart") {
		improvements = append(improvements, "Improve data visualization techniques and interactive dashboard creation")
	}

	var recommendation, resources string
	switch {
	case totalScore >= 8:
		recommendation = fmt.Sprintf("Excellent performance at %s level! You demonstrate strong Excel skills suitable for advanced roles.", skillLevel)
		resources = "- Microsoft's official Power BI and Power Query documentation\n- Advanced Excel courses on LinkedIn Learning or Coursera\n- Excel MVP blogs and forums for cutting-edge techniques"
	case totalScore >= 5:
		recommendation = fmt.Sprintf("Good job at %s level! You have solid Excel knowledge with room for improvement in specific areas.", skillLevel)
		resources = "- ExcelJet.net for advanced function tutorials\n- Chandoo.org for practical Excel applications\n- YouTube channels like ExcelIsFun for detailed walkthroughs"
	default:
		recommendation = fmt.Sprintf("You're currently at %s level. Consider additional Excel training and practice to strengthen your technical skills.", skillLevel)
		resources = "- Microsoft's Excel Essentials training\n- GCF Learn Free Excel tutorials\n- YouTube channels like Leila Gharani for beginner-friendly guides"
	}

	strengthsText := "- Showed effort in completing all questions"
	if len(strengths) > 0 {
		strengthsText = "- " + strings.Join(strengths, "\n- ")
	}

	improvementsText := "- Focus on Excel functions and advanced features"
	if len(improvements) > 0 {
		improvementsText = "- " + strings.Join(improvements, "\n- ")
	}

	return fmt.Sprintf(`**Professional Feedback Report**

**Overall Performance Summary:**
You completed the Excel mock interview with a total score of %d/10 (%.1f%%), which places you at a %s level.

**Strengths:**
%s

**Areas for Improvement:**
%s

**Final Score and Recommendation:**
Total Score: %d/10
Recommendation: %s

**Suggested Resources:**
%s

**Next Steps:**
- Practice with Excel functions and formulas regularly with real-world datasets
- Work on pivot tables and data analysis techniques through guided projects
- Review conditional formatting and data validation for data integrity
- Consider taking advanced Excel courses for professional development
- Apply your skills to solve actual business problems to reinforce learning

Remember that Excel proficiency comes with consistent practice. Keep challenging yourself with new problems and techniques!`,
		totalScore, percentage, skillLevel, strengthsText, improvementsText, totalScore, recommendation, resources)
}

// anyAnswerContains reports whether any record's answer mentions one of the
// terms (case-insensitive)
func anyAnswerContains(records []*session.Record, terms ...string) bool {
	for _, rec := range records {
		answer := strings.ToLower(rec.Answer)
		for _, term := range terms {
			if strings.Contains(answer, term) {
				return true
			}
		}
	}
	return false
}

// anyStruggledWith reports whether any question mentioning the term scored
// below 2
func anyStruggledWith(records []*session.Record, term string) bool {
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Question), term) && rec.Score < 2 {
			return true
		}
	}
	return false
}
