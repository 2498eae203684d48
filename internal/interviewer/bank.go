package interviewer

// DifficultyTier describes one of the five fixed interview difficulty levels
type DifficultyTier struct {
	Ordinal     int
	Level       string
	Topics      []string
	Description string
}

// The five tiers are fixed at process start and never mutated.
var difficultyTiers = map[int]DifficultyTier{
	1: {
		Ordinal:     1,
		Level:       "Basic",
		Topics:      []string{"Basic formulas", "Simple functions", "Data entry", "Basic formatting"},
		Description: "Beginner Excel skills - basic formulas, simple functions, data entry",
	},
	2: {
		Ordinal:     2,
		Level:       "Intermediate-Basic",
		Topics:      []string{"VLOOKUP", "IF statements", "Basic pivot tables", "Data sorting"},
		Description: "Intermediate Excel skills - lookup functions, conditional logic, basic analysis",
	},
	3: {
		Ordinal:     3,
		Level:       "Intermediate",
		Topics:      []string{"INDEX/MATCH", "Pivot tables", "Data cleaning", "Charts"},
		Description: "Intermediate Excel skills - advanced lookups, data analysis, visualization",
	},
	4: {
		Ordinal:     4,
		Level:       "Advanced-Intermediate",
		Topics:      []string{"Array formulas", "Conditional formatting", "Data validation", "Advanced pivot tables"},
		Description: "Advanced Excel skills - complex formulas, data validation, advanced analysis",
	},
	5: {
		Ordinal:     5,
		Level:       "Advanced",
		Topics:      []string{"Macros", "Financial functions", "Dashboard creation", "Advanced automation"},
		Description: "Expert Excel skills - automation, complex analysis, professional dashboards",
	},
}

// Literal questions used whenever the completion service cannot supply one.
// Each tier has its own list.
var fallbackQuestions = map[int][]string{
	1: {
		"How would you calculate the total sales for a month using a SUM formula?",
		"Explain how to use the AVERAGE function to find the average of a range of numbers.",
		"How would you format cells to display currency values with dollar signs?",
		"What is the difference between relative and absolute cell references in Excel?",
	},
	2: {
		"How would you use VLOOKUP to find the price of a product based on its ID?",
		"Explain how to use the IF function to categorize data into different performance levels.",
		"How would you create a basic pivot table to summarize sales data by region?",
		"How would you sort data by multiple columns in Excel?",
	},
	3: {
		"How would you use INDEX and MATCH functions together to perform a two-way lookup?",
		"Explain how to clean data with duplicate entries and inconsistent formatting.",
		"How would you create a chart that automatically updates when new data is added?",
		"How would you use conditional formatting to highlight cells based on specific criteria?",
	},
	4: {
		"How would you create an array formula to calculate the sum of values based on multiple conditions?",
		"Explain how to set up data validation rules to ensure data integrity in Excel.",
		"How would you create a dynamic dashboard using pivot tables, slicers, and charts?",
		"How would you use advanced conditional formatting with custom formulas?",
	},
	5: {
		"How would you create a macro to automate repetitive data entry tasks?",
		"Explain how to use financial functions like PMT, FV, and NPV for loan calculations.",
		"How would you build a comprehensive dashboard with multiple data sources and interactive elements?",
		"How would you implement advanced data analysis using Power Query and Power Pivot?",
	},
}

// TierByOrdinal returns the tier definition for an ordinal 1..5
func TierByOrdinal(ordinal int) (DifficultyTier, bool) {
	tier, ok := difficultyTiers[ordinal]
	return tier, ok
}

// TierLabel returns the display label for an ordinal, or "Unknown"
func TierLabel(ordinal int) string {
	if tier, ok := difficultyTiers[ordinal]; ok {
		return tier.Level
	}
	return "Unknown"
}

// FallbackQuestions returns the literal question list for a tier
func FallbackQuestions(ordinal int) []string {
	return fallbackQuestions[ordinal]
}
