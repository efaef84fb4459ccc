package catalog

// Category classifies a benchmark task.
type Category string

const (
	CategoryMath            Category = "math"
	CategoryCode            Category = "code"
	CategoryReasoning       Category = "reasoning"
	CategoryAnalysis        Category = "analysis"
	CategorySummarization   Category = "summarization"
	CategoryWritingBusiness Category = "writing_business"
	CategoryWritingCreative Category = "writing_creative"
	CategoryCreative        Category = "creative"
	CategoryFactual         Category = "factual"
)

// Categories returns every known category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryMath,
		CategoryCode,
		CategoryReasoning,
		CategoryAnalysis,
		CategorySummarization,
		CategoryWritingBusiness,
		CategoryWritingCreative,
		CategoryCreative,
		CategoryFactual,
	}
}

// Valid reports whether the category is a known value.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Difficulty grades how hard a task is expected to be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether the difficulty is a known value.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Task is one benchmark prompt with its grading hints. The hints are carried
// into run files for human review; nothing in the harness scores against
// them.
type Task struct {
	ID             string     `json:"id" yaml:"id"`
	Category       Category   `json:"category" yaml:"category"`
	Difficulty     Difficulty `json:"difficulty" yaml:"difficulty"`
	Question       string     `json:"question" yaml:"question"`
	ExpectedAnswer string     `json:"expected_answer" yaml:"expected_answer"`
	EvalCriteria   string     `json:"eval_criteria" yaml:"eval_criteria"`
}
