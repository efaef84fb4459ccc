package catalog

// builtin is the stock benchmark set. Order is load order; Builtin and Filter
// preserve it so runs and reports line up across machines.
var builtin = []Task{
	{
		ID:             "math_arithmetic",
		Category:       CategoryMath,
		Difficulty:     DifficultyEasy,
		Question:       "What is 847 × 23? Show your work step by step.",
		ExpectedAnswer: "19481",
		EvalCriteria:   "Correct final answer of 19481 with clear working shown",
	},
	{
		ID:         "math_word_problem",
		Category:   CategoryMath,
		Difficulty: DifficultyMedium,
		Question: "A train leaves Station A at 9:00 AM traveling at 60 mph. " +
			"Another train leaves Station B (180 miles away) at 10:00 AM traveling toward Station A at 40 mph. " +
			"At what time do they meet?",
		ExpectedAnswer: "11:12 AM (or 11:11-11:13 range acceptable)",
		EvalCriteria:   "Correct time calculation with proper reasoning about relative motion",
	},
	{
		ID:         "code_debug",
		Category:   CategoryCode,
		Difficulty: DifficultyEasy,
		Question: "Find and fix the bug in this Python code:\n\n" +
			"```python\n" +
			`def calculate_average(numbers):
    total = 0
    for num in numbers:
        total += num
    return total / len(numbers)

result = calculate_average([])
print(result)
` + "```\n\nWhat's the bug and how would you fix it?",
		ExpectedAnswer: "ZeroDivisionError when empty list; add check for empty list",
		EvalCriteria:   "Identifies division by zero error and provides reasonable fix",
	},
	{
		ID:         "code_explain",
		Category:   CategoryCode,
		Difficulty: DifficultyMedium,
		Question: "Explain what a decorator is in Python. " +
			"Give a simple example of a decorator that logs when a function is called.",
		ExpectedAnswer: "Function that wraps another function; working @log example",
		EvalCriteria:   "Clear explanation of decorator concept with working code example",
	},
	{
		ID:         "reasoning_logic",
		Category:   CategoryReasoning,
		Difficulty: DifficultyMedium,
		Question: "If all Bloops are Razzles, and all Razzles are Lazzles, " +
			"are all Bloops definitely Lazzles? Explain your reasoning.",
		ExpectedAnswer: "Yes, by transitive property",
		EvalCriteria:   "Correct answer with clear logical explanation (syllogism/transitivity)",
	},
	{
		ID:         "reasoning_multistep",
		Category:   CategoryReasoning,
		Difficulty: DifficultyHard,
		Question: "A farmer has a fox, a chicken, and a bag of grain. " +
			"He needs to cross a river in a boat that can only carry him and one item at a time. " +
			"If left alone together, the fox will eat the chicken, and the chicken will eat the grain. " +
			"How can he get everything across safely? List the steps.",
		ExpectedAnswer: "Classic river crossing: chicken first, return, fox/grain, bring chicken back, other item, return, chicken last",
		EvalCriteria:   "Correct sequence of moves that prevents any eating; clear step-by-step solution",
	},
	{
		ID:         "analysis_argument",
		Category:   CategoryAnalysis,
		Difficulty: DifficultyMedium,
		Question: `Evaluate this argument and identify any logical flaws:

"Sales of ice cream increase during summer months. Crime rates also increase during summer months. Therefore, eating ice cream causes crime."

What's wrong with this reasoning?`,
		ExpectedAnswer: "Correlation vs causation fallacy; third variable (heat/summer) causes both",
		EvalCriteria:   "Identifies correlation vs causation fallacy; mentions confounding variable (weather/heat)",
	},
	{
		ID:         "analysis_tradeoffs",
		Category:   CategoryAnalysis,
		Difficulty: DifficultyMedium,
		Question: "A startup is deciding between building their app as a native mobile app (iOS/Android separately) " +
			"or using a cross-platform framework like React Native. " +
			"What are the key tradeoffs they should consider? List 3 pros and 3 cons of each approach.",
		ExpectedAnswer: "Native: better performance, full API access, higher cost; Cross-platform: faster dev, one codebase, some limitations",
		EvalCriteria:   "Balanced analysis covering performance, development speed, cost, maintenance, and platform-specific features",
	},
	{
		ID:         "summarize_technical",
		Category:   CategorySummarization,
		Difficulty: DifficultyMedium,
		Question: `Summarize the following technical document excerpt in 3-4 bullet points, capturing the key information:

The Model Context Protocol (MCP) is an open standard that enables seamless integration between AI applications and external data sources. It provides a unified protocol for connecting language models to tools, databases, and APIs. MCP uses a client-server architecture where the AI application acts as a client connecting to MCP servers that expose resources and capabilities. Key features include: resource discovery allowing clients to find available data sources, tool invocation for executing actions, and prompt templates for structured interactions. The protocol supports both local servers running on the same machine and remote servers accessed over the network. Security is handled through capability-based access control, where servers declare what operations they support and clients request only the capabilities they need. MCP aims to replace the fragmented landscape of custom integrations with a single, standardized approach that any AI application can adopt.`,
		ExpectedAnswer: "Key points: open standard for AI-data integration, client-server architecture, features (resources/tools/prompts), security via capabilities",
		EvalCriteria:   "Accurate summary capturing: what MCP is, architecture, key features, and security model",
	},
	{
		ID:         "summarize_business",
		Category:   CategorySummarization,
		Difficulty: DifficultyMedium,
		Question: `Summarize this quarterly report excerpt into an executive summary (2-3 sentences):

Q3 2025 showed mixed results for Acme Corp. Revenue increased 12% year-over-year to 4.2 billion dollars, driven primarily by strong performance in the cloud services division which grew 34%. However, the legacy hardware division continued its decline, dropping 18% as customers migrate to cloud solutions. Operating margins compressed by 2 percentage points to 15% due to increased R&D spending on AI initiatives. The company announced plans to acquire DataFlow Inc. for 800 million dollars to accelerate its data analytics capabilities. Customer retention remained strong at 94%, though new customer acquisition slowed compared to Q2. The company reaffirmed its full-year revenue guidance of 17 billion dollars but lowered profit guidance citing continued investment in strategic priorities.`,
		ExpectedAnswer: "Revenue up 12% to 4.2B (cloud strong, hardware declining), margins down due to R&D spend, acquiring DataFlow for 800M",
		EvalCriteria:   "Captures key metrics (revenue, growth rates, margins), strategic moves (acquisition), and outlook in concise format",
	},
	{
		ID:         "writing_email",
		Category:   CategoryWritingBusiness,
		Difficulty: DifficultyEasy,
		Question: "Write a professional email (3-4 sentences) declining a meeting request due to a scheduling conflict, " +
			"while suggesting alternative times next week.",
		ExpectedAnswer: "Professional tone, clear decline, offers alternatives, polite closing",
		EvalCriteria:   "Professional tone, clear communication, offers specific alternatives, appropriate length",
	},
	{
		ID:         "writing_proposal",
		Category:   CategoryWritingBusiness,
		Difficulty: DifficultyMedium,
		Question: "Write an opening paragraph (4-5 sentences) for a business proposal to a potential client. " +
			"The proposal is for a website redesign project. " +
			"The client is a mid-sized law firm that wants to modernize their online presence and improve lead generation.",
		ExpectedAnswer: "Professional, addresses client needs, hints at solution, establishes credibility",
		EvalCriteria:   "Professional tone, addresses specific client pain points, positions value proposition, appropriate for law firm audience",
	},
	{
		ID:         "writing_story_opening",
		Category:   CategoryWritingCreative,
		Difficulty: DifficultyMedium,
		Question: "Write the opening paragraph (4-5 sentences) of a mystery story set in a small coastal town. " +
			"Establish atmosphere and hint at something unusual.",
		ExpectedAnswer: "Atmospheric, sets scene, introduces tension/mystery, engaging hook",
		EvalCriteria:   "Evocative description, clear setting, creates intrigue, strong narrative voice",
	},
	{
		ID:         "writing_metaphor",
		Category:   CategoryWritingCreative,
		Difficulty: DifficultyEasy,
		Question: "Create an original metaphor comparing time to something unexpected " +
			"(not common metaphors like 'time is money' or 'time flies'). Explain why this metaphor works.",
		ExpectedAnswer: "Original metaphor with thoughtful explanation of the comparison",
		EvalCriteria:   "Originality (not cliché), apt comparison, clear explanation of how the metaphor illuminates something about time",
	},
	{
		ID:             "creative_analogy",
		Category:       CategoryCreative,
		Difficulty:     DifficultyEasy,
		Question:       "Complete this analogy and explain why: Book is to Library as _____ is to Museum.",
		ExpectedAnswer: "Artifact/Exhibit/Painting (or similar collectible item)",
		EvalCriteria:   "Reasonable completion with clear explanation of the relationship",
	},
	{
		ID:             "factual_science",
		Category:       CategoryFactual,
		Difficulty:     DifficultyEasy,
		Question:       "Why is the sky blue? Explain in 2-3 sentences suitable for a 10-year-old.",
		ExpectedAnswer: "Rayleigh scattering; blue light scattered more than other colors",
		EvalCriteria:   "Scientifically accurate but age-appropriate explanation",
	},
}
