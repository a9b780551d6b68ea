package services

import "fmt"

func researchPrompt(title, howTo string) string {
	return fmt.Sprintf(`
You are an expert in educational psychology and neuroscience.
Analyze the following teaching strategy and generate 3-4 bullet points for a "Research" section that explains the psychological or neurological basis for why it is effective.

The output must be a single HTML string containing only the <li> elements for a bulleted list.
Each bullet point must be wrapped in <li></li> tags.
Within each bullet point, identify and wrap the most important 1-3 key concepts in <strong></strong> tags.
Do not include the surrounding <ul> or <ol> tags in your response. Do not use markdown.

Here is the strategy:

**Strategy Title:**
%s

**How-To Steps:**
%s

**Example Output:**
<li>Commitment bias signing ahead leverages <strong>consistency drives</strong>, reducing pushback.</li><li>Executive control pre-commitment recruits <strong>prefrontal circuits</strong> for automatic follow-through.</li>
`, title, howTo)
}

func storyHookPrompt(title, howTo string) string {
	return fmt.Sprintf(`
You are a social media expert creating content for teachers.
Your goal is to write a short, compelling "hook" for an Instagram Story about the following teaching strategy.

**Your Task:**
1.  Analyze the provided strategy's title and description.
2.  Identify the core problem it solves or the unique benefit it offers to a teacher.
3.  Write a SINGLE, concise, and intriguing sentence that captures this specific benefit.

**Critical Rules:**
-   **BE SPECIFIC:** Do not use generic phrases that could apply to any strategy (e.g., "improve your classroom," "engage students"). Focus on what makes THIS strategy special.
-   **FOCUS ON THE WHY:** The hook should explain WHY a teacher should care. Do not explain the "how-to."
-   **TONE:** Intriguing and professional.
-   **FORMAT:** Output only the single sentence. No extra formatting, no quotation marks.

**Strategy Title:**
%s

**Strategy Description:**
%s

**Example of a great, specific hook (for a different strategy):**
This simple classroom pact can help you sidestep power struggles before they even begin.
`, title, howTo)
}

func strategySummaryPrompt(title string) string {
	return fmt.Sprintf(`
You are a curriculum designer summarizing a teaching strategy for a weekly preview.
Your goal is to write a single, compelling sentence that describes the core benefit of the strategy.

**Rules:**
- The tone should be professional and encouraging.
- Focus on the main outcome or benefit for teachers or students.
- Output only the single sentence. No extra formatting or quotation marks.

**Strategy Title:**
%s

**Example for a strategy named "Four Corners":**
Get students moving and sharing their opinions with this engaging whole-class discussion activity.
`, title)
}

func summarizeResearchPrompt(research string) string {
	return fmt.Sprintf(`
You are an expert in simplifying complex scientific topics for a general audience.
Take the following research points about a teaching strategy and rewrite them as 2-3 simple, easy-to-understand bullet points.
The goal is to fit this summary comfortably on a social media slide.

**Critical Rules:**
-   Keep the language simple, direct, and jargon-free.
-   Focus on the core benefit for the teacher or student.
-   The output must be a single HTML string containing only the <li> elements.
-   Wrap the most important 1-2 key concepts in each bullet point in <strong></strong> tags.
-   Do not include the surrounding <ul> or <ol> tags. Do not use markdown.

**Original Research:**
%s

**Example Output:**
<li>Pre-committing to choices helps students' brains <strong>follow through automatically</strong>.</li><li>Making a public promise makes students <strong>more likely to stick to it</strong>.</li>
`, research)
}
