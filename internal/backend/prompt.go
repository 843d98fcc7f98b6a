package backend

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/tripplan/internal/search"
)

// PlannerSystemPrompt sets the persona used for itinerary generation.
const PlannerSystemPrompt = "You are a professional travel planner who writes detailed, practical travel plans. " +
	"Your answers are clearly structured, accurate and sensible."

// SummarizerSystemPrompt sets the persona used to summarize search results.
const SummarizerSystemPrompt = "You are a travel research assistant. You summarize web search results " +
	"into a short, factual answer and never invent facts that are not in the results."

const planFormat = `Please provide the travel plan in the following format:

## Trip Overview
- Destination: [destination name]
- Number of days: [days]
- Best season: [best time to travel]

## Daily Itinerary

### Day 1: [date/theme]
**Morning:**
- [specific activities and times]
- [attraction names and addresses]

**Afternoon:**
- [specific activities and times]
- [attraction names and addresses]

**Evening:**
- [specific activities and times]
- [restaurant recommendations]

**Accommodation:**
- [hotel/guesthouse name and price range]

**Getting around:**
- [transport options and routes]

### Day 2: [date/theme]
[continue in the same format...]

## Practical Information
- **Local transport:** [transport advice]
- **Food:** [local dishes and restaurants]
- **Notes:** [important tips]
- **Budget estimate:** [daily/total budget advice]

Make sure the plan is realistic and detailed, with concrete attractions, restaurants and activities.`

// BuildPlanPrompt builds the user prompt for a plan request. Budget and
// preferences are only mentioned when set.
func BuildPlanPrompt(days, destination, budget, preferences string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please create a detailed %s-day travel plan for me. The destination is %s.\n\n", days, destination)
	if budget != "" {
		fmt.Fprintf(&b, "Budget: %s\n\n", budget)
	}
	if preferences != "" {
		fmt.Fprintf(&b, "Interests: %s\n\n", preferences)
	}
	b.WriteString(planFormat)
	return b.String()
}

// BuildSummaryPrompt asks for a summary of results answering query.
func BuildSummaryPrompt(query string, results []search.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\nSearch results:\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "\n[%d] %s\n%s\n%s\n", i+1, r.Title, r.URL, r.Snippet)
	}
	b.WriteString("\nSummarize what these results say about the question in a few short paragraphs. " +
		"Refer to sources by their number in brackets.")
	return b.String()
}

// snippetSummary is the fallback summary used when the model is unavailable.
func snippetSummary(results []search.Result) string {
	var parts []string
	for _, r := range results {
		if r.Snippet == "" {
			continue
		}
		if r.Title != "" {
			parts = append(parts, r.Title+": "+r.Snippet)
		} else {
			parts = append(parts, r.Snippet)
		}
	}
	return strings.Join(parts, "\n\n")
}
