package domain

import "strings"

// DefaultExamples are the example posts offered when the user has not
// supplied their own. They steer the generated posts toward a crypto and
// tech persona.
var DefaultExamples = []string{
	`Mf*<krs always find $ to invest when the market is "UP ONLY" & seemingly easy money is on the table!`,
	"I 👁️ a lot more people waking up to $TAO",
	"$TAO broke resistance of the downwards trend line.",
	"You have 2 CHOICES: 1. Position yourself before the PUMPS = WIN 2. Chase the PUMPS = LOSE",
	"An easy $100M A.I. agent infra project sitting at $25M & you're messing about with single agents?",
	"$ETH & the gas fees — sort it out",
	"LFG $BTC We did $100k! Currently $103k - it was inevitable.",
	"It's ONLY EASY NOW because you took the hard route previously.",
	"AI - AI Agents are the play.",
	"ALL INVESTMENTS are just vehicles to wealth.",
}

// ParseExamples splits newline separated user input into example posts.
// Lines are trimmed and blank lines are dropped; order is preserved.
// The result is never nil.
func ParseExamples(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	return CleanExamples(lines)
}

// CleanExamples trims each example and drops the ones that are empty.
func CleanExamples(examples []string) []string {
	cleaned := make([]string, 0, len(examples))
	for _, e := range examples {
		if e = strings.TrimSpace(e); e != "" {
			cleaned = append(cleaned, e)
		}
	}
	return cleaned
}
