package response

import "strings"

type suggestionRule struct {
	triggers []string
	pool     []string
}

// Ordered: the first rule whose trigger appears in the input or the recent
// conversation context wins.
var suggestionRules = []suggestionRule{
	{
		triggers: []string{"hungry", "food"},
		pool: []string{
			"Feeling hungry? Try our most popular dishes!",
			"How about exploring restaurants with the fastest delivery?",
		},
	},
	{
		triggers: []string{"budget", "cheap", "affordable"},
		pool: []string{
			"Looking for budget-friendly options? I can show you dishes under ₹150!",
			"Want to see today's best offers and discounts?",
		},
	},
	{
		triggers: []string{"spicy", "hot"},
		pool: []string{
			"Craving something spicy? Our biryani and curry options pack a punch!",
			"How about some spicy Chinese dishes?",
		},
	},
	{
		triggers: []string{"vegetarian", "veg"},
		pool: []string{
			"We have amazing vegetarian options! Want to see them?",
			"Try our South Indian dishes, mostly vegetarian and delicious!",
		},
	},
}

// FollowUpSuggestion returns a nudge keyed on words from the current input
// or the recent conversation, or "" when nothing matches.
func FollowUpSuggestion(input, context string) string {
	haystack := strings.ToLower(input + " " + context)
	for _, rule := range suggestionRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(haystack, trigger) {
				return rule.pool[0]
			}
		}
	}
	return ""
}
