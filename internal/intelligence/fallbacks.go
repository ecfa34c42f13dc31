package intelligence

import "github.com/alexanderramin/tempo/internal/domain"

// Deterministic advisory text used when the LLM is disabled, unreachable,
// or returns nothing usable. The engine treats absent advisory content as
// normal, so these are presentation defaults, not error messages.

var fallbackTips = map[domain.Category]string{
	domain.CategoryFocus:    "One task, full attention. Everything else can wait.",
	domain.CategoryCreative: "Make something rough first. Polish is for later.",
	domain.CategoryChore:    "Start with the part you have been avoiding.",
	domain.CategoryLearning: "Slow is smooth. Aim to explain it back afterwards.",
	domain.CategoryRest:     "Step away from the screen. This time counts too.",
}

var fallbackCelebrations = map[domain.Category]string{
	domain.CategoryFocus:    "Session complete. That was real, uninterrupted work.",
	domain.CategoryCreative: "Done. The rough draft exists now, and that is the hard part.",
	domain.CategoryChore:    "Chore cleared. Future you says thanks.",
	domain.CategoryLearning: "Done. A little every day is how it compounds.",
	domain.CategoryRest:     "Break over. Back to it whenever you are ready.",
}

// DefaultTip returns the canned motivational line for a category.
func DefaultTip(category domain.Category) string {
	if tip, ok := fallbackTips[category]; ok {
		return tip
	}
	return fallbackTips[domain.CategoryFocus]
}

// DefaultCelebration returns the canned completion line for a category.
func DefaultCelebration(category domain.Category) string {
	if msg, ok := fallbackCelebrations[category]; ok {
		return msg
	}
	return fallbackCelebrations[domain.CategoryFocus]
}
