package recommend

var cannedReplies = []string{
	"I'd be happy to help you find the perfect product! Based on what you're looking for, here are my top recommendations:",
	"Great choice! I've found some fantastic options that match your needs perfectly:",
	"Excellent! Let me show you some products I think you'll love:",
	"Perfect! I've curated these items specifically for you:",
	"Wonderful! Here are some great options that fit your criteria:",
}

const emptyCatalogReply = "Sorry, there are no products available right now. Please check back soon."

// CannedReplies returns a copy of the local reply pool.
func CannedReplies() []string {
	out := make([]string, len(cannedReplies))
	copy(out, cannedReplies)
	return out
}

func pickReply(rnd Rand) string {
	return cannedReplies[rnd.IntN(len(cannedReplies))]
}
