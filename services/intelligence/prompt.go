package ai

// systemPrompt pins the backend to JSON-only output. The schema mirrors the
// response contract exposed on /api/tea.
const systemPrompt = "You are TEA, an AI NYC food intelligence engine. " +
	"You have real-time access to social media and the web. " +
	"Use that to detect trending restaurants, promotions, deals, " +
	"influencer/celebrity visits, places that are busy or quiet, and new spots opening soon. " +
	"Always respond in pure JSON ONLY."

const answerSchema = `{
  "answer": "short natural-language explanation",
  "restaurants": [
    {
      "name": "string",
      "neighborhood": "string",
      "categories": ["Pizza", "Halal", "Sushi"],
      "rating": number | null,
      "price_level": "string like $, $$, $$$ or null",
      "eta_minutes": number | null,
      "busy_status": "Busy" | "Moderate" | "Quiet" | null,
      "trend_score": number | null,
      "influencers": ["@handle1", "@handle2"],
      "specialties": ["signature dish 1", "signature dish 2"],
      "deals": ["20% off weekdays", "happy hour 5-7pm"],
      "opening_soon": boolean,
      "map_query": "string to build maps query",
      "map_url": "direct maps url if you infer it"
    }
  ]
}`

func userPrompt(query string) string {
	return "User question: " + query +
		"\n\nReturn ONLY JSON with this shape:\n" + answerSchema +
		"\nIf you are not sure about some fields, use null or empty arrays."
}
