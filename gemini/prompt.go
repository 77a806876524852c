package gemini

import (
	"fmt"
	"strings"

	"github.com/docbuzz/docbuzz"
)

// PostExamples are reference posts the model is asked to imitate. They
// establish the house voice: bold opener, capability intro, friction
// removal, call to action.
var PostExamples = []string{
	"🚨 Just launched:\nMeet Verify by http://kluster.ai: Out-of-the-box reliability for LLMs.\n\nA drop-in API that flags hallucinations, false claims, and low-quality outputs before they reach users or downstream tools.\n\nNo fine-tuning. No thresholds. No infra changes.\n🔗 https://kluster.ai/verify-by-kluster.ai",
	"Deploy AI without fear.\n\nA single hallucination can shatter customer trust or derail critical processes.\n\nEvery AI deployment faces the same critical question: \u201cHow do we know when our model gets it wrong?\u201d\n\nIn our latest blog about Verify by http://kluster.ai, our new reliability tool for LLMs, we break down how it helps teams catch mistakes before they reach production.\n\nRead more here: https://bit.ly/45gbcRz",
	"The Hugging Face model you need isn\u2019t hosted?\nhttp://kluster.ai lets you run it anyway.\n\nSpin up a private, production-ready endpoint in ~30 mins using Dedicated Deployments.\n\n🧠 https://docs.kluster.ai/get-started/dedicated-deployments/",
}

// DefaultMission is used when a request does not set one.
const DefaultMission = "Convert readers into kluster.ai users"

// BuildPostPrompt renders the full generation prompt for a post request.
// Empty tone, audience, and mission fields fall back to their defaults.
func BuildPostPrompt(req docbuzz.PostRequest) string {
	tone := req.Tone
	if tone == "" {
		tone = docbuzz.DefaultTone
	}
	audience := req.Audience
	if audience == "" {
		audience = docbuzz.DefaultAudience
	}
	mission := req.Mission
	if mission == "" {
		mission = DefaultMission
	}

	var sb strings.Builder
	sb.WriteString("You are kluster.ai's senior social media strategist. You write posts that drive signups.\n\n")
	fmt.Fprintf(&sb, "DOCUMENTATION CONTEXT FOR %s - %s:\n%s\n\n", req.Topic, req.Subtopic, req.Context)
	fmt.Fprintf(&sb, "TARGET: %s\n", audience)
	fmt.Fprintf(&sb, "TONE: %s\n", tone)
	fmt.Fprintf(&sb, "MISSION: %s\n\n", mission)
	sb.WriteString("KLUSTER.AI POST EXAMPLES TO FOLLOW:\n")
	sb.WriteString(strings.Join(PostExamples, "\n\n---\n\n"))
	sb.WriteString("\n\nTake all these examples into consideration to craft the perfect post.\n")
	sb.WriteString("Try to reference something from the docs passed as context.\n\n")
	sb.WriteString(`TEMPLATE STRUCTURE ANALYSIS:
1. ATTENTION: Hooks the reader with urgency, novelty, or a bold claim.
2. INTRO: Clearly introduces a kluster.ai capability or update.
3. BENEFIT: Explains capability and impact based on documentation context.
4. FRICTION REMOVAL: "No [pain]. No [pain]. No [pain]."
5. CTA: Clean branded link or resource.

YOUR TASK:
`)
	fmt.Fprintf(&sb, "Create a post about %s using this structure.\n\n", req.Subtopic)
	sb.WriteString(`INSTRUCTIONS:
- Mine the documentation context for specific technical details
- Identify real pain points this kluster.ai capability solves
- Use the "No X. No Y. No Z." pattern with actual friction points from docs
- Include "http://kluster.ai" naturally
- Match kluster.ai's confident, technical tone
- Stay under 280 characters
- Focus on business impact, not just features

Extract insights directly from the provided documentation context. Do not add generic claims not supported by the docs.

Output only the post text.`)
	return sb.String()
}
