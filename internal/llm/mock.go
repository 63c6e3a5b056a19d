package llm

import (
	"context"
	"strings"
)

// MockClient returns canned extraction results so the pipeline can run
// end to end without an API key or network access. Responses are chosen
// by recognizing which extraction template produced the prompt.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (c *MockClient) Generate(ctx context.Context, req Request) (string, error) {
	switch {
	case strings.Contains(req.Prompt, "relational dynamics"):
		return mockRelationalResponse, nil
	case strings.Contains(req.Prompt, "therapeutic progress"):
		return mockProgressResponse, nil
	case strings.Contains(req.Prompt, "mental health and emotional"):
		return mockGeneralResponse, nil
	default:
		return `{"mock_response": "This is a mock response", "prompt_type": "unknown"}`, nil
	}
}

const mockGeneralResponse = `{
  "session_summary": "This session focused on emotional expression and coping strategies.",
  "group_dynamics": "Participants showed support for each other's challenges.",
  "speakers": [
    {
      "speaker_id": "SPEAKER_00",
      "primary_concerns": ["emotional disconnection", "depression"],
      "emotions_expressed": ["emptiness", "frustration"],
      "relationship_dynamics": "Difficulty communicating emotional needs with spouse",
      "self_perception": "Sees self as emotionally unavailable",
      "challenges": ["expressing emotions", "connecting with others"],
      "coping_mechanisms": ["distraction through work", "medication"],
      "notable_quotes": ["I don't even know what I'm feeling half the time. It's just this emptiness."]
    },
    {
      "speaker_id": "SPEAKER_01",
      "primary_concerns": ["facilitating group discussion"],
      "emotions_expressed": ["empathy", "curiosity"],
      "relationship_dynamics": "Supportive of all group members",
      "self_perception": null,
      "challenges": null,
      "coping_mechanisms": null,
      "notable_quotes": ["What do you notice in your body when you're feeling this way?"]
    }
  ]
}`

const mockRelationalResponse = `{
  "group_dynamics_summary": "The group shows a pattern of mutual support with the facilitator guiding discussions.",
  "facilitator_role": "The facilitator creates a safe space and redirects conversations when needed.",
  "power_dynamics": [
    {
      "description": "The facilitator directs the flow of conversation",
      "speakers_involved": ["SPEAKER_01", "SPEAKER_02"]
    }
  ],
  "alliances": [
    {
      "speakers": ["SPEAKER_02", "SPEAKER_03"],
      "nature": "Shared experience of feeling overwhelmed"
    }
  ],
  "communication_patterns": "Speaker 01 tends to ask questions while others share personal experiences.",
  "external_relationships": [
    {
      "speaker_id": "SPEAKER_00",
      "relationship": "Marriage with communication difficulties",
      "impact": "Creates feelings of isolation and inadequacy"
    }
  ]
}`

const mockProgressResponse = `{
  "session_progress_summary": "The session showed several moments of insight and vulnerability.",
  "key_insights": [
    {
      "speaker_id": "SPEAKER_04",
      "insight": "Recognition of using work to avoid emotional processing",
      "significance": "First step toward addressing avoidance patterns"
    }
  ],
  "resistance_areas": [
    {
      "speaker_id": "SPEAKER_00",
      "description": "Difficulty engaging with emotional content",
      "possible_approach": "Continued gentle exploration of physical sensations of emotions"
    }
  ],
  "effective_interventions": [
    {
      "intervener_id": "SPEAKER_01",
      "intervention": "Normalizing difficult thoughts",
      "impact": "Reduced shame around uncomfortable thoughts"
    }
  ],
  "progress_indicators": [
    {
      "speaker_id": "SPEAKER_02",
      "area": "Self-compassion",
      "evidence": "Attempting to challenge negative self-talk"
    }
  ],
  "suggested_focus_areas": [
    {
      "speaker_id": "SPEAKER_03",
      "area": "Work-life balance",
      "rationale": "Anxiety tied strongly to productivity and work identity"
    }
  ]
}`
