package prompt

import (
	"fmt"

	"github.com/sessionlab/therapynotes/internal/config"
)

// Template names. Default-record selection downstream dispatches on
// these, never on call order.
const (
	GeneralTherapyExtraction = "general_therapy_extraction"
	RelationalDynamics       = "relational_dynamics"
	TherapeuticProgress      = "therapeutic_progress"
)

// Template pairs a name with instruction text carrying a single %s
// substitution point for the conversation transcript.
type Template struct {
	Name        string
	Instruction string
}

func (t Template) Render(conversation string) string {
	return fmt.Sprintf(t.Instruction, conversation)
}

// Set holds the three fixed extraction templates.
type Set struct {
	General    Template
	Relational Template
	Progress   Template
}

func DefaultSet() Set {
	return Set{
		General:    Template{Name: GeneralTherapyExtraction, Instruction: generalInstruction},
		Relational: Template{Name: RelationalDynamics, Instruction: relationalInstruction},
		Progress:   Template{Name: TherapeuticProgress, Instruction: progressInstruction},
	}
}

// WithOverrides replaces instruction texts with non-empty config values.
func (s Set) WithOverrides(p config.Prompts) Set {
	if p.General != "" {
		s.General.Instruction = p.General
	}
	if p.Relational != "" {
		s.Relational.Instruction = p.Relational
	}
	if p.Progress != "" {
		s.Progress.Instruction = p.Progress
	}
	return s
}

const generalInstruction = `I have a transcript from a group therapy session. Please analyze this conversation and extract key mental health and emotional information in a structured JSON format.

Conversation transcript:
%s

Please extract the following information for each speaker:
1. Emotions expressed
2. Mental health concerns mentioned or implied
3. Relationship issues discussed
4. Self-perception issues
5. Key challenges or struggles
6. Coping mechanisms mentioned

Format your response as a valid JSON object with the following structure:
{
    "session_summary": "Brief summary of the overall session",
    "group_dynamics": "Brief description of how participants interact",
    "speakers": [
        {
            "speaker_id": "Speaker ID",
            "primary_concerns": ["concern1", "concern2", ...],
            "emotions_expressed": ["emotion1", "emotion2", ...],
            "relationship_dynamics": "Description of relationship issues",
            "self_perception": "Description of self-perception issues",
            "challenges": ["challenge1", "challenge2", ...],
            "coping_mechanisms": ["mechanism1", "mechanism2", ...],
            "notable_quotes": ["quote1", "quote2", ...]
        },
        ...
    ]
}

Important guidelines:
- Only include information explicitly stated in the conversation
- Avoid making diagnostic statements or clinical judgments
- If information is unclear or not mentioned, use null values
- Focus on emotional content and interpersonal dynamics
- Identify any potential safety concerns (suicidal ideation, abuse, etc.)`

const relationalInstruction = `I have a transcript from a group therapy session. Please focus specifically on analyzing the relational dynamics between participants.

Conversation transcript:
%s

Please extract and analyze:
1. Power dynamics in the group
2. Alliance patterns (who supports whom)
3. Communication patterns (who speaks to whom, who interrupts)
4. Emotional reactions between participants
5. Mentioned relationships outside the group

Format your response as a valid JSON object with the following structure:
{
    "group_dynamics_summary": "Overall analysis of group dynamics",
    "facilitator_role": "Analysis of how the facilitator/therapist functions",
    "power_dynamics": [
        {
            "description": "Description of a power dynamic",
            "speakers_involved": ["SPEAKER_ID1", "SPEAKER_ID2"]
        },
        ...
    ],
    "alliances": [
        {
            "speakers": ["SPEAKER_ID1", "SPEAKER_ID2"],
            "nature": "Description of alliance"
        },
        ...
    ],
    "communication_patterns": "Analysis of who speaks to whom",
    "external_relationships": [
        {
            "speaker_id": "SPEAKER_ID",
            "relationship": "Description of external relationship",
            "impact": "How this affects the speaker"
        },
        ...
    ]
}`

const progressInstruction = `I have a transcript from a group therapy session. Please analyze this conversation for signs of therapeutic progress, insights, and areas that may need further attention.

Conversation transcript:
%s

Please extract and analyze:
1. Moments of insight or breakthrough
2. Areas of resistance or avoidance
3. Therapeutic interventions and their effectiveness
4. Evidence of progress in addressing issues
5. Areas that may need further therapeutic attention

Format your response as a valid JSON object with the following structure:
{
    "session_progress_summary": "Overall assessment of progress in this session",
    "key_insights": [
        {
            "speaker_id": "SPEAKER_ID",
            "insight": "Description of insight",
            "significance": "Why this insight matters"
        },
        ...
    ],
    "resistance_areas": [
        {
            "speaker_id": "SPEAKER_ID",
            "description": "Description of resistance",
            "possible_approach": "Suggestion for addressing"
        },
        ...
    ],
    "effective_interventions": [
        {
            "intervener_id": "SPEAKER_ID of therapist/member",
            "intervention": "Description of intervention",
            "impact": "Observed impact"
        },
        ...
    ],
    "progress_indicators": [
        {
            "speaker_id": "SPEAKER_ID",
            "area": "Area of progress",
            "evidence": "Evidence from transcript"
        },
        ...
    ],
    "suggested_focus_areas": [
        {
            "speaker_id": "SPEAKER_ID",
            "area": "Area needing attention",
            "rationale": "Why this needs attention"
        },
        ...
    ]
}`
