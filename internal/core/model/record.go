package model

// SessionRecord is the merged, speaker-indexed output of one pipeline
// run. Every field is always serialized; sequences default to empty, not
// null, and speaker order is unspecified.
type SessionRecord struct {
	SessionID                 string            `json:"session_id"`
	SessionDate               string            `json:"session_date"`
	SessionSummary            string            `json:"session_summary"`
	GroupDynamics             string            `json:"group_dynamics"`
	RelationalDynamicsSummary string            `json:"relational_dynamics_summary"`
	FacilitatorAssessment     string            `json:"facilitator_assessment"`
	SessionProgressSummary    string            `json:"session_progress_summary"`
	SpeakerMapping            map[string]string `json:"speaker_mapping"`
	Speakers                  []SpeakerRecord   `json:"speakers"`
	PowerDynamics             []PowerDynamic    `json:"power_dynamics"`
	Alliances                 []Alliance        `json:"alliances"`
	CommunicationPatterns     string            `json:"communication_patterns"`
	EffectiveInterventions    []Intervention    `json:"effective_interventions"`
}

// SpeakerRecord combines everything the three extractions said about one
// speaker. The first block comes from the general extraction; the
// accumulated sequences are filtered from the progress and relational
// extractions with the speaker id projected away.
type SpeakerRecord struct {
	SpeakerID             string                `json:"speaker_id"`
	PrimaryConcerns       []string              `json:"primary_concerns"`
	EmotionsExpressed     []string              `json:"emotions_expressed"`
	RelationshipDynamics  *string               `json:"relationship_dynamics"`
	SelfPerception        *string               `json:"self_perception"`
	Challenges            []string              `json:"challenges"`
	CopingMechanisms      []string              `json:"coping_mechanisms"`
	NotableQuotes         []string              `json:"notable_quotes"`
	Insights              []SpeakerInsight      `json:"insights"`
	ResistanceAreas       []SpeakerResistance   `json:"resistance_areas"`
	ProgressIndicators    []SpeakerProgress     `json:"progress_indicators"`
	SuggestedFocusAreas   []SpeakerFocus        `json:"suggested_focus_areas"`
	ExternalRelationships []SpeakerRelationship `json:"external_relationships"`
}

type SpeakerInsight struct {
	Insight      string `json:"insight"`
	Significance string `json:"significance"`
}

type SpeakerResistance struct {
	Description      string `json:"description"`
	PossibleApproach string `json:"possible_approach"`
}

type SpeakerProgress struct {
	Area     string `json:"area"`
	Evidence string `json:"evidence"`
}

type SpeakerFocus struct {
	Area      string `json:"area"`
	Rationale string `json:"rationale"`
}

type SpeakerRelationship struct {
	Relationship string `json:"relationship"`
	Impact       string `json:"impact"`
}
