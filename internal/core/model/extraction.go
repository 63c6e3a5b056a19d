package model

// The three extraction schemas mirror the JSON structures the prompt
// templates ask the model to produce. Every field stays addressable even
// when the model omits it: decoding leaves zero values, and Normalize
// replaces nil slices so downstream code never branches on presence.

type GeneralExtraction struct {
	SessionSummary string           `json:"session_summary"`
	GroupDynamics  string           `json:"group_dynamics"`
	Speakers       []GeneralSpeaker `json:"speakers"`
}

type GeneralSpeaker struct {
	SpeakerID            string   `json:"speaker_id"`
	PrimaryConcerns      []string `json:"primary_concerns"`
	EmotionsExpressed    []string `json:"emotions_expressed"`
	RelationshipDynamics *string  `json:"relationship_dynamics"`
	SelfPerception       *string  `json:"self_perception"`
	Challenges           []string `json:"challenges"`
	CopingMechanisms     []string `json:"coping_mechanisms"`
	NotableQuotes        []string `json:"notable_quotes"`
}

type RelationalExtraction struct {
	GroupDynamicsSummary  string                 `json:"group_dynamics_summary"`
	FacilitatorRole       string                 `json:"facilitator_role"`
	PowerDynamics         []PowerDynamic         `json:"power_dynamics"`
	Alliances             []Alliance             `json:"alliances"`
	CommunicationPatterns string                 `json:"communication_patterns"`
	ExternalRelationships []ExternalRelationship `json:"external_relationships"`
}

type PowerDynamic struct {
	Description      string   `json:"description"`
	SpeakersInvolved []string `json:"speakers_involved"`
}

type Alliance struct {
	Speakers []string `json:"speakers"`
	Nature   string   `json:"nature"`
}

type ExternalRelationship struct {
	SpeakerID    string `json:"speaker_id"`
	Relationship string `json:"relationship"`
	Impact       string `json:"impact"`
}

type ProgressExtraction struct {
	SessionProgressSummary string              `json:"session_progress_summary"`
	KeyInsights            []KeyInsight        `json:"key_insights"`
	ResistanceAreas        []ResistanceArea    `json:"resistance_areas"`
	EffectiveInterventions []Intervention      `json:"effective_interventions"`
	ProgressIndicators     []ProgressIndicator `json:"progress_indicators"`
	SuggestedFocusAreas    []FocusArea         `json:"suggested_focus_areas"`
}

type KeyInsight struct {
	SpeakerID    string `json:"speaker_id"`
	Insight      string `json:"insight"`
	Significance string `json:"significance"`
}

type ResistanceArea struct {
	SpeakerID        string `json:"speaker_id"`
	Description      string `json:"description"`
	PossibleApproach string `json:"possible_approach"`
}

type Intervention struct {
	IntervenerID string `json:"intervener_id"`
	Intervention string `json:"intervention"`
	Impact       string `json:"impact"`
}

type ProgressIndicator struct {
	SpeakerID string `json:"speaker_id"`
	Area      string `json:"area"`
	Evidence  string `json:"evidence"`
}

type FocusArea struct {
	SpeakerID string `json:"speaker_id"`
	Area      string `json:"area"`
	Rationale string `json:"rationale"`
}

func (g *GeneralExtraction) Normalize() {
	if g.Speakers == nil {
		g.Speakers = []GeneralSpeaker{}
	}
}

func (r *RelationalExtraction) Normalize() {
	if r.PowerDynamics == nil {
		r.PowerDynamics = []PowerDynamic{}
	}
	if r.Alliances == nil {
		r.Alliances = []Alliance{}
	}
	if r.ExternalRelationships == nil {
		r.ExternalRelationships = []ExternalRelationship{}
	}
}

func (p *ProgressExtraction) Normalize() {
	if p.KeyInsights == nil {
		p.KeyInsights = []KeyInsight{}
	}
	if p.ResistanceAreas == nil {
		p.ResistanceAreas = []ResistanceArea{}
	}
	if p.EffectiveInterventions == nil {
		p.EffectiveInterventions = []Intervention{}
	}
	if p.ProgressIndicators == nil {
		p.ProgressIndicators = []ProgressIndicator{}
	}
	if p.SuggestedFocusAreas == nil {
		p.SuggestedFocusAreas = []FocusArea{}
	}
}
