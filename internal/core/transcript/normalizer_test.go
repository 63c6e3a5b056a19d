package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWellFormed(t *testing.T) {
	raw := "SPEAKER_00:Hi.SPEAKER_1:Hello."

	conversation, speakerMap := Normalize(raw)

	assert.Equal(t, "SPEAKER_00: Hi.\nSPEAKER_1: Hello.", conversation)
	assert.Equal(t, SpeakerMap{
		"SPEAKER_00": "Person_1",
		"SPEAKER_1":  "Person_2",
	}, speakerMap)
}

// Aliases rank by string order, not numeric order: "SPEAKER_10" sorts
// before "SPEAKER_2".
func TestNormalizeLexicographicRanking(t *testing.T) {
	raw := "SPEAKER_2: second. SPEAKER_10: tenth."

	_, speakerMap := Normalize(raw)

	assert.Equal(t, "Person_1", speakerMap["SPEAKER_10"])
	assert.Equal(t, "Person_2", speakerMap["SPEAKER_2"])
}

func TestNormalizeEmptyInput(t *testing.T) {
	conversation, speakerMap := Normalize("")

	assert.Empty(t, conversation)
	assert.Empty(t, speakerMap)
}

func TestNormalizeNoValidFragments(t *testing.T) {
	conversation, speakerMap := Normalize("SPEAKER_no colon here SPEAKER_still none")

	assert.Empty(t, conversation)
	assert.Empty(t, speakerMap)
}

func TestNormalizeDropsMalformedFragments(t *testing.T) {
	raw := "SPEAKER_00: valid one. SPEAKER_garbage without delimiter SPEAKER_01: another valid."

	conversation, speakerMap := Normalize(raw)

	assert.Len(t, speakerMap, 2)
	assert.Contains(t, conversation, "SPEAKER_00: valid one.")
	assert.Contains(t, conversation, "SPEAKER_01: another valid.")
	assert.NotContains(t, conversation, "garbage")
}

func TestNormalizeKeepsNonNumericIDsVerbatim(t *testing.T) {
	raw := "SPEAKER_A1: alphanumeric id. SPEAKER_02: numeric id."

	conversation, speakerMap := Normalize(raw)

	assert.Contains(t, speakerMap, "A1")
	assert.Contains(t, speakerMap, "SPEAKER_02")
	assert.Contains(t, conversation, "A1: alphanumeric id.")
}

func TestNormalizePreservesUtteranceOrder(t *testing.T) {
	raw := "SPEAKER_01: first. SPEAKER_00: second. SPEAKER_01: third."

	conversation, _ := Normalize(raw)

	assert.Equal(t, "SPEAKER_01: first.\nSPEAKER_00: second.\nSPEAKER_01: third.", conversation)
}

func TestNormalizeMapKeysMatchObservedIDs(t *testing.T) {
	raw := "SPEAKER_00: a. SPEAKER_03: b. SPEAKER_00: c."

	_, speakerMap := Normalize(raw)

	assert.Equal(t, SpeakerMap{
		"SPEAKER_00": "Person_1",
		"SPEAKER_03": "Person_2",
	}, speakerMap)
}
