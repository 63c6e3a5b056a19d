package transcript

import (
	"fmt"
	"sort"
	"strings"
)

// SpeakerMarker is the token diarization output prefixes each utterance
// with, e.g. "SPEAKER_00: ...".
const SpeakerMarker = "SPEAKER_"

// SpeakerMap assigns each observed speaker id a display alias. Aliases
// are Person_{rank} with rank taken from the lexicographic order of the
// id strings, so "SPEAKER_10" ranks before "SPEAKER_2".
type SpeakerMap map[string]string

// Normalize parses a raw diarized transcript into canonical "id: text"
// lines and the speaker map for the ids it saw.
//
// Fragments are delimited by the speaker marker. A fragment without a
// colon is malformed and silently dropped. A purely numeric candidate id
// is re-prefixed with the marker; anything else is kept verbatim. A raw
// string with no valid fragment yields empty output, not an error.
func Normalize(raw string) (string, SpeakerMap) {
	fragments := strings.Split(strings.TrimSpace(raw), SpeakerMarker)

	var lines []string
	ids := map[string]struct{}{}

	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		parts := strings.SplitN(fragment, ":", 2)
		if len(parts) != 2 {
			continue
		}

		id := strings.TrimSpace(parts[0])
		text := strings.TrimSpace(parts[1])

		if isDigits(id) {
			id = SpeakerMarker + id
		}
		ids[id] = struct{}{}

		lines = append(lines, fmt.Sprintf("%s: %s", id, text))
	}

	ordered := make([]string, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	speakerMap := SpeakerMap{}
	for i, id := range ordered {
		speakerMap[id] = fmt.Sprintf("Person_%d", i+1)
	}

	return strings.Join(lines, "\n"), speakerMap
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
