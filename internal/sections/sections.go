// Package sections splits raw resume text into named sections using
// header-pattern heuristics.
package sections

import (
	"strings"
)

// Unknown receives any text not claimed by a recognized header, including an
// entire resume that has no recognizable headers at all.
const Unknown = "unknown"

// Map holds each detected section's raw text block keyed by section name.
type Map map[string]string

// headerSynonyms lists every recognized section in a fixed order together
// with the header phrases that open it. The order is the tie-break when a
// line could match more than one section: exact matches are tried across the
// whole list before any substring match, then earlier entries win.
var headerSynonyms = []struct {
	name     string
	synonyms []string
}{
	{"contact_info", []string{"contact information", "contact info", "contact", "personal information", "personal details"}},
	{"summary", []string{"professional summary", "career objective", "summary", "objective", "profile", "about me"}},
	{"experience", []string{"work experience", "employment history", "work history", "professional experience", "career history", "experience"}},
	{"education", []string{"academic background", "academic qualifications", "education", "qualifications"}},
	{"skills", []string{"technical skills", "core competencies", "skills", "competencies", "expertise", "technologies"}},
	{"projects", []string{"personal projects", "key projects", "projects", "portfolio"}},
	{"certifications", []string{"certifications", "certificates", "licenses", "accreditations"}},
	{"achievements", []string{"achievements", "accomplishments", "awards", "honors"}},
	{"languages", []string{"language proficiency", "languages"}},
	{"interests", []string{"interests", "hobbies", "activities"}},
	{"references", []string{"references", "referees"}},
	{"publications", []string{"publications", "papers", "research"}},
	{"additional", []string{"additional information", "additional", "miscellaneous", "other"}},
}

// Detect scans resume text line by line and groups it into named sections.
// A line recognized as a header closes the previous section and opens a new
// one; every other line, blank lines included, is appended verbatim to the
// current section. Text before the first header lands in Unknown, as does
// the whole resume when no header is ever found.
func Detect(resumeText string) Map {
	result := Map{}
	if strings.TrimSpace(resumeText) == "" {
		return result
	}

	current := Unknown
	var buffer []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(buffer, "\n"))
		if content != "" {
			if existing, ok := result[current]; ok {
				result[current] = existing + "\n" + content
			} else {
				result[current] = content
			}
		}
		buffer = buffer[:0]
	}

	for _, line := range strings.Split(resumeText, "\n") {
		if name, ok := MatchHeader(line); ok {
			flush()
			current = name
			continue
		}
		buffer = append(buffer, line)
	}
	flush()

	return result
}

// MatchHeader reports whether a line is a section header and which section
// it opens. Markdown hashes and common decoration are stripped before
// matching; exact synonym equality beats substring containment.
func MatchHeader(line string) (string, bool) {
	header := normalizeHeader(line)
	if header == "" {
		return "", false
	}

	for _, entry := range headerSynonyms {
		for _, synonym := range entry.synonyms {
			if header == synonym {
				return entry.name, true
			}
		}
	}
	for _, entry := range headerSynonyms {
		for _, synonym := range entry.synonyms {
			if strings.Contains(header, synonym) {
				return entry.name, true
			}
		}
	}
	return "", false
}

func normalizeHeader(line string) string {
	header := strings.TrimSpace(line)
	header = strings.TrimLeft(header, "#")
	header = strings.Trim(header, "*_")
	header = strings.TrimSuffix(strings.TrimSpace(header), ":")
	return strings.ToLower(strings.TrimSpace(header))
}
