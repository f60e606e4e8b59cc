// Package jobdesc extracts structure and weighted keywords from raw job
// description text.
package jobdesc

import (
	"strings"

	"github.com/jonathan/ats-matcher/internal/ngram"
	"github.com/jonathan/ats-matcher/internal/taxonomy"
	"github.com/jonathan/ats-matcher/internal/textnorm"
)

// Weight multipliers applied per line while building the keyword map.
const (
	weightHeader       = 2.0
	weightAllCaps      = 1.8
	weightBold         = 1.5
	weightBullet       = 1.2
	weightReqSection   = 1.5
	weightReqLanguage  = 1.3
	weightTaxonomyGram = 1.5
	weightPlainGram    = 1.2
)

const (
	titleScanLines = 5
	maxTitleLen    = 80
)

// Elements is the structured view of one job description.
type Elements struct {
	Title            string
	Requirements     []string
	Responsibilities []string
	Sections         map[string]string
	Keywords         map[string]float64
}

// TotalKeywords returns how many distinct weighted keywords were extracted.
func (e *Elements) TotalKeywords() int {
	return len(e.Keywords)
}

// Process parses a job description into its title, requirement and
// responsibility lists, named sections, and a weighted keyword map. Keyword
// weight accumulates additively across every occurrence, scaled by the
// line's emphasis (headers, caps, bold, bullets) and by the section it
// appears in.
func Process(text string) *Elements {
	elements := &Elements{
		Requirements:     []string{},
		Responsibilities: []string{},
		Sections:         map[string]string{},
		Keywords:         map[string]float64{},
	}
	if strings.TrimSpace(text) == "" {
		return elements
	}

	text = textnorm.FlattenHTML(text)
	lines := strings.Split(text, "\n")
	elements.Title = extractTitle(lines)

	active := "general"
	var sectionBuf []string
	flush := func() {
		content := strings.TrimSpace(strings.Join(sectionBuf, "\n"))
		if content != "" {
			if existing, ok := elements.Sections[active]; ok {
				content = existing + "\n" + content
			}
			elements.Sections[active] = content
		}
		sectionBuf = sectionBuf[:0]
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if name, ok := classifyHeader(trimmed); ok {
			flush()
			active = name
		} else {
			sectionBuf = append(sectionBuf, line)
			if bullet, ok := stripBullet(trimmed); ok {
				switch active {
				case "requirements":
					elements.Requirements = append(elements.Requirements, bullet)
				case "responsibilities":
					elements.Responsibilities = append(elements.Responsibilities, bullet)
				}
			}
		}
		accumulateKeywords(elements.Keywords, trimmed, active)
	}
	flush()

	return elements
}

// extractTitle scans the first few lines for an explicit title label, then
// falls back to a short, plausible first line.
func extractTitle(lines []string) string {
	labels := []string{"job title:", "position:", "role:"}
	limit := titleScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		for _, label := range labels {
			if strings.HasPrefix(lower, label) {
				return strings.TrimSpace(trimmed[len(label):])
			}
		}
	}

	if len(lines) == 0 {
		return ""
	}
	first := strings.TrimSpace(lines[0])
	lower := strings.ToLower(first)
	if first == "" || len(first) >= maxTitleLen {
		return ""
	}
	for _, prefix := range []string{"job ", "about ", "company"} {
		if strings.HasPrefix(lower, prefix) {
			return ""
		}
	}
	return first
}

// classifyHeader recognizes Markdown and **bold** headers and maps the
// header text onto a canonical section name.
func classifyHeader(trimmed string) (string, bool) {
	var headerText string
	switch {
	case strings.HasPrefix(trimmed, "#"):
		headerText = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
	case isBoldWrapped(trimmed):
		headerText = strings.Trim(trimmed, "*")
	default:
		return "", false
	}
	if headerText == "" {
		return "", false
	}

	lower := strings.ToLower(headerText)
	switch {
	case containsAny(lower, "requirement", "qualification", "what you need"):
		return "requirements", true
	case containsAny(lower, "responsibilit", "duties", "what you will do"):
		return "responsibilities", true
	case strings.Contains(lower, "benefit"):
		return "benefits", true
	case strings.Contains(lower, "company"):
		return "company", true
	}
	return lower, true
}

// accumulateKeywords adds every normalized token and valid 2-3 token phrase
// of the line into the keyword map, weighted by the line's emphasis.
func accumulateKeywords(keywords map[string]float64, trimmed, active string) {
	if trimmed == "" {
		return
	}

	weight := 1.0
	if strings.HasPrefix(trimmed, "#") {
		weight *= weightHeader
	}
	if isAllCaps(trimmed) {
		weight *= weightAllCaps
	}
	if isBoldWrapped(trimmed) {
		weight *= weightBold
	}
	if _, ok := stripBullet(trimmed); ok {
		weight *= weightBullet
	}
	if active == "requirements" || active == "qualifications" {
		weight *= weightReqSection
	}
	if containsAny(strings.ToLower(trimmed), "required", "must have", "necessary") {
		weight *= weightReqLanguage
	}

	for _, token := range textnorm.Normalize(trimmed) {
		keywords[token] += weight
	}
	for phrase, count := range ngram.Extract(trimmed, ngram.DefaultMaxN) {
		if !strings.Contains(phrase, " ") {
			continue
		}
		mult := weightPlainGram
		if taxonomy.ContainsPhrase(phrase) {
			mult = weightTaxonomyGram
		}
		keywords[phrase] += weight * mult * float64(count)
	}
}

func stripBullet(trimmed string) (string, bool) {
	if isBoldWrapped(trimmed) {
		return "", false
	}
	for _, prefix := range []string{"-", "*", "•"} {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, prefix)), true
		}
	}
	return "", false
}

func isBoldWrapped(trimmed string) bool {
	return len(trimmed) > 4 && strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**")
}

func isAllCaps(line string) bool {
	return strings.ToUpper(line) == line && strings.ToLower(line) != line
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
