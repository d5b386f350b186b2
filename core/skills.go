package core

import (
	"sort"

	"github.com/talentlens/talentlens/schema"
)

// skillVariants maps each canonical skill to the lowercase spellings and
// aliases that count as a mention. Detection is substring counting, not
// tokenization, so short aliases like "js" can false-positive inside
// unrelated words. Known limitation, accepted for determinism and speed.
// The "go" alias is space-delimited on both sides so it cannot fire inside
// "django" or "mongo"; a leading "go" at the very start of the text is missed.
var skillVariants = map[string][]string{
	"javascript": {"javascript", "js", "typescript", "node"},
	"python":     {"python", "django", "flask"},
	"go":         {"golang", " go "},
	"java":       {"java ", "spring boot", "jvm"},
	"react":      {"react", "redux", "jsx"},
	"sql":        {"sql", "postgres", "mysql", "database"},
	"aws":        {"aws", "amazon web services", "ec2", "lambda"},
	"docker":     {"docker", "kubernetes", "k8s", "container"},
	"git":        {"github", "gitlab", "version control"},
	"api":        {"api", "rest", "graphql", "endpoint"},
	"testing":    {"testing", "unit test", "tdd", "test coverage"},
	"system design": {
		"system design", "architecture", "scalability", "distributed",
	},
}

// mentionConfidenceStep converts a mention count into a confidence:
// confidence = min(1, mentions * 0.3). Three or four mentions are treated as
// near-certain signal.
const mentionConfidenceStep = 0.3

// domainSkills maps role domains to the skills considered relevant for that
// domain. DomainGeneral treats every detected skill as relevant.
var domainSkills = map[schema.RoleDomain][]string{
	schema.DomainFrontend:  {"javascript", "react", "testing", "api", "git"},
	schema.DomainBackend:   {"python", "go", "java", "sql", "api", "docker", "aws", "system design"},
	schema.DomainFullstack: {"javascript", "react", "python", "go", "sql", "api", "docker"},
}

// expectedSkills maps role domains to the skills a hiring team normally
// expects to hear about. Used for the missing-expected-skills insight.
var expectedSkills = map[schema.RoleDomain][]string{
	schema.DomainFrontend:  {"javascript", "react"},
	schema.DomainBackend:   {"api", "sql"},
	schema.DomainFullstack: {"javascript", "api"},
}

// detectSkills scans the assembled text for every skill variant and returns
// detections sorted by confidence descending, then by name for stability.
func detectSkills(text string) []schema.SkillDetection {
	if text == "" {
		return nil
	}

	var detections []schema.SkillDetection
	for skill, variants := range skillVariants {
		mentions := countAny(text, variants)
		if mentions == 0 {
			continue
		}
		detections = append(detections, schema.SkillDetection{
			Skill:      skill,
			Confidence: clamp01(float64(mentions) * mentionConfidenceStep),
			Mentions:   mentions,
		})
	}

	sort.Slice(detections, func(i, j int) bool {
		if detections[i].Confidence != detections[j].Confidence {
			return detections[i].Confidence > detections[j].Confidence
		}
		return detections[i].Skill < detections[j].Skill
	})
	return detections
}

// relevantSkills filters detections down to the skills relevant for the
// given role domain. For DomainGeneral all detections are relevant.
func relevantSkills(detections []schema.SkillDetection, domain schema.RoleDomain) []schema.SkillDetection {
	allowed, ok := domainSkills[domain]
	if !ok {
		return detections
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, s := range allowed {
		allowedSet[s] = struct{}{}
	}

	var relevant []schema.SkillDetection
	for _, d := range detections {
		if _, ok := allowedSet[d.Skill]; ok {
			relevant = append(relevant, d)
		}
	}
	return relevant
}

// missingExpectedSkills returns the expected skills for the domain that were
// not detected in the text, preserving table order.
func missingExpectedSkills(detections []schema.SkillDetection, domain schema.RoleDomain) []string {
	expected, ok := expectedSkills[domain]
	if !ok {
		return nil
	}
	detected := make(map[string]struct{}, len(detections))
	for _, d := range detections {
		detected[d.Skill] = struct{}{}
	}

	var missing []string
	for _, s := range expected {
		if _, ok := detected[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}
