package schema

import "strings"

// FormatDimension converts a dimension identifier into a display label,
// e.g. "technical_skills" becomes "Technical Skills".
func FormatDimension(d Dimension) string {
	parts := strings.Split(string(d), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// FormatSkills formats the top skills as "Go, Kubernetes, SQL".
func FormatSkills(skills []SkillDetection, limit int) string {
	if limit > len(skills) {
		limit = len(skills)
	}
	names := make([]string, 0, limit)
	for _, s := range skills[:limit] {
		names = append(names, s.Skill)
	}
	return strings.Join(names, ", ")
}

// JoinNatural joins phrases with commas and a final "and", producing
// "a", "a and b", or "a, b and c".
func JoinNatural(phrases []string) string {
	switch len(phrases) {
	case 0:
		return ""
	case 1:
		return phrases[0]
	case 2:
		return phrases[0] + " and " + phrases[1]
	default:
		return strings.Join(phrases[:len(phrases)-1], ", ") + " and " + phrases[len(phrases)-1]
	}
}

// NormalizeVote maps an arbitrary vote string to a valid vote, defaulting to
// review when the value is empty or unknown.
func NormalizeVote(v RecommendationVote) RecommendationVote {
	vote := RecommendationVote(strings.ToLower(strings.TrimSpace(string(v))))
	if _, ok := ValidVotes[vote]; ok {
		return vote
	}
	return VoteReview
}
