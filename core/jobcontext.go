package core

import (
	"strings"

	"github.com/talentlens/talentlens/schema"
)

// Title keyword tables for role classification. Rules are checked in order
// and the first match wins; titles matching nothing fall back to mid-level,
// general-domain, non-leadership. The tables fold adjacent titles into the
// core buckets: principal and staff count as senior, intern as junior,
// "head of" as leadership, and each domain accepts hyphenated and spaced
// spellings.
var (
	seniorTitleWords     = []string{"senior", "lead", "architect", "principal", "staff"}
	juniorTitleWords     = []string{"junior", "graduate", "entry", "intern"}
	leadershipTitleWords = []string{"lead", "manager", "director", "head of"}

	frontendTitleWords  = []string{"frontend", "front-end", "front end", "react", "ui"}
	backendTitleWords   = []string{"backend", "back-end", "back end", "api", "server"}
	fullstackTitleWords = []string{"fullstack", "full-stack", "full stack", "full"}
)

// classifyJobContext derives seniority, domain and a leadership flag from the
// candidate's job title alone. The feedback text deliberately does not
// contribute: the classification describes the role, not the performance.
func classifyJobContext(jobTitle string) schema.JobContext {
	title := strings.ToLower(jobTitle)

	ctx := schema.JobContext{
		Seniority: schema.SeniorityMid,
		Domain:    schema.DomainGeneral,
	}

	switch {
	case containsAny(title, seniorTitleWords):
		ctx.Seniority = schema.SenioritySenior
	case containsAny(title, juniorTitleWords):
		ctx.Seniority = schema.SeniorityJunior
	}

	ctx.IsLeadership = containsAny(title, leadershipTitleWords)

	switch {
	case containsAny(title, frontendTitleWords):
		ctx.Domain = schema.DomainFrontend
	case containsAny(title, backendTitleWords):
		ctx.Domain = schema.DomainBackend
	case containsAny(title, fullstackTitleWords):
		ctx.Domain = schema.DomainFullstack
	}

	return ctx
}
