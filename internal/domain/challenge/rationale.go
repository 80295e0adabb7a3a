package challenge

import "github.com/rpalmer/grit/internal/catalog"

// rationales explain, per category, why facing that category builds
// tolerance. One fixed string per category with a generic fallback.
var rationales = map[catalog.Category]string{
	catalog.CategoryOrganization:   "You rated organization tasks as highly aversive. Completing one rewires the urge to leave things scattered.",
	catalog.CategoryAdministrative: "Paperwork is where your avoidance peaks. Finishing one official task shrinks the dread around all of them.",
	catalog.CategorySocial:         "Social friction scored high for you. One deliberate uncomfortable conversation weakens the avoidance loop.",
	catalog.CategoryDigital:        "Digital clutter is a standing source of resistance for you. Clearing one backlog proves it is finite.",
	catalog.CategoryCreative:       "You avoid creative exposure. Producing something imperfect on purpose trains tolerance for starting.",
	catalog.CategoryMaintenance:    "Household upkeep is a high-resistance zone for you. Doing the full job once resets what feels normal.",
	catalog.CategoryPersonal:       "Self-discipline tasks carry your strongest aversion. Each completed one compounds into easier mornings.",
	catalog.CategoryFinancial:      "Money tasks trigger avoidance for you. Looking directly at the numbers removes their weight.",
	catalog.CategoryHealth:         "You postpone health actions despite rating them important. Acting before the debate starts breaks the pattern.",
	catalog.CategoryLearning:       "You skip the hard parts of learning. Practicing exactly what you are worst at is where strength builds.",
}

const defaultRationale = "This activity sits in your high-resistance zone. Completing it despite the aversion is the training."

// rationaleFor returns the category rationale, falling back to a generic
// string for unmapped categories.
func rationaleFor(c catalog.Category) string {
	if r, ok := rationales[c]; ok {
		return r
	}
	return defaultRationale
}
