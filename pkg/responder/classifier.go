package responder

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Topic is the classification result for a user query.
type Topic string

const (
	TopicDefault       Topic = "default"
	TopicBabies        Topic = "babies"
	TopicMMR           Topic = "mmr"
	TopicLocation      Topic = "location"
	TopicSchedule      Topic = "schedule"
	TopicCovid         Topic = "covid"
	TopicHPV           Topic = "hpv"
	TopicFlu           Topic = "flu"
	TopicTetanus       Topic = "tetanus"
	TopicPolio         Topic = "polio"
	TopicPneumococcal  Topic = "pneumococcal"
	TopicRotavirus     Topic = "rotavirus"
	TopicHepatitisB    Topic = "hepatitisB"
	TopicTuberculosis  Topic = "tuberculosis"
	TopicPregnant      Topic = "pregnant"
	TopicSideEffects   Topic = "sideEffects"
	TopicEffectiveness Topic = "effectiveness"
	TopicAllergies     Topic = "allergies"
	TopicTravel        Topic = "travel"
	TopicNewVaccines   Topic = "newVaccines"
)

// Topics lists every topic key, default first.
var Topics = []Topic{
	TopicDefault, TopicBabies, TopicMMR, TopicLocation, TopicSchedule,
	TopicCovid, TopicHPV, TopicFlu, TopicTetanus, TopicPolio,
	TopicPneumococcal, TopicRotavirus, TopicHepatitisB, TopicTuberculosis,
	TopicPregnant, TopicSideEffects, TopicEffectiveness, TopicAllergies,
	TopicTravel, TopicNewVaccines,
}

// rule maps a topic to the substrings that select it.
type rule struct {
	topic    Topic
	triggers []string
}

// rules are evaluated in order and the first match wins. Clinical topics
// come before the general ones so that "my baby's covid shot" is covid.
//
// "work" (effectiveness) and "ini" (hepatitisB) over-match unrelated
// messages such as "does this work on my phone" or "nearest clinic".
// They are kept so answers stay identical to the mobile client.
var rules = []rule{
	{TopicCovid, []string{"covid", "corona", "mrna", "pfizer", "moderna"}},
	{TopicHPV, []string{"hpv", "cervical", "cancer"}},
	{TopicFlu, []string{"flu", "influenza", "homa"}},
	{TopicTetanus, []string{"tetanus", "lockjaw", "pepopunda"}},
	{TopicPolio, []string{"polio", "paralysis"}},
	{TopicPneumococcal, []string{"pneumo", "pneumonia"}},
	{TopicRotavirus, []string{"rota", "diarr", "kuharisha"}},
	{TopicHepatitisB, []string{"hepatitis", "liver", "ini"}},
	{TopicTuberculosis, []string{"bcg", "tb", "tuberc", "kifua"}},
	{TopicPregnant, []string{"pregnan", "mimba", "expecting", "mjamzito"}},
	{TopicSideEffects, []string{"side effect", "reaction", "athiri"}},
	{TopicEffectiveness, []string{"effective", "work", "herd", "immunity"}},
	{TopicAllergies, []string{"allerg", "egg", "latex"}},
	{TopicTravel, []string{"travel", "yellow fever", "trip", "safari"}},
	{TopicNewVaccines, []string{"new vaccin", "recent", "latest", "development", "malaria"}},
	{TopicBabies, []string{"bab", "child", "infant", "watoto", "mtoto"}},
	{TopicSchedule, []string{"when", "schedule", "ratiba", "lini"}},
	{TopicMMR, []string{"mmr", "measles", "rubella", "surua"}},
	{TopicLocation, []string{"where", "location", "get vaccin", "wapi", "kituo"}},
}

// Classify maps a free-text message to a topic. Messages that match no
// trigger, including empty ones, classify as TopicDefault.
func Classify(message string) Topic {
	// Casers are stateful, so one is built per call.
	lower := cases.Lower(language.Und).String(message)
	for _, r := range rules {
		for _, trigger := range r.triggers {
			if strings.Contains(lower, trigger) {
				return r.topic
			}
		}
	}
	return TopicDefault
}

// Known reports whether t is one of the fixed topic keys.
func (t Topic) Known() bool {
	for _, known := range Topics {
		if t == known {
			return true
		}
	}
	return false
}
