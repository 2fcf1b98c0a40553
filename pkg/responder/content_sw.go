package responder

import "vaccine-village-go/internal/model"

// Swahili coverage is partial; missing topics fall back to the Swahili
// default entry.
var swahiliResponses = map[Topic]Response{
	TopicDefault: {
		Content:    "Chanjo ni njia salama na bora ya kujikinga dhidi ya magonjwa hatari. Duniani kote, chanjo huzuia vifo milioni 3 hadi 4 kila mwaka. Nchini Kenya, Wizara ya Afya hutoa chanjo bila malipo katika vituo vya afya vya umma zaidi ya 7,000 katika kaunti zote 47. Chanjo zote hupimwa kwa makini na mamlaka za afya za kimataifa, ikiwemo WHO, kabla ya kuidhinishwa.",
		Confidence: model.ConfidenceHigh,
		Sources: []string{
			"Wizara ya Afya: Mpango wa Kitaifa wa Chanjo (KEPI)",
		},
	},
	TopicBabies: {
		Content:    "Kenya hufuata Ratiba ya Kitaifa ya Chanjo. Watoto hupokea: BCG wakati wa kuzaliwa, Polio, Pentavalent (wiki 6, 10, 14), Pneumococcal (wiki 6, 10, 14), Rotavirus (wiki 6, 10), na Surua-Rubella katika miezi 9 na 18. Chanjo zote za kawaida za watoto hutolewa bure katika vituo vya serikali nchini Kenya.",
		Confidence: model.ConfidenceHigh,
		Sources: []string{
			"Wizara ya Afya: Ratiba ya Kitaifa ya Chanjo",
		},
	},
	TopicMMR: {
		Content:    "Chanjo ya Surua-Rubella (MR) ni salama sana na hutumika duniani kote. Zaidi ya dozi milioni 20 zimetolewa nchini Kenya tangu 2016. Madhara huwa madogo, kama homa kidogo au vipele ambavyo huisha baada ya siku chache. Chanjo hii huzuia milipuko hatari ya surua.",
		Confidence: model.ConfidenceHigh,
	},
	TopicLocation: {
		Content:    "Chanjo za bure zinapatikana katika: hospitali za rufaa za kaunti (kaunti 47), hospitali za kaunti ndogo (zaidi ya 400), vituo vya afya (zaidi ya 3,000) na zahanati (zaidi ya 4,000). Tembelea kituo cha afya kilicho karibu nawe au piga simu Kenya Health InfoLine: 719.",
		Confidence: model.ConfidenceHigh,
		Sources: []string{
			"Kenya Health InfoLine 719",
		},
	},
	TopicSchedule: {
		Content:    "Ratiba ya Kitaifa ya Chanjo Kenya: Kuzaliwa (BCG, Polio 0), wiki 6 (Polio 1, Penta 1, PCV 1, Rota 1), wiki 10 (Polio 2, Penta 2, PCV 2, Rota 2), wiki 14 (Polio 3, Penta 3, PCV 3), miezi 9 (Surua-Rubella 1), miezi 18 (Surua-Rubella 2). Tunza kadi ya chanjo ya mtoto wako na uilete kila unapotembelea kliniki.",
		Confidence: model.ConfidenceHigh,
	},
	TopicCovid: {
		Content:    "Chanjo za COVID-19 ni salama na zinafanya kazi. Nchini Kenya, chanjo zilizoidhinishwa ni pamoja na Pfizer, AstraZeneca, Moderna na Johnson & Johnson. Madhara ya kawaida ni maumivu ya mkono, uchovu na homa kidogo kwa siku 1 hadi 2. Chanjo hupunguza sana hatari ya kuugua vibaya, kulazwa hospitalini na kifo.",
		Confidence: model.ConfidenceHigh,
	},
	TopicFlu: {
		Content:    "Chanjo ya homa ya mafua hupendekezwa kila mwaka kwa makundi yaliyo hatarini, wakiwemo wajawazito, wazee, watoto wadogo na watu wenye magonjwa sugu. Nchini Kenya, chanjo hii inapatikana katika kliniki za kibinafsi na baadhi ya hospitali za kaunti.",
		Confidence: model.ConfidenceHigh,
	},
	TopicTetanus: {
		Content:    "Chanjo ya pepopunda huokoa maisha ya watoto wachanga. Hutolewa kama sehemu ya chanjo ya Pentavalent kwa watoto na kama dozi za nyongeza. Wanawake wajawazito hupokea dozi 2 hadi 5 ili kuwalinda watoto wao wachanga.",
		Confidence: model.ConfidenceHigh,
	},
	TopicPolio: {
		Content:    "Chanjo ya polio imepunguza visa vya polio duniani kwa zaidi ya asilimia 99.9 tangu 1988. Kenya haijakuwa na polio tangu 2011. Watoto wote wanapaswa kukamilisha dozi zote za chanjo ya polio.",
		Confidence: model.ConfidenceHigh,
		Sources: []string{
			"Global Polio Eradication Initiative",
		},
	},
	TopicPregnant: {
		Content:    "Wanawake wajawazito wanapaswa kupokea chanjo ya pepopunda na ya homa ya mafua. Nchini Kenya, wajawazito hupata chanjo ya pepopunda kupitia huduma za kliniki ya wajawazito. Chanjo wakati wa ujauzito hupitisha kinga kwa mtoto.",
		Confidence: model.ConfidenceHigh,
	},
	TopicSideEffects: {
		Content:    "Madhara ya kawaida ya chanjo huwa madogo na ya muda mfupi: maumivu mahali pa sindano, homa kidogo, uchovu au vipele kwa siku 1 hadi 2. Madhara makubwa ni nadra sana, chini ya 1 kwa kila dozi milioni. Faida za chanjo ni kubwa kuliko hatari ndogo.",
		Confidence: model.ConfidenceHigh,
	},
}
