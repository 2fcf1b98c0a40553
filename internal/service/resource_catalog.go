package service

import "vaccine-village-go/internal/model"

// builtinResources is the curated list shown on the resources screen.
var builtinResources = []model.Resource{
	{
		ID:          "who-vaccines-immunization",
		Title:       "Vaccines and immunization: what is vaccination?",
		Description: "How vaccines train the immune system, why they are safe, and which diseases they prevent.",
		Category:    model.CategoryGeneral,
		Source:      "World Health Organization",
		URL:         "https://www.who.int/news-room/questions-and-answers/item/vaccines-and-immunization-what-is-vaccination",
		Tags:        []string{"basics", "immunity", "safety"},
	},
	{
		ID:          "unicef-vaccines-faq",
		Title:       "Vaccines: frequently asked questions for parents",
		Description: "Answers to common questions parents ask about childhood vaccines.",
		Category:    model.CategoryGeneral,
		Source:      "UNICEF",
		URL:         "https://www.unicef.org/immunization/frequently-asked-questions-vaccines",
		Tags:        []string{"parents", "children", "faq"},
	},
	{
		ID:          "moh-kenya-immunization",
		Title:       "Kenya National Vaccines and Immunization Programme",
		Description: "Programme overview from the Ministry of Health, including free vaccination at public facilities.",
		Category:    model.CategoryGeneral,
		Source:      "Kenya Ministry of Health",
		URL:         "https://www.health.go.ke",
		Tags:        []string{"kenya", "kepi", "free"},
	},
	{
		ID:          "kepi-schedule",
		Title:       "Kenya childhood immunization schedule",
		Description: "Vaccines given at birth, 6, 10 and 14 weeks, 6 and 9 months, and 18 months: BCG, OPV, Penta, PCV, Rota, IPV, measles-rubella and more.",
		Category:    model.CategorySchedules,
		Source:      "Kenya Ministry of Health",
		URL:         "https://www.health.go.ke",
		Tags:        []string{"schedule", "babies", "bcg", "polio", "measles"},
	},
	{
		ID:          "who-recommended-schedule",
		Title:       "WHO recommendations for routine immunization",
		Description: "Summary tables of the vaccines WHO recommends for children, adolescents and adults.",
		Category:    model.CategorySchedules,
		Source:      "World Health Organization",
		URL:         "https://www.who.int/teams/immunization-vaccines-and-biologicals/policies/who-recommendations-for-routine-immunization---summary-tables",
		Tags:        []string{"schedule", "adults", "adolescents"},
	},
	{
		ID:          "hpv-girls",
		Title:       "HPV vaccine for girls aged 10 to 14",
		Description: "Why the HPV vaccine protects against cervical cancer and when girls should receive it.",
		Category:    model.CategorySchedules,
		Source:      "World Health Organization",
		URL:         "https://www.who.int/news-room/fact-sheets/detail/human-papilloma-virus-and-cancer",
		Tags:        []string{"hpv", "cervical cancer", "girls"},
	},
	{
		ID:          "who-vaccine-safety",
		Title:       "How are vaccines made safe?",
		Description: "The testing, approval and monitoring every vaccine goes through before and after it is used.",
		Category:    model.CategorySafety,
		Source:      "World Health Organization",
		URL:         "https://www.who.int/news-room/feature-stories/detail/how-are-vaccines-developed",
		Tags:        []string{"safety", "trials", "approval"},
	},
	{
		ID:          "side-effects-guide",
		Title:       "Common side effects after vaccination",
		Description: "Mild fever, soreness and fussiness are normal. Learn which reactions need a visit to a health worker.",
		Category:    model.CategorySafety,
		Source:      "UNICEF",
		URL:         "https://www.unicef.org/parenting/health/vaccine-side-effects",
		Tags:        []string{"side effects", "fever", "aefi"},
	},
	{
		ID:          "pregnancy-vaccines",
		Title:       "Vaccines during pregnancy",
		Description: "Tetanus-diphtheria and other vaccines that protect mothers and newborns.",
		Category:    model.CategorySafety,
		Source:      "World Health Organization",
		URL:         "https://www.who.int/health-topics/maternal-health",
		Tags:        []string{"pregnancy", "tetanus", "mothers"},
	},
}
