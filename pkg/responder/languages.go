package responder

import "sync"

// SupportedLanguages is the fixed list offered by the app.
var SupportedLanguages = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "sw", Name: "Swahili", NativeName: "Kiswahili"},
	{Code: "ki", Name: "Kikuyu", NativeName: "Gĩkũyũ"},
	{Code: "luo", Name: "Luo", NativeName: "Dholuo"},
	{Code: "kam", Name: "Kamba", NativeName: "Kikamba"},
	{Code: "luy", Name: "Luyia", NativeName: "Luluhia"},
	{Code: "kal", Name: "Kalenjin", NativeName: "Kalenjin"},
	{Code: "mij", Name: "Mijikenda", NativeName: "Kimijikenda"},
	{Code: "so", Name: "Somali", NativeName: "Soomaali"},
	{Code: "tuv", Name: "Turkana", NativeName: "Ng'aturkana"},
	{Code: "saq", Name: "Samburu", NativeName: "Kisampur"},
	{Code: "mas", Name: "Maasai", NativeName: "Maa"},
	{Code: "rel", Name: "Rendille", NativeName: "Rendille"},
	{Code: "ebu", Name: "Embu", NativeName: "Kĩembu"},
	{Code: "mer", Name: "Meru", NativeName: "Kĩmĩrũ"},
}

// untranslatedNotices are native-language "translation in progress" lines.
// Languages without one get the English line only.
var untranslatedNotices = map[string]string{
	"sw": "Tafsiri ya Kiswahili inaandaliwa. Maelezo haya yanaonyeshwa kwa Kiingereza.",
	"so": "Turjumaadda Soomaaliga waa la diyaarinayaa. Macluumaadkan waxaa lagu muujiyey Ingiriis.",
	"ki": "Ũtaũri wa Gĩgĩkũyũ nĩ ũrathondekwo. Ũhoro ũyũ ũrĩ na Gĩthungũ.",
	"luo": "Loko e Dholuo pod timore. Weche gi ndikore e Dhosungu.",
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := NewCatalog(DefaultLanguage, SupportedLanguages, map[string]map[Topic]Response{
			"en": englishResponses,
			"sw": swahiliResponses,
		}, untranslatedNotices)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
