package domain

import "regexp"

// countryTable is the compiled-in registry data. Order is significant:
// detection scans top to bottom and the first match wins
// (TieBreakRegistryOrder), so Egypt leads its market region and the
// United States precedes Canada for the shared +1 code.
//
// Patterns describe mobile-shaped national significant numbers (no trunk
// zero): an alternation group of leading digits followed by a counted
// run of digits. The Constraint Deriver reads length bounds from this
// same shape; countries whose numbering defies it get permissive
// patterns and fall back to the ITU bounds.
var countryTable = []CountryRecord{
	{ISOCode: "EG", LocalName: "مصر", EnglishName: "Egypt", DialCode: "+20",
		Pattern: regexp.MustCompile(`^(10|11|12|15)\d{8}$`), PrefixHints: []string{"10", "11", "12", "15"}},
	{ISOCode: "SA", LocalName: "السعودية", EnglishName: "Saudi Arabia", DialCode: "+966",
		Pattern: regexp.MustCompile(`^(50|53|54|55|56|57|58|59)\d{7}$`), PrefixHints: []string{"50", "53", "54", "55", "56", "57", "58", "59"}},
	{ISOCode: "AE", LocalName: "الإمارات", EnglishName: "United Arab Emirates", DialCode: "+971",
		Pattern: regexp.MustCompile(`^(50|52|54|55|56|58)\d{7}$`), PrefixHints: []string{"52", "54", "55", "56", "58"}},
	{ISOCode: "KW", LocalName: "الكويت", EnglishName: "Kuwait", DialCode: "+965",
		Pattern: regexp.MustCompile(`^(5|6|9)\d{7}$`), PrefixHints: []string{"51", "60", "65", "66", "69", "90", "96", "97", "99"}},
	{ISOCode: "QA", LocalName: "قطر", EnglishName: "Qatar", DialCode: "+974",
		Pattern: regexp.MustCompile(`^(3|5|6|7)\d{7}$`), PrefixHints: []string{"33", "55", "66", "77"}},
	{ISOCode: "BH", LocalName: "البحرين", EnglishName: "Bahrain", DialCode: "+973",
		Pattern: regexp.MustCompile(`^(3|6)\d{7}$`), PrefixHints: []string{"32", "33", "34", "36", "39", "63", "66"}},
	{ISOCode: "OM", LocalName: "عُمان", EnglishName: "Oman", DialCode: "+968",
		Pattern: regexp.MustCompile(`^(7|9)\d{7}$`), PrefixHints: []string{"71", "72", "78", "79", "90", "91", "92", "95", "96", "98", "99"}},
	{ISOCode: "JO", LocalName: "الأردن", EnglishName: "Jordan", DialCode: "+962",
		Pattern: regexp.MustCompile(`^(77|78|79)\d{7}$`), PrefixHints: []string{"77", "78", "79"}},
	{ISOCode: "LB", LocalName: "لبنان", EnglishName: "Lebanon", DialCode: "+961",
		Pattern: regexp.MustCompile(`^(3|70|71|76|78|79|81)\d{6}$`), PrefixHints: []string{"70", "71", "76", "81"}},
	{ISOCode: "IQ", LocalName: "العراق", EnglishName: "Iraq", DialCode: "+964",
		Pattern: regexp.MustCompile(`^(75|77|78|79)\d{8}$`), PrefixHints: []string{"750", "751", "770", "771", "780", "781", "790"}},
	{ISOCode: "SY", LocalName: "سوريا", EnglishName: "Syria", DialCode: "+963",
		Pattern: regexp.MustCompile(`^(93|94|95|96|98|99)\d{7}$`), PrefixHints: []string{"93", "94", "95", "96", "98", "99"}},
	{ISOCode: "PS", LocalName: "فلسطين", EnglishName: "Palestine", DialCode: "+970",
		Pattern: regexp.MustCompile(`^(56|59)\d{7}$`), PrefixHints: []string{"56", "59"}},
	{ISOCode: "YE", LocalName: "اليمن", EnglishName: "Yemen", DialCode: "+967",
		Pattern: regexp.MustCompile(`^(70|71|73|77|78)\d{7}$`), PrefixHints: []string{"70", "71", "73"}},
	{ISOCode: "LY", LocalName: "ليبيا", EnglishName: "Libya", DialCode: "+218",
		Pattern: regexp.MustCompile(`^(91|92|94|95)\d{7}$`), PrefixHints: []string{"91", "92", "94"}},
	{ISOCode: "SD", LocalName: "السودان", EnglishName: "Sudan", DialCode: "+249",
		Pattern: regexp.MustCompile(`^(1|9)\d{8}$`), PrefixHints: []string{"90", "91", "92", "96", "99"}},
	{ISOCode: "TN", LocalName: "تونس", EnglishName: "Tunisia", DialCode: "+216",
		Pattern: regexp.MustCompile(`^(2|4|5|9)\d{7}$`), PrefixHints: []string{"20", "21", "22", "40", "50", "90", "98", "99"}},
	{ISOCode: "DZ", LocalName: "الجزائر", EnglishName: "Algeria", DialCode: "+213",
		Pattern: regexp.MustCompile(`^(5|6|7)\d{8}$`), PrefixHints: []string{"55", "66", "77"}},
	{ISOCode: "MA", LocalName: "المغرب", EnglishName: "Morocco", DialCode: "+212",
		Pattern: regexp.MustCompile(`^(6|7)\d{8}$`), PrefixHints: []string{"61", "62", "66", "67", "70"}},
	{ISOCode: "US", LocalName: "الولايات المتحدة", EnglishName: "United States", DialCode: "+1",
		Pattern: regexp.MustCompile(`^\d{10}$`)},
	{ISOCode: "CA", LocalName: "كندا", EnglishName: "Canada", DialCode: "+1",
		Pattern: regexp.MustCompile(`^\d{10}$`)},
	{ISOCode: "GB", LocalName: "المملكة المتحدة", EnglishName: "United Kingdom", DialCode: "+44",
		Pattern: regexp.MustCompile(`^(71|72|73|74|75|76|77|78|79)\d{8}$`), PrefixHints: []string{"74", "75", "77", "78", "79"}},
	{ISOCode: "FR", LocalName: "فرنسا", EnglishName: "France", DialCode: "+33",
		Pattern: regexp.MustCompile(`^(6|7)\d{8}$`)},
	{ISOCode: "DE", LocalName: "ألمانيا", EnglishName: "Germany", DialCode: "+49",
		Pattern: regexp.MustCompile(`^(15|16|17)\d{8,9}$`), PrefixHints: []string{"15", "16", "17"}},
	{ISOCode: "IT", LocalName: "إيطاليا", EnglishName: "Italy", DialCode: "+39",
		Pattern: regexp.MustCompile(`^(32|33|34|35|36|37|38|39)\d{7,8}$`), PrefixHints: []string{"32", "33", "34", "36", "38", "39"}},
	{ISOCode: "ES", LocalName: "إسبانيا", EnglishName: "Spain", DialCode: "+34",
		Pattern: regexp.MustCompile(`^(6|7)\d{8}$`)},
	{ISOCode: "TR", LocalName: "تركيا", EnglishName: "Türkiye", DialCode: "+90",
		Pattern: regexp.MustCompile(`^(50|53|54|55|56)\d{8}$`), PrefixHints: []string{"53", "54", "55"}},
	{ISOCode: "RU", LocalName: "روسيا", EnglishName: "Russia", DialCode: "+7",
		Pattern: regexp.MustCompile(`^(90|91|92|93|94|95|96|98|99)\d{8}$`), PrefixHints: []string{"90", "91", "92", "99"}},
	{ISOCode: "CN", LocalName: "الصين", EnglishName: "China", DialCode: "+86",
		Pattern: regexp.MustCompile(`^(13|14|15|16|17|18|19)\d{9}$`), PrefixHints: []string{"13", "15", "18"}},
	{ISOCode: "JP", LocalName: "اليابان", EnglishName: "Japan", DialCode: "+81",
		Pattern: regexp.MustCompile(`^(70|80|90)\d{8}$`), PrefixHints: []string{"70", "80", "90"}},
	{ISOCode: "IN", LocalName: "الهند", EnglishName: "India", DialCode: "+91",
		Pattern: regexp.MustCompile(`^(6|7|8|9)\d{9}$`), PrefixHints: []string{"63", "70", "80", "91", "98", "99"}},
	{ISOCode: "PK", LocalName: "باكستان", EnglishName: "Pakistan", DialCode: "+92",
		Pattern: regexp.MustCompile(`^(30|31|32|33|34|35)\d{8}$`), PrefixHints: []string{"30", "31", "32", "33", "34", "35"}},
	{ISOCode: "ID", LocalName: "إندونيسيا", EnglishName: "Indonesia", DialCode: "+62",
		Pattern: regexp.MustCompile(`^(81|82|83|85|87|88|89)\d{7,10}$`), PrefixHints: []string{"81", "82", "85", "87"}},
	{ISOCode: "BR", LocalName: "البرازيل", EnglishName: "Brazil", DialCode: "+55",
		Pattern: regexp.MustCompile(`^\d{10,11}$`)},
	{ISOCode: "NG", LocalName: "نيجيريا", EnglishName: "Nigeria", DialCode: "+234",
		Pattern: regexp.MustCompile(`^(70|80|81|90|91)\d{8}$`), PrefixHints: []string{"70", "80", "81", "90", "91"}},
	{ISOCode: "KE", LocalName: "كينيا", EnglishName: "Kenya", DialCode: "+254",
		Pattern: regexp.MustCompile(`^(1|7)\d{8}$`), PrefixHints: []string{"71", "72", "74", "79"}},
	{ISOCode: "ZA", LocalName: "جنوب أفريقيا", EnglishName: "South Africa", DialCode: "+27",
		Pattern: regexp.MustCompile(`^(6|7|8)\d{8}$`), PrefixHints: []string{"60", "71", "72", "82", "83", "84"}},
	{ISOCode: "AU", LocalName: "أستراليا", EnglishName: "Australia", DialCode: "+61",
		Pattern: regexp.MustCompile(`^(4)\d{8}$`), PrefixHints: []string{"40", "41", "42", "43", "44", "45", "46", "47", "48", "49"}},
	{ISOCode: "NL", LocalName: "هولندا", EnglishName: "Netherlands", DialCode: "+31",
		Pattern: regexp.MustCompile(`^(6)\d{8}$`), PrefixHints: []string{"61", "62", "63", "64", "65", "68"}},
	{ISOCode: "SE", LocalName: "السويد", EnglishName: "Sweden", DialCode: "+46",
		Pattern: regexp.MustCompile(`^(70|72|73|76|79)\d{7}$`), PrefixHints: []string{"70", "72", "73", "76", "79"}},
	{ISOCode: "MY", LocalName: "ماليزيا", EnglishName: "Malaysia", DialCode: "+60",
		Pattern: regexp.MustCompile(`^(1)\d{8,9}$`), PrefixHints: []string{"10", "11", "12", "13", "14", "16", "17", "19"}},
}

// defaultRegistry is built once at package load; registry data is
// compiled-in, so a construction failure is a programming error.
var defaultRegistry = MustNewRegistry(countryTable)

// DefaultRegistry returns the compiled-in country registry. The same
// instance is shared by all callers; it is immutable and safe for
// concurrent use.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
