package keyhub

import (
	"regexp"
	"strings"
)

// localePattern matches locale identifiers of the form xx-XX.
var localePattern = regexp.MustCompile(`^[a-z]{2}-[A-Z]{2}$`)

// IsLocale reports whether code is a valid locale identifier (xx-XX).
func IsLocale(code string) bool {
	return localePattern.MatchString(code)
}

// NormalizeLocale converts underscore-form codes to the canonical dash form
// (e.g. "en_US" -> "en-US").
func NormalizeLocale(code string) string {
	return strings.ReplaceAll(code, "_", "-")
}

// BaseLang extracts the base language code (e.g. "en" from "en-US").
func BaseLang(code string) string {
	return strings.ToLower(strings.SplitN(NormalizeLocale(code), "-", 2)[0])
}

// LanguageNames maps locale codes to human-readable names for display.
var LanguageNames = map[string]string{
	"ar-SA": "Arabic (Saudi Arabia)",
	"cs-CZ": "Czech (Czech Republic)",
	"da-DK": "Danish (Denmark)",
	"de-DE": "German (Germany)",
	"el-GR": "Greek (Greece)",
	"en-GB": "English (United Kingdom)",
	"en-US": "English (United States)",
	"es-ES": "Spanish (Spain)",
	"es-MX": "Spanish (Mexico)",
	"fi-FI": "Finnish (Finland)",
	"fr-FR": "French (France)",
	"he-IL": "Hebrew (Israel)",
	"hi-IN": "Hindi (India)",
	"hu-HU": "Hungarian (Hungary)",
	"id-ID": "Indonesian (Indonesia)",
	"it-IT": "Italian (Italy)",
	"ja-JP": "Japanese (Japan)",
	"ko-KR": "Korean (South Korea)",
	"nb-NO": "Norwegian Bokmål (Norway)",
	"nl-NL": "Dutch (Netherlands)",
	"pl-PL": "Polish (Poland)",
	"pt-BR": "Portuguese (Brazil)",
	"pt-PT": "Portuguese (Portugal)",
	"ro-RO": "Romanian (Romania)",
	"ru-RU": "Russian (Russia)",
	"sv-SE": "Swedish (Sweden)",
	"th-TH": "Thai (Thailand)",
	"tr-TR": "Turkish (Turkey)",
	"uk-UA": "Ukrainian (Ukraine)",
	"vi-VN": "Vietnamese (Vietnam)",
	"zh-CN": "Chinese (Simplified)",
	"zh-TW": "Chinese (Traditional)",
}

// GetLanguageName returns the human-readable name for a locale code, falling
// back to the code itself.
func GetLanguageName(code string) string {
	if name, ok := LanguageNames[NormalizeLocale(code)]; ok {
		return name
	}
	return code
}

// RTLLanguages contains base language codes using right-to-left text
// direction.
var RTLLanguages = map[string]bool{
	"ar": true, // Arabic
	"he": true, // Hebrew
	"fa": true, // Persian/Farsi
	"ur": true, // Urdu
	"ps": true, // Pashto
	"sd": true, // Sindhi
	"ug": true, // Uyghur
}

// GetDirection returns "rtl" for right-to-left languages, "ltr" otherwise.
func GetDirection(code string) string {
	if RTLLanguages[BaseLang(code)] {
		return "rtl"
	}
	return "ltr"
}

// IsRTL reports whether the language uses right-to-left text direction.
func IsRTL(code string) bool {
	return GetDirection(code) == "rtl"
}
