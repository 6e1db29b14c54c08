package keyhub

import "testing"

func TestIsLocale(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"en-US", true},
		{"fr-FR", true},
		{"pt-BR", true},
		{"en", false},
		{"en_US", false},
		{"EN-US", false},
		{"en-us", false},
		{"eng-US", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsLocale(tt.code); got != tt.want {
				t.Errorf("IsLocale(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en_US", "en-US"},
		{"en-US", "en-US"},
		{"pt_BR", "pt-BR"},
		{"en", "en"},
	}
	for _, tt := range tests {
		if got := NormalizeLocale(tt.code); got != tt.want {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestBaseLang(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en-US", "en"},
		{"pt_BR", "pt"},
		{"AR-SA", "ar"},
		{"de", "de"},
	}
	for _, tt := range tests {
		if got := BaseLang(tt.code); got != tt.want {
			t.Errorf("BaseLang(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestGetLanguageName(t *testing.T) {
	if got := GetLanguageName("fr-FR"); got != "French (France)" {
		t.Errorf("GetLanguageName(fr-FR) = %q, want French (France)", got)
	}
	if got := GetLanguageName("fr_FR"); got != "French (France)" {
		t.Errorf("GetLanguageName(fr_FR) = %q, want French (France)", got)
	}
	if got := GetLanguageName("xx-XX"); got != "xx-XX" {
		t.Errorf("GetLanguageName(xx-XX) = %q, want the code itself", got)
	}
}

func TestGetDirection(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"ar-SA", "rtl"},
		{"he-IL", "rtl"},
		{"en-US", "ltr"},
		{"ja-JP", "ltr"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := GetDirection(tt.code); got != tt.want {
				t.Errorf("GetDirection(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestIsRTL(t *testing.T) {
	if !IsRTL("ar-SA") {
		t.Error("IsRTL(ar-SA) = false, want true")
	}
	if IsRTL("en-US") {
		t.Error("IsRTL(en-US) = true, want false")
	}
}
