package keyhub

import (
	"reflect"
	"testing"
)

func TestBuildReport(t *testing.T) {
	data := []NamespaceData{
		{
			Namespace: "common",
			Keys: []KeyValues{
				{Key: "greeting", Values: map[string]*string{"en-US": strptr("Hello"), "fr-FR": strptr("Bonjour")}},
				{Key: "farewell", Values: map[string]*string{"en-US": strptr("Bye"), "fr-FR": nil}},
			},
		},
		{
			Namespace: "errors",
			Keys: []KeyValues{
				{Key: "notFound", Values: map[string]*string{"en-US": strptr("Not found"), "fr-FR": strptr("")}},
			},
		},
	}

	report := BuildReport(data, []string{"en-US", "fr-FR"})

	if report.Namespaces != 2 {
		t.Errorf("Namespaces = %d, want 2", report.Namespaces)
	}
	if report.Keys != 3 {
		t.Errorf("Keys = %d, want 3", report.Keys)
	}
	if len(report.Languages) != 2 {
		t.Fatalf("Languages = %d, want 2", len(report.Languages))
	}

	en := report.Languages[0]
	if en.Code != "en-US" || en.Total != 3 || en.Completed != 3 {
		t.Errorf("en-US report = %+v, want 3/3 complete", en)
	}
	if en.Missing() != 0 {
		t.Errorf("en-US Missing = %d, want 0", en.Missing())
	}

	fr := report.Languages[1]
	if fr.Completed != 1 {
		t.Errorf("fr-FR Completed = %d, want 1 (nil and empty both count as missing)", fr.Completed)
	}
	wantMissing := []string{"common:farewell", "errors:notFound"}
	if !reflect.DeepEqual(fr.MissingKeys, wantMissing) {
		t.Errorf("fr-FR MissingKeys = %v, want %v", fr.MissingKeys, wantMissing)
	}

	if !report.HasMissing() {
		t.Error("HasMissing = false, want true")
	}
}

func TestBuildReportComplete(t *testing.T) {
	data := []NamespaceData{
		{
			Namespace: "common",
			Keys: []KeyValues{
				{Key: "a", Values: map[string]*string{"en-US": strptr("x")}},
			},
		},
	}

	report := BuildReport(data, []string{"en-US"})

	if report.HasMissing() {
		t.Error("HasMissing = true for a fully translated catalog")
	}
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil, nil)

	if report.Namespaces != 0 || report.Keys != 0 || len(report.Languages) != 0 {
		t.Errorf("empty report = %+v, want zero values", report)
	}
	if report.HasMissing() {
		t.Error("HasMissing = true for an empty catalog")
	}
}
