// Package keyhub implements the catalog engine behind the KeyHub translation
// editor: a tool for editing multi-language JSON translation catalogs
// (i18next-style resource files) with an HTTP endpoint that lets a running
// application report missing translation keys back into those files.
//
// The engine flattens nested JSON documents into dot-notated keys, merges
// per-language files into a unified per-namespace view with completeness
// accounting, and applies structural mutations (add/update/remove key,
// add/remove language, import a root folder) while keeping every language
// file canonically sorted on disk.
//
// Basic usage:
//
//	import (
//	    "github.com/guilgui51/keyhub"
//	    "github.com/guilgui51/keyhub/settings"
//	)
//
//	func main() {
//	    store, _ := settings.NewFileStore("")
//	    catalog := keyhub.NewCatalog(store)
//
//	    snap, err := catalog.ImportFolder("/path/to/locales")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("imported %d languages\n", len(snap.Languages))
//
//	    data, _ := catalog.ReadAll()
//	    for _, ns := range data {
//	        fmt.Println(ns.Namespace, len(ns.Keys))
//	    }
//	}
package keyhub
