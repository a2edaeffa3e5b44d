// Package messages renders validation failures into localized,
// human-readable text.
//
// Validation failures carry a translation key and a value map rather than
// finished prose, which leaves message wording to the application. A Catalog
// maps those keys to templates per language and substitutes %{name}
// placeholders from the failure's values:
//
//	catalog, err := messages.LoadYAML("messages.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b := formbind.BindValue(ctx, "J", validator.MustCompile("min:2"))
//	for field, msg := range catalog.RenderFields("de-AT", b.Err.Get()) {
//	    fmt.Println(field, msg)
//	}
//
// Requested languages are matched against the catalog's languages, so
// regional variants resolve to their base language when no exact entry
// exists.
package messages
