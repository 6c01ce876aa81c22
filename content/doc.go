// Package content holds the institute catalog (classes, boards, subjects,
// notes, achievements, testimonials and gallery images), the built-in
// fallback copy of it, and a REST client whose operations serve fallback
// data whenever the API cannot answer.
//
// Client operations have the loadz.Producer shape, so they plug straight
// into a loadz.Fetcher:
//
//	client, _ := content.NewClient(os.Getenv("ATOMSITE_API_URL"))
//	classes := loadz.NewFetcher("classes", client.Classes)
//
// Fallbacks holds the catalog the client falls back to and the server
// serves. WatchFile keeps it in sync with a JSON, YAML or TOML file;
// edits that fail to decode or validate are rejected and the previous
// catalog stays active.
package content
