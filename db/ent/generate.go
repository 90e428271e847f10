package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// go run ./db/ent writes the client used by internal/repository into gen/ent.
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/joseph-ayodele/utility-bills/gen/ent",
			Features: []gen.Feature{
				gen.FeatureUpsert,
			},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
