package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-nodepanel/pkg/nodedef"
	"github.com/goliatone/go-nodepanel/pkg/render"
	"github.com/goliatone/go-nodepanel/pkg/renderers/htmlpanel"
	"github.com/goliatone/go-nodepanel/pkg/renderers/tui"
)

func main() {
	definition := flag.String("definition", "node.yaml", "node definition document (YAML or JSON)")
	renderer := flag.String("renderer", "html", "renderer to use (html, tui)")
	output := flag.String("output", "", "output file (stdout if empty)")
	validate := flag.Bool("validate", false, "run required-field validation and include messages")
	flag.Parse()

	ctx := context.Background()

	def, err := nodedef.Load(*definition)
	if err != nil {
		log.Fatalf("Failed to load definition: %v", err)
	}

	session, err := def.Session(nil)
	if err != nil {
		log.Fatalf("Failed to build session: %v", err)
	}

	registry := render.NewRegistry()
	registry.MustRegister(htmlpanel.New())
	registry.MustRegister(tui.New())

	target, err := registry.Get(*renderer)
	if err != nil {
		log.Fatalf("Unknown renderer: %v", err)
	}

	payload, err := target.Render(ctx, session, render.Options{Validate: *validate})
	if err != nil {
		log.Fatalf("Failed to render panel: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Panel written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}
