package mdsite_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	mdsite "github.com/alnah/go-mdsite"
)

func Example() {
	r, err := mdsite.New(mdsite.WithFootnotes())
	if err != nil {
		log.Fatal(err)
	}
	if err := r.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	html, err := r.Render(context.Background(), "# Hello\n\nA *markdown* page.")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(html)
	// Output:
	// <h1 id="hello">Hello</h1>
	// <p>A <em>markdown</em> page.</p>
}

func ExampleRenderer_Render_toc() {
	r, err := mdsite.New(mdsite.WithTOC(mdsite.TOC{ListStyle: mdsite.ListUnordered}))
	if err != nil {
		log.Fatal(err)
	}
	if err := r.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	html, err := r.Render(context.Background(), "[[toc]]\n\n# Intro\n\n## Details")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(strings.Contains(html, `<nav class="toc">`))
	// Output:
	// true
}

func ExampleRendererPool() {
	pool := mdsite.NewRendererPool(2, mdsite.WithFootnotes())
	defer pool.Close()

	ctx := context.Background()
	r, err := pool.Acquire(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Release(r)

	html, err := r.Render(ctx, "Pooled *rendering*.")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(html)
	// Output:
	// <p>Pooled <em>rendering</em>.</p>
}
