package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/satishbabariya/classql/query/ast"
	"github.com/satishbabariya/classql/query/parser"
	"github.com/satishbabariya/classql/render"
)

// ExampleCard is one live example on the landing page.
type ExampleCard struct {
	Title       string
	Description string
	CodeHTML    string
	OutputHTML  string
}

const heroClass = "db-users-name-where-id-1"

// heroValue renders the hero example and strips the markup so the landing
// page can show the bare value.
func (s *Server) heroValue(ctx context.Context) (string, error) {
	desc, ok := parser.ParseClass(heroClass)
	if !ok {
		return "", fmt.Errorf("failed to parse class %s", heroClass)
	}

	result, err := s.executor.Run(ctx, desc)
	if err != nil {
		return "", err
	}

	return stripTags(render.Rows(result.Rows, result.Columns, render.ModeSpan)), nil
}

func (s *Server) buildExamples(ctx context.Context) ([]ExampleCard, error) {
	var examples []ExampleCard

	card, err := s.buildExampleCard(ctx, "Get User Name", "Fetch a single user's name by ID",
		heroClass, render.ModeSpan, nil, "")
	if err != nil {
		return nil, err
	}
	examples = append(examples, card)

	card, err = s.buildExampleCard(ctx, "Product List", "Display products as an unordered list",
		"db-products-title-limit-5", render.ModeUl, nil, "")
	if err != nil {
		return nil, err
	}
	examples = append(examples, card)

	card, err = s.buildExampleCard(ctx, "Top Posts by Likes", "Posts ordered by popularity",
		"db-posts-title-orderby-likes-desc-limit-3", render.ModeOl, nil, "")
	if err != nil {
		return nil, err
	}
	examples = append(examples, card)

	join := parser.JoinFromParts("posts", "id-author_id", "title", "left")
	card, err = s.buildExampleCard(ctx, "Users with Posts (JOIN)", "Join users with their posts",
		"db-users-name-limit-5", render.ModeTable, &join, joinCodePreview)
	if err != nil {
		return nil, err
	}
	examples = append(examples, card)

	return examples, nil
}

func (s *Server) buildExampleCard(ctx context.Context, title, description, className string, mode render.Mode, join *ast.JoinDescription, codeOverride string) (ExampleCard, error) {
	desc, ok := parser.ParseClass(className)
	if !ok {
		return ExampleCard{}, fmt.Errorf("failed to parse class %s", className)
	}
	if join != nil {
		desc = desc.WithJoin(*join)
	}

	result, err := s.executor.Run(ctx, desc)
	if err != nil {
		return ExampleCard{}, err
	}

	codeHTML := codeOverride
	if codeHTML == "" {
		codeHTML = exampleCode(className, mode)
	}

	return ExampleCard{
		Title:       title,
		Description: description,
		CodeHTML:    codeHTML,
		OutputHTML:  render.Rows(result.Rows, result.Columns, mode),
	}, nil
}

// exampleCode builds the syntax-highlighted <DB .../> snippet for a card.
func exampleCode(className string, mode render.Mode) string {
	asFragment := ""
	if mode != render.ModeSpan {
		asFragment = fmt.Sprintf(` <span><span class="text-slate-300">as=</span><span class="text-green-400">"%s"</span></span>`, mode)
	}

	return fmt.Sprintf(`<div class="flex flex-wrap items-baseline gap-x-1"><span class="text-pink-400">&lt;DB</span><span><span class="text-slate-300">className=</span><span class="text-green-400">"%s"</span></span>%s<span class="text-pink-400">/&gt;</span></div>`, className, asFragment)
}

const joinCodePreview = `<div class="flex flex-col">` +
	`<div class="flex flex-wrap items-baseline gap-x-1">` +
	`<span class="text-pink-400">&lt;DB</span>` +
	`<span><span class="text-slate-300">className=</span><span class="text-green-400">"db-users-name-limit-5"</span></span>` +
	`<span><span class="text-slate-300">as=</span><span class="text-green-400">"table"</span></span>` +
	`<span class="text-pink-400">&gt;</span>` +
	`</div>` +
	`<div class="flex flex-wrap items-baseline gap-x-1 pl-4">` +
	`<span class="text-purple-400">&lt;Join</span>` +
	`<span><span class="text-slate-300">table=</span><span class="text-green-400">"posts"</span></span>` +
	`<span><span class="text-slate-300">on=</span><span class="text-yellow-400">"id-author_id"</span></span>` +
	`<span><span class="text-slate-300">select=</span><span class="text-green-400">"title"</span></span>` +
	`<span class="text-purple-400">/&gt;</span>` +
	`</div>` +
	`<span class="text-pink-400">&lt;/DB&gt;</span>` +
	`</div>`

// stripTags removes markup and keeps the text content.
func stripTags(input string) string {
	var out strings.Builder
	inTag := false
	for _, ch := range input {
		switch {
		case ch == '<':
			inTag = true
		case ch == '>':
			inTag = false
		case !inTag:
			out.WriteRune(ch)
		}
	}
	return out.String()
}
