package server

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

//go:embed static
var staticFiles embed.FS

// Templates holds the compiled page templates. With a source directory
// configured the set can be recompiled from disk at any time, which is
// what the template watcher does in dev mode.
type Templates struct {
	mu  sync.RWMutex
	dir string
	set map[string]*pongo2.Template
}

// NewTemplates compiles the embedded templates, or the .html files under
// dir when dir is non-empty.
func NewTemplates(dir string) (*Templates, error) {
	t := &Templates{dir: dir}
	if err := t.Reload(); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload recompiles the template set from its source.
func (t *Templates) Reload() error {
	var sources map[string]string
	var err error
	if t.dir != "" {
		sources, err = readTemplates(os.DirFS(t.dir), ".")
	} else {
		sources, err = readTemplates(embeddedTemplates, "templates")
	}
	if err != nil {
		return err
	}

	set := pongo2.NewSet("classql", pongo2.DefaultLoader)
	compiled := make(map[string]*pongo2.Template, len(sources))
	for name, source := range sources {
		tpl, err := set.FromString(source)
		if err != nil {
			return fmt.Errorf("failed to compile template %s: %w", name, err)
		}
		compiled[name] = tpl
	}

	t.mu.Lock()
	t.set = compiled
	t.mu.Unlock()

	return nil
}

// Render executes the named template with the given context.
func (t *Templates) Render(name string, ctx pongo2.Context) (string, error) {
	t.mu.RLock()
	tpl, ok := t.set[name]
	t.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("unknown template: %s", name)
	}

	return tpl.Execute(ctx)
}

func readTemplates(fsys fs.FS, root string) (map[string]string, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	sources := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".html" {
			continue
		}

		content, err := fs.ReadFile(fsys, root+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}
		sources[entry.Name()] = string(content)
	}

	return sources, nil
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
