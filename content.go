package docsite

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// docFrontMatter is the YAML header a doc may carry.
type docFrontMatter struct {
	ID              string `yaml:"id"`
	Title           string `yaml:"title"`
	Description     string `yaml:"description"`
	Slug            string `yaml:"slug"`
	SidebarLabel    string `yaml:"sidebar_label"`
	SidebarPosition int    `yaml:"sidebar_position"`
}

// LoadDocs reads every .md file under cfg.Docs.Path in fsys. Docs come back in
// sidebar order: sidebar_position first (unset sorts last), then path.
// Bodies are not rendered yet.
func LoadDocs(fsys fs.FS, cfg SiteConfig) ([]Doc, error) {
	root := path.Clean(cfg.Docs.Path)
	if _, err := fs.Stat(fsys, root); err != nil {
		return nil, fmt.Errorf("docsite: docs directory %q: %w", root, err)
	}

	var docs []Doc
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), ".md") {
			return nil
		}
		doc, err := loadDoc(fsys, root, p, cfg)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("docsite: load docs: %w", err)
	}

	sort.SliceStable(docs, func(i, j int) bool {
		pi, pj := docs[i].Position, docs[j].Position
		if (pi == 0) != (pj == 0) {
			return pj == 0
		}
		if pi != pj {
			return pi < pj
		}
		return docs[i].SourcePath < docs[j].SourcePath
	})

	seen := make(map[string]string, len(docs))
	for _, d := range docs {
		if prev, ok := seen[d.Route]; ok {
			return nil, fmt.Errorf("%w: %s is produced by both %s and %s", ErrDuplicateRoute, d.Route, prev, d.SourcePath)
		}
		seen[d.Route] = d.SourcePath
	}
	return docs, nil
}

func loadDoc(fsys fs.FS, root, p string, cfg SiteConfig) (Doc, error) {
	raw, err := fs.ReadFile(fsys, p)
	if err != nil {
		return Doc{}, err
	}
	var fm docFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return Doc{}, fmt.Errorf("front matter in %s: %w", p, err)
	}

	rel := strings.TrimPrefix(p, root+"/")
	relNoExt := strings.TrimSuffix(rel, path.Ext(rel))

	id := fm.ID
	if id == "" {
		id = relNoExt
	} else if dir := path.Dir(relNoExt); dir != "." {
		id = path.Join(dir, id)
	}

	heading := firstHeading(body)
	title := fm.Title
	if title == "" {
		title = heading
	}
	if title == "" {
		title = titleFromName(path.Base(relNoExt))
	}

	slug := fm.Slug
	if slug == "" {
		segs := strings.Split(id, "/")
		for i, seg := range segs {
			if s := Slugify(seg); s != "" {
				segs[i] = s
			}
		}
		slug = strings.Join(segs, "/")
	}
	route := JoinRoute(cfg.BaseURL, cfg.Docs.RouteBasePath, slug)

	editURL := ""
	if cfg.Docs.EditURL != "" {
		editURL = strings.TrimSuffix(cfg.Docs.EditURL, "/") + "/" + p
	}

	return Doc{
		ID:           id,
		Title:        title,
		Description:  fm.Description,
		SidebarLabel: fm.SidebarLabel,
		Position:     fm.SidebarPosition,
		Route:        route,
		SourcePath:   p,
		EditURL:      editURL,
		Body:         string(body),
		HasTitle:     heading != "",
	}, nil
}

// firstHeading returns the text of a leading "# " heading, skipping blank lines.
func firstHeading(body []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
		return ""
	}
	return ""
}

// titleFromName turns "getting-started" into "Getting Started".
func titleFromName(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(name)
}
