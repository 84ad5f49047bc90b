package templating

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// tagPattern matches {{NAME}}, {{#NAME}}, {{^NAME}} and {{/NAME}}.
// Token names are upper-case identifiers; anything else (including the
// html/template style "{{ .Name }}") is left alone as plain text.
var tagPattern = regexp.MustCompile(`\{\{\s*([#^/]?)\s*([A-Z][A-Z0-9_]*)\s*\}\}`)

// SyntaxError reports a malformed conditional block.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("templating: %s at offset %d", e.Msg, e.Offset)
}

// UnresolvedError is returned by a strict Engine when tokens had no value.
type UnresolvedError struct {
	Tokens []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("templating: unresolved tokens: %s", strings.Join(e.Tokens, ", "))
}

// Rendered is the result of rendering one source string.
type Rendered struct {
	Output     string
	Unresolved []string // distinct token names left in Output, sorted
}

// Engine renders template sources. The zero value is a lenient engine that
// leaves unknown tokens in place and reports them.
type Engine struct {
	Strict bool
}

// NewEngine creates a new template engine.
func NewEngine(strict bool) *Engine {
	return &Engine{Strict: strict}
}

// --- Parsed representation ---

type node interface{ isNode() }

type textNode string

type tokenNode struct {
	name string
	raw  string // original text, written back when unresolved
}

type sectionNode struct {
	name     string
	inverted bool
	offset   int
	body     []node
}

func (textNode) isNode()     {}
func (tokenNode) isNode()    {}
func (*sectionNode) isNode() {}

// parse splits src into text, token and section nodes.
func parse(src string) ([]node, error) {
	root := &sectionNode{}
	stack := []*sectionNode{root}
	pos := 0

	for _, m := range tagPattern.FindAllStringSubmatchIndex(src, -1) {
		cur := stack[len(stack)-1]
		if m[0] > pos {
			cur.body = append(cur.body, textNode(src[pos:m[0]]))
		}
		pos = m[1]

		sigil := src[m[2]:m[3]]
		name := src[m[4]:m[5]]

		switch sigil {
		case "#", "^":
			sec := &sectionNode{name: name, inverted: sigil == "^", offset: m[0]}
			cur.body = append(cur.body, sec)
			stack = append(stack, sec)
		case "/":
			if len(stack) == 1 {
				return nil, &SyntaxError{Offset: m[0], Msg: fmt.Sprintf("closing {{/%s}} without an open block", name)}
			}
			if cur.name != name {
				return nil, &SyntaxError{Offset: m[0], Msg: fmt.Sprintf("closing {{/%s}} does not match open block %q", name, cur.name)}
			}
			stack = stack[:len(stack)-1]
		default:
			cur.body = append(cur.body, tokenNode{name: name, raw: src[m[0]:m[1]]})
		}
	}

	if len(stack) > 1 {
		open := stack[len(stack)-1]
		return nil, &SyntaxError{Offset: open.offset, Msg: fmt.Sprintf("block %q is never closed", open.name)}
	}
	if pos < len(src) {
		root.body = append(root.body, textNode(src[pos:]))
	}
	return root.body, nil
}

// Truthy reports whether a flag value switches a {{#FLAG}} block on.
func Truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "false", "0", "no", "off":
		return false
	}
	return true
}

type renderer struct {
	vars       map[string]string
	out        strings.Builder
	unresolved map[string]struct{}
}

func (r *renderer) walk(nodes []node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case textNode:
			r.out.WriteString(string(n))
		case tokenNode:
			if v, ok := r.vars[n.name]; ok {
				r.out.WriteString(v)
				continue
			}
			r.out.WriteString(n.raw)
			r.unresolved[n.name] = struct{}{}
		case *sectionNode:
			if Truthy(r.vars[n.name]) != n.inverted {
				r.walk(n.body)
			}
		}
	}
}

// Render substitutes vars into src in a single pass. Inserted values are
// never re-scanned, so the output does not depend on map ordering.
func (e *Engine) Render(src string, vars map[string]string) (Rendered, error) {
	nodes, err := parse(src)
	if err != nil {
		return Rendered{}, err
	}

	r := &renderer{vars: vars, unresolved: make(map[string]struct{})}
	r.out.Grow(len(src))
	r.walk(nodes)

	res := Rendered{Output: r.out.String(), Unresolved: sortedKeys(r.unresolved)}
	if e.Strict && len(res.Unresolved) > 0 {
		return Rendered{}, &UnresolvedError{Tokens: res.Unresolved}
	}
	return res, nil
}

// RenderFiles renders every source in files. Unresolved token names are
// merged across files.
func (e *Engine) RenderFiles(files map[string]string, vars map[string]string) (map[string]string, []string, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	lenient := Engine{}
	out := make(map[string]string, len(files))
	missing := make(map[string]struct{})
	for _, name := range names {
		res, err := lenient.Render(files[name], vars)
		if err != nil {
			return nil, nil, fmt.Errorf("render %s: %w", name, err)
		}
		out[name] = res.Output
		for _, tok := range res.Unresolved {
			missing[tok] = struct{}{}
		}
	}

	unresolved := sortedKeys(missing)
	if e.Strict && len(unresolved) > 0 {
		return nil, unresolved, &UnresolvedError{Tokens: unresolved}
	}
	return out, unresolved, nil
}

// Render renders src with a lenient engine.
func Render(src string, vars map[string]string) (Rendered, error) {
	return (&Engine{}).Render(src, vars)
}

// Tokens lists the distinct token and block names referenced by src.
func Tokens(src string) ([]string, error) {
	if _, err := parse(src); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, m := range tagPattern.FindAllStringSubmatch(src, -1) {
		seen[m[2]] = struct{}{}
	}
	return sortedKeys(seen), nil
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
