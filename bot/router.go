package bot

import (
	"strings"
)

// CommandContext carries everything a command handler needs.
type CommandContext struct {
	GuildID   string
	ChannelID string
	AuthorID  string
	// Params are the whitespace tokens of the command text, command name
	// first.
	Params []string
}

// HandlerFunc handles one routed command invocation.
type HandlerFunc func(ctx *CommandContext) error

type routeNode struct {
	children map[string]*routeNode
	handler  HandlerFunc
}

func newRouteNode() *routeNode {
	return &routeNode{children: make(map[string]*routeNode)}
}

// Router matches whitespace-tokenized command text against a fixed command
// set. Matching is exact per token with checkpoint semantics: the deepest
// registered handler on the token path wins, trailing tokens become
// parameters. No fuzzy or partial-word matching.
type Router struct {
	root *routeNode
}

// NewRouter creates an empty command router.
func NewRouter() *Router {
	return &Router{root: newRouteNode()}
}

// Handle registers a handler under a space-separated command path.
func (r *Router) Handle(path string, handler HandlerFunc) {
	node := r.root
	for _, token := range strings.Fields(path) {
		child := node.children[token]
		if child == nil {
			child = newRouteNode()
			node.children[token] = child
		}
		node = child
	}
	node.handler = handler
}

// Route resolves command text to a handler, or nil when no registered
// command matches a complete leading token sequence.
func (r *Router) Route(command string) HandlerFunc {
	node := r.root
	handler := node.handler
	for _, token := range strings.Fields(command) {
		child := node.children[token]
		if child == nil {
			break
		}
		node = child
		if node.handler != nil {
			handler = node.handler
		}
	}
	return handler
}
