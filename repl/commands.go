package repl

import "strings"

const (
	cmdInit   = "init"
	cmdVertex = "vertex"
	cmdEdge   = "edge"
	cmdDFS    = "dfs"
	cmdBFS    = "bfs"
	cmdPrint  = "print"
	cmdHelp   = "help"
	cmdQuit   = "quit"
)

// aliases maps every accepted spelling to its command.
var aliases = map[string]string{
	"z": cmdInit, "init": cmdInit,
	"v": cmdVertex, "vertex": cmdVertex,
	"e": cmdEdge, "edge": cmdEdge,
	"d": cmdDFS, "dfs": cmdDFS,
	"b": cmdBFS, "bfs": cmdBFS,
	"p": cmdPrint, "print": cmdPrint,
	"h": cmdHelp, "?": cmdHelp, "help": cmdHelp,
	"q": cmdQuit, "quit": cmdQuit, "exit": cmdQuit,
}

// lookup resolves a token case-insensitively.
func lookup(tok string) (string, bool) {
	cmd, ok := aliases[strings.ToLower(tok)]
	return cmd, ok
}
