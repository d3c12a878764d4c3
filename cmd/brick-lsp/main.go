// SPDX-License-Identifier: Apache-2.0
package main

import (
	"brick/internal/lsp"
	"flag"
	"log"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "brick" // Name identifier for the language server

var handler protocol.Handler

func main() {
	verbosity := flag.Int("v", 1, "log verbosity")
	logPath := flag.String("log", "", "log file (default: stderr)")
	flag.Parse()

	var path *string
	if *logPath != "" {
		path = logPath
	}
	commonlog.Configure(*verbosity, path)

	brickHandler := lsp.NewBrickHandler()

	handler = protocol.Handler{
		Initialize:                     brickHandler.Initialize,
		Initialized:                    brickHandler.Initialized,
		Shutdown:                       brickHandler.Shutdown,
		SetTrace:                       brickHandler.SetTrace,
		TextDocumentDidOpen:            brickHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           brickHandler.TextDocumentDidClose,
		TextDocumentDidChange:          brickHandler.TextDocumentDidChange,
		TextDocumentHover:              brickHandler.TextDocumentHover,
		TextDocumentCodeAction:         brickHandler.TextDocumentCodeAction,
		TextDocumentSemanticTokensFull: brickHandler.TextDocumentSemanticTokensFull,
	}

	// debug=false keeps glsp's own message logging off
	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Brick LSP server...")

	// Editors talk to the server over stdin/stdout
	if err := s.RunStdio(); err != nil {
		log.Println("Error starting Brick LSP server:", err)
		os.Exit(1)
	}
}
