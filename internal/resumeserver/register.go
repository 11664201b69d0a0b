// Package resumeserver exposes the resume analysis engine over MCP.
package resumeserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools wires every resume tool into the MCP server.
func RegisterTools(server *mcp.Server) {
	registerResumeAnalyze(server)
	registerResumeUpload(server)
	registerResumeList(server)
	registerResumeDelete(server)
	registerResumeSearch(server)
	registerJDAnalyze(server)
	registerSuggestions(server)
	registerModelStatus(server)
}
