package composer

import (
	"github.com/nguyentantai21042004/deck-flow/internal/llm"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
)

type implComposer struct {
	llm    llm.Client
	logger logger.Logger
}

// New creates a Composer backed by the given model client.
func New(client llm.Client, log logger.Logger) Composer {
	return &implComposer{
		llm:    client,
		logger: log,
	}
}
