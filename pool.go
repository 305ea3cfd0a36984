package highlight

import (
	"github.com/repoview/highlight/language"
)

// ClientPool hands out one shared [Client] per language. Sharing a parse
// engine across all open files of a language trades a full reparse on file
// open for a much smaller set of live parser instances.
type ClientPool struct {
	registry *language.Registry
	clients  map[language.Language]*Client
}

// NewClientPool creates an empty pool backed by the given registry.
func NewClientPool(registry *language.Registry) *ClientPool {
	return &ClientPool{
		registry: registry,
		clients:  make(map[language.Language]*Client),
	}
}

// ClientFor returns the cached client for lang, constructing one from the
// language's configuration on first use. Construction failures are returned
// as-is and not retried here; the next call attempts a fresh construction.
func (p *ClientPool) ClientFor(lang language.Language) (*Client, error) {
	if client, ok := p.clients[lang]; ok {
		return client, nil
	}

	cfg, err := p.registry.Configuration(lang)
	if err != nil {
		return nil, err
	}
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	p.clients[lang] = client
	return client, nil
}

// Len returns the number of live clients.
func (p *ClientPool) Len() int { return len(p.clients) }

// ClearAll drops every cached client and closes its parser. Sessions still
// referencing a cleared client see their later parses return nil and treat
// them as no-ops; callers should release all sessions first.
func (p *ClientPool) ClearAll() {
	for lang, client := range p.clients {
		client.close()
		delete(p.clients, lang)
	}
}
