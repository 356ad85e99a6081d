package port

import "context"

// Result summarizes a completed generation run.
type Result struct {
	// Source is the URL or path the document was taken from, or the cache path.
	Source   string
	Output   string
	Variants int
	// Changed is false when the output file already held identical content.
	Changed bool
}

// ChainGenerator defines the interface for producing the chain enumeration source.
type ChainGenerator interface {
	// Run fetches the chain list, renders the enumeration and writes it to the configured output.
	Run(ctx context.Context) (Result, error)
}
