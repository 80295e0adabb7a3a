package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "grit://docs/scoring-model",
		Name:        "scoring-model",
		Title:       "Scoring model",
		Description: "How resistance ratings become profiles, challenges, and strength scores",
		Content: `# Scoring model

## Assessment

Every catalog activity is rated on two axes:

- Resistance: 1–10, how averse you are to starting it.
- Avoidance: never / sometimes / often / always, how often you dodge it
  (numerically 1–4 for averaging).

The profile completes when all activities are rated. Per category:

- resistance = mean resistance score
- avoidance = mean avoidance value
- combined = (resistance + avoidance × 2) / 30

A category is **high-resistance** when resistance ≥ 6 and avoidance ≥ 2.5.
An activity is a **false positive** when resistance ≤ 3 but avoidance is
often/always: you dodge it out of habit, not difficulty.

## Challenges

Daily generation draws from activities with resistance ≥ 6 that are
avoided often or always, picking at most three and spreading them across
categories. Completing a challenge:

- appends a snapshot to the completion log,
- recomputes AMCC strength = round(100 × Σ resistance / (10 × n)),
- decays the category's resistance by 0.5 per completion (floor 3).

When a category's decayed resistance falls more than 2 below its
original, adapt_difficulty escalates: a longer activity from the same
category at resistance original + 1 (capped at 10).

Undoing a completion removes the snapshot and rescores strength, but the
decay stays. Practice happened; the ledger keeps it.`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
