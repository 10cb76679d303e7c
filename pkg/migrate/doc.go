/*
Package migrate orchestrates the splitting of multi-record source documents
into standalone destination documents.

	+-------------+
	|  Migrator   |
	| (Per Run)   |
	+------+------+
	       |
	+------+------+     +-----------+
	|  Classify   | --> |  Worker   |
	| (Per Record)|     |  Pool     |
	+-------------+     +-----------+

🎯 Purpose:
- Walks every document in the source folder
- Classifies each record against its canary cells
- Copies valid records into fresh single-record documents
- Reports progress and collects per-record outcomes

🔄 Flow:
1. List source documents, drop excluded names
2. Load the translation table (fatal if missing)
3. Per document: look up the table, skip or open
4. Per record: read canary cells, classify, submit to the pool
5. Per task: create, share, copy, rename, drop placeholder, redact
6. Aggregate results into a run summary

⚡ Key Responsibilities:
- Error containment: record failures never cancel sibling copies
- Compensating deletion of half-built destination documents
- Bounded concurrency inside a document, documents in sequence

🤝 Interfaces:
- remote.Client: the document store (retry-wrapped by the caller)
- status.Reporter: progress sink for console or logs
- config.Config: folder IDs, worker count, share target

🔍 Example:

	mgr, err := migrate.New(migrate.Options{Config: cfg, Client: client, Reporter: reporter})
	if err != nil {
		return err
	}
	summary, err := mgr.Run(ctx)
*/
package migrate
